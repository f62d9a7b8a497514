package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"

	"takatrack.com/bill-reminder-backend/config"
	"takatrack.com/bill-reminder-backend/handlers"
	"takatrack.com/bill-reminder-backend/routes"
	"takatrack.com/bill-reminder-backend/services"
)

// Long-running alternative to cmd/bill_reminder for hosts without an external
// scheduler: the cron engine fires the same job daily in the configured zone.
// A failed run is logged and left to the next day's trigger; there is no
// retry, so nothing de-duplicates a re-sent reminder.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("ReminderDaemon: config load failed: ", err)
	}

	if err := services.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentials); err != nil {
		log.Fatal("ReminderDaemon: Firebase init failed: ", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("ReminderDaemon: invalid timezone: ", err)
	}

	client, err := services.GetFirestoreClient()
	if err != nil {
		log.Fatal("ReminderDaemon: Firestore client unavailable: ", err)
	}
	store := services.NewFirestoreBillStore(client)

	c := cron.New(cron.WithLocation(loc))
	_, err = c.AddFunc(cfg.CronSpec, func() {
		log.Println("⏰ Cron triggered bill reminder job")
		if err := handlers.SendBillReminderNotifications(context.Background(), store, services.FCMSender{}, loc); err != nil {
			log.Printf("ReminderDaemon: bill reminder run failed: %v", err)
			return
		}
		log.Println("✅ Bill reminder job finished")
	})
	if err != nil {
		log.Fatalf("ReminderDaemon: invalid cron spec %q: %v", cfg.CronSpec, err)
	}
	c.Start()
	log.Printf("ReminderDaemon: scheduler started | spec=%q zone=%s", cfg.CronSpec, loc)

	router := routes.CreateHealthRoutes(mux.NewRouter())
	srv := &http.Server{Addr: cfg.HealthAddr, Handler: router}
	go func() {
		log.Printf("ReminderDaemon: health endpoint listening on %s", cfg.HealthAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ReminderDaemon: health server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("ReminderDaemon: shutting down...")
	cronCtx := c.Stop()
	<-cronCtx.Done() // wait for a running job to finish

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("ReminderDaemon: health server shutdown error: %v", err)
	}
	log.Println("ReminderDaemon: shut down gracefully")
}
