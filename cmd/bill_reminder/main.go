package main

import (
	"context"
	"log"

	"takatrack.com/bill-reminder-backend/config"
	"takatrack.com/bill-reminder-backend/handlers"
	"takatrack.com/bill-reminder-backend/services"
)

// One-shot job binary: an external scheduler runs it once a day and reads the
// exit status as the run's success or failure.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("BillReminder: config load failed: ", err)
	}

	if err := services.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentials); err != nil {
		log.Fatal("BillReminder: Firebase init failed: ", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("BillReminder: invalid timezone: ", err)
	}

	client, err := services.GetFirestoreClient()
	if err != nil {
		log.Fatal("BillReminder: Firestore client unavailable: ", err)
	}
	store := services.NewFirestoreBillStore(client)

	log.Println("⏰ Running bill reminder job")
	if err := handlers.SendBillReminderNotifications(context.Background(), store, services.FCMSender{}, loc); err != nil {
		log.Fatal("BillReminder: job failed: ", err)
	}
	log.Println("✅ Bill reminder job finished")
}
