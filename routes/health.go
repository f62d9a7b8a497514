package routes

import (
	"github.com/gorilla/mux"
	"takatrack.com/bill-reminder-backend/handlers"
)

func CreateHealthRoutes(router *mux.Router) *mux.Router {

	router.HandleFunc("/healthz", handlers.HealthCheck()).Methods("GET")

	return router
}
