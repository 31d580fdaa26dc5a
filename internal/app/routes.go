package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Calendar
	r.HandleFunc("/api/calendar", deps.RenderHandler.GetCalendar).Methods("GET")
	r.HandleFunc("/api/calendar/{year:[0-9]+}/{month:[0-9]+}", deps.RenderHandler.GetMonth).Methods("GET")

	// Events
	r.HandleFunc("/api/events", deps.EventHandler.GetEvents).Methods("GET")
}

// NewRouter builds the router used by the serve command.
func NewRouter(deps *Dependencies) *mux.Router {
	r := mux.NewRouter()
	SetupMiddleware(r)
	RegisterRoutes(r, deps)
	return r
}
