package event

import (
	"encoding/json"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type EventDTO struct {
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

type Handler struct {
	events      *Index
	csvRenderer *CsvRenderer
}

func NewHandler(events *Index, csvRenderer *CsvRenderer) *Handler {
	return &Handler{events, csvRenderer}
}

// GetEvents lists the loaded events, optionally for one month. format=csv
// returns CSV instead of JSON.
func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	month := 0
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			writeError(w, ErrorResponse{
				Error:   "Invalid month",
				Details: "month must be a number between 1 and 12",
			})
			return
		}
		month = m
	}
	events := h.events.InMonth(month)

	switch r.URL.Query().Get("format") {
	case "", "json":
		dtos := make([]EventDTO, 0, len(events))
		for _, e := range events {
			dtos = append(dtos, toEventDTO(e))
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dtos); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	case "csv":
		body, err := h.csvRenderer.Render(events)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		if _, err := w.Write([]byte(body)); err != nil {
			log.Errorf("failed to write events response: %v", err)
		}
	default:
		writeError(w, ErrorResponse{
			Error:   "Invalid format",
			Details: "format must be json or csv",
		})
	}
}

func writeError(w http.ResponseWriter, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("failed to encode error response: %v", err)
	}
}

func toEventDTO(e Event) EventDTO {
	return EventDTO{
		Month:       e.Month,
		Day:         e.Day,
		Date:        formatDay(e.Month, e.Day),
		Description: e.Description,
		Category:    e.Category.String(),
	}
}
