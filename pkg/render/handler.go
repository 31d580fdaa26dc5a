package render

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/klokku/cal2/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

// Handler serves rendered calendars as plain text.
type Handler struct {
	service   *Service
	weekStart calendar.WeekStart
}

func NewHandler(s *Service, weekStart calendar.WeekStart) *Handler {
	return &Handler{service: s, weekStart: weekStart}
}

// GetCalendar renders the view named by the "view" query parameter around
// "year" and "month", defaulting to the current month.
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	mode, err := ParseMode(query.Get("view"))
	if err != nil {
		http.Error(w, "view must be one of month, three, year, twelve", http.StatusBadRequest)
		return
	}

	today := h.service.Today()
	ref := calendar.YearMonth{Year: today.Year, Month: today.Month}
	if v := query.Get("year"); v != "" {
		if ref.Year, err = strconv.Atoi(v); err != nil || ref.Year < 1 {
			http.Error(w, "year must be a positive number", http.StatusBadRequest)
			return
		}
	}
	if v := query.Get("month"); v != "" {
		if ref.Month, err = strconv.Atoi(v); err != nil || ref.Month < 1 || ref.Month > 12 {
			http.Error(w, "month must be a number between 1 and 12", http.StatusBadRequest)
			return
		}
	}

	h.write(w, r, mode, ref)
}

// GetMonth renders a single month addressed by path: /api/calendar/{year}/{month}.
func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil || year < 1 {
		http.Error(w, "year must be a positive number", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "month must be a number between 1 and 12", http.StatusBadRequest)
		return
	}

	h.write(w, r, SingleMonth, calendar.YearMonth{Year: year, Month: month})
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, mode Mode, ref calendar.YearMonth) {
	query := r.URL.Query()
	opts := Options{
		Mode:      mode,
		Reference: ref,
		WeekStart: h.weekStart,
	}
	if v := query.Get("monday"); v != "" {
		monday, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "monday must be a boolean", http.StatusBadRequest)
			return
		}
		opts.WeekStart = calendar.SundayFirst
		if monday {
			opts.WeekStart = calendar.MondayFirst
		}
	}
	if v := query.Get("color"); v != "" {
		color, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "color must be a boolean", http.StatusBadRequest)
			return
		}
		opts.Plain = !color
	}

	var buf bytes.Buffer
	if err := h.service.Render(&buf, opts); err != nil {
		log.Errorf("failed to render calendar: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Errorf("failed to write calendar response: %v", err)
	}
}
