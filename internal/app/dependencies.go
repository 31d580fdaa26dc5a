package app

import (
	"errors"

	"github.com/klokku/cal2/internal/config"
	"github.com/klokku/cal2/internal/utils"
	"github.com/klokku/cal2/pkg/calendar"
	"github.com/klokku/cal2/pkg/calendar_file"
	"github.com/klokku/cal2/pkg/event"
	"github.com/klokku/cal2/pkg/render"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds the loaded calendar and the services built on it.
type Dependencies struct {
	CalendarFile calendar_file.File
	Events       *event.Index

	Clock utils.Clock

	RenderService *render.Service
	RenderHandler *render.Handler

	EventCsvRenderer *event.CsvRenderer
	EventHandler     *event.Handler
}

// BuildDependencies loads the calendar file and wires the render service and
// handler. An unreadable calendar file is not an error: defaults are used.
func BuildDependencies(eventsFile string, weekStart calendar.WeekStart, clock utils.Clock) *Dependencies {
	deps := &Dependencies{}

	path := config.LocateEventsFile(eventsFile)
	f, err := calendar_file.Load(path)
	if err != nil {
		if errors.Is(err, calendar_file.ErrNotFound) {
			log.Warnf("No calendar file at %s, showing a calendar without events", path)
		} else {
			log.Warnf("Ignoring calendar file: %v", err)
		}
	}
	deps.CalendarFile = f
	deps.Events = f.Index()

	deps.Clock = clock
	deps.RenderService = render.NewService(f.Palette, deps.Events, deps.Clock)
	deps.RenderHandler = render.NewHandler(deps.RenderService, weekStart)

	deps.EventCsvRenderer = event.NewCsvRenderer()
	deps.EventHandler = event.NewHandler(deps.Events, deps.EventCsvRenderer)

	return deps
}
