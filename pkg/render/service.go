package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klokku/cal2/internal/utils"
	"github.com/klokku/cal2/pkg/calendar"
	"github.com/klokku/cal2/pkg/event"
	"github.com/klokku/cal2/pkg/palette"
	log "github.com/sirupsen/logrus"
)

type Options struct {
	Mode      Mode
	Reference calendar.YearMonth
	WeekStart calendar.WeekStart
	// Plain drops every escape sequence from the output.
	Plain bool
}

// Service renders calendars for the current day reported by its clock.
type Service struct {
	palette palette.Palette
	events  *event.Index
	clock   utils.Clock
}

func NewService(p palette.Palette, events *event.Index, clock utils.Clock) *Service {
	return &Service{
		palette: p,
		events:  events,
		clock:   clock,
	}
}

func (s *Service) Today() calendar.Date {
	return calendar.FromTime(s.clock.Now())
}

func (s *Service) Render(w io.Writer, opts Options) error {
	ref := opts.Reference
	if ref.Month < 1 || ref.Month > 12 {
		return fmt.Errorf("month %d out of range", ref.Month)
	}
	today := s.Today()
	log.Debugf("Rendering %s view for %d-%02d, today is %s", opts.Mode, ref.Year, ref.Month, today)

	composer := NewComposer(s.palette, s.events, today, opts.WeekStart)
	if !opts.Plain {
		return composer.Render(w, opts.Mode, ref)
	}
	var buf bytes.Buffer
	if err := composer.Render(&buf, opts.Mode, ref); err != nil {
		return err
	}
	_, err := io.WriteString(w, Strip(buf.String()))
	return err
}
