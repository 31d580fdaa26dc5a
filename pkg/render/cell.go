package render

import (
	"fmt"

	"github.com/klokku/cal2/pkg/calendar"
	"github.com/klokku/cal2/pkg/event"
	"github.com/klokku/cal2/pkg/palette"
)

// CellWidth is the number of display columns a day occupies.
const CellWidth = 2

// CellFormatter renders single days. Styles are picked in priority order:
// today, then the first event of the day, then the weekday role.
type CellFormatter struct {
	palette   palette.Palette
	events    *event.Index
	today     calendar.Date
	weekStart calendar.WeekStart
}

func NewCellFormatter(p palette.Palette, events *event.Index, today calendar.Date, weekStart calendar.WeekStart) *CellFormatter {
	return &CellFormatter{
		palette:   p,
		events:    events,
		today:     today,
		weekStart: weekStart,
	}
}

func (f *CellFormatter) StyleFor(date calendar.Date) palette.Style {
	if date == f.today {
		return palette.Reverse
	}
	if style, ok := f.events.Style(date.Month, date.Day, f.palette); ok {
		return style
	}
	return f.palette.Style(f.weekdayRole(date.Weekday(f.weekStart)))
}

func (f *CellFormatter) weekdayRole(column int) palette.Role {
	switch column {
	case f.weekStart.SundayColumn():
		return palette.SundayDate
	case f.weekStart.SaturdayColumn():
		return palette.SaturdayDate
	default:
		return palette.WorkdayDate
	}
}

// Format renders the day right-justified in CellWidth columns between its
// style and a reset. Days outside their month render as blank padding.
func (f *CellFormatter) Format(date calendar.Date) string {
	if !date.Valid() {
		return BlankCell()
	}
	return f.StyleFor(date).Paint(fmt.Sprintf("%2d", date.Day))
}

func BlankCell() string {
	return blank(CellWidth)
}
