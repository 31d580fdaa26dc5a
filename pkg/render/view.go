package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klokku/cal2/pkg/calendar"
	"github.com/klokku/cal2/pkg/event"
	"github.com/klokku/cal2/pkg/palette"
)

type Mode int

const (
	SingleMonth Mode = iota
	ThreeMonths
	Year
	TwelveMonths
)

const (
	monthsPerRow = 3
	labelWidth   = 80
	legendMarker = "●"
)

var ErrUnknownMode = errors.New("unknown view mode")

func (m Mode) String() string {
	switch m {
	case ThreeMonths:
		return "three"
	case Year:
		return "year"
	case TwelveMonths:
		return "twelve"
	default:
		return "month"
	}
}

// SelectMode resolves the requested views. Twelve months wins over year,
// year over three months; with nothing requested a single month is shown.
func SelectMode(three, year, twelve bool) Mode {
	switch {
	case twelve:
		return TwelveMonths
	case year:
		return Year
	case three:
		return ThreeMonths
	default:
		return SingleMonth
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "month", "single":
		return SingleMonth, nil
	case "three", "3":
		return ThreeMonths, nil
	case "year":
		return Year, nil
	case "twelve", "12":
		return TwelveMonths, nil
	}
	return SingleMonth, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ThreeMonthSpan returns the previous, given and next month.
func ThreeMonthSpan(ym calendar.YearMonth) []calendar.YearMonth {
	return []calendar.YearMonth{ym.Add(-1), ym, ym.Add(1)}
}

// YearSpan returns January to December of year.
func YearSpan(year int) []calendar.YearMonth {
	return consecutive(calendar.YearMonth{Year: year, Month: 1}, 12)
}

// TwelveMonthSpan returns twelve consecutive months starting at ym.
func TwelveMonthSpan(ym calendar.YearMonth) []calendar.YearMonth {
	return consecutive(ym, 12)
}

func consecutive(start calendar.YearMonth, n int) []calendar.YearMonth {
	span := make([]calendar.YearMonth, n)
	for i := range span {
		span[i] = start.Add(i)
	}
	return span
}

// Composer arranges month grids into the presentation modes. It holds only
// read-only inputs.
type Composer struct {
	palette   palette.Palette
	events    *event.Index
	weekStart calendar.WeekStart
	cells     *CellFormatter
	grids     *GridBuilder
}

func NewComposer(p palette.Palette, events *event.Index, today calendar.Date, weekStart calendar.WeekStart) *Composer {
	cells := NewCellFormatter(p, events, today, weekStart)
	return &Composer{
		palette:   p,
		events:    events,
		weekStart: weekStart,
		cells:     cells,
		grids:     NewGridBuilder(cells, p, weekStart),
	}
}

// Render writes the view for ref followed by the legend when any event is loaded.
func (c *Composer) Render(w io.Writer, mode Mode, ref calendar.YearMonth) error {
	var sb strings.Builder
	switch mode {
	case TwelveMonths:
		c.writeRows(&sb, ref.Year, TwelveMonthSpan(ref))
	case Year:
		c.writeRows(&sb, ref.Year, YearSpan(ref.Year))
	case ThreeMonths:
		sb.WriteString(c.Horizontal(c.buildAll(ThreeMonthSpan(ref))))
	default:
		sb.WriteString(c.Vertical(ref))
	}
	if !c.events.Empty() {
		sb.WriteString(c.Legend())
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (c *Composer) buildAll(span []calendar.YearMonth) []MonthGrid {
	grids := make([]MonthGrid, len(span))
	for i, ym := range span {
		grids[i] = c.grids.Build(ym)
	}
	return grids
}

func (c *Composer) writeRows(sb *strings.Builder, label int, span []calendar.YearMonth) {
	sb.WriteString(centered(strconv.Itoa(label), labelWidth))
	sb.WriteString("\n\n")
	grids := c.buildAll(span)
	for start := 0; start < len(grids); start += monthsPerRow {
		end := min(start+monthsPerRow, len(grids))
		sb.WriteString(c.Horizontal(grids[start:end]))
		sb.WriteString("\n")
	}
}

func centered(text string, width int) string {
	pad := (width - VisibleWidth(text)) / 2
	if pad < 0 {
		pad = 0
	}
	return blank(pad) + text
}

// Horizontal prints grids side by side separated by one blank column. Months
// with fewer weeks are padded with blank rows so all columns line up.
func (c *Composer) Horizontal(grids []MonthGrid) string {
	if len(grids) == 0 {
		return ""
	}
	var sb strings.Builder
	writeLine := func(part func(g MonthGrid) string) {
		for i, g := range grids {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(part(g))
		}
		sb.WriteString("\n")
	}

	writeLine(func(g MonthGrid) string { return g.Header })
	banner := c.grids.Banner()
	writeLine(func(MonthGrid) string { return banner })

	rows := 0
	for _, g := range grids {
		rows = max(rows, len(g.Weeks))
	}
	for row := 0; row < rows; row++ {
		writeLine(func(g MonthGrid) string {
			if row < len(g.Weeks) {
				return g.Weeks[row]
			}
			return blank(MonthWidth)
		})
	}
	return sb.String()
}

// Vertical prints a single month as a classic listing: the full month name,
// the weekday banner and the days, each followed by a space, seven per line.
func (c *Composer) Vertical(ym calendar.YearMonth) string {
	var sb strings.Builder
	title := monthNames[ym.Month-1] + " " + strconv.Itoa(ym.Year)
	sb.WriteString(blank(5))
	sb.WriteString(c.palette.Month(ym.Month).Paint(title))
	sb.WriteString("\n")
	sb.WriteString(c.grids.Banner())
	sb.WriteString("\n")

	lead := calendar.Weekday(ym.Year, ym.Month, 1, c.weekStart)
	sb.WriteString(strings.Repeat(blank(CellWidth+1), lead))
	for day := 1; day <= ym.Days(); day++ {
		date := calendar.NewDate(ym.Year, ym.Month, day)
		sb.WriteString(c.cells.Format(date))
		sb.WriteString(" ")
		if date.Weekday(c.weekStart) == 6 {
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// Legend shows one colored marker per event category.
func (c *Composer) Legend() string {
	var sb strings.Builder
	sb.WriteString("\nLegend:\n")
	for i, category := range event.Categories {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(c.palette.Style(category.Role()).Paint(legendMarker))
		sb.WriteString(" ")
		sb.WriteString(category.String())
	}
	sb.WriteString("\n")
	return sb.String()
}
