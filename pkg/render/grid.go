package render

import (
	"strconv"
	"strings"

	"github.com/klokku/cal2/pkg/calendar"
	"github.com/klokku/cal2/pkg/palette"
)

// MonthWidth is the display width of a month block: seven cells and six separators.
const MonthWidth = 7*CellWidth + 6

var shortMonthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var sundayFirstDays = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
var mondayFirstDays = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// MonthGrid is one month laid out for side-by-side printing. Header and every
// week row are exactly MonthWidth display columns wide.
type MonthGrid struct {
	Year   int
	Month  int
	Header string
	Weeks  []string
}

type GridBuilder struct {
	cells     *CellFormatter
	palette   palette.Palette
	weekStart calendar.WeekStart
}

func NewGridBuilder(cells *CellFormatter, p palette.Palette, weekStart calendar.WeekStart) *GridBuilder {
	return &GridBuilder{cells: cells, palette: p, weekStart: weekStart}
}

// WeekCount returns how many week rows the month needs under the policy.
func WeekCount(year, month int, weekStart calendar.WeekStart) int {
	lead := calendar.Weekday(year, month, 1, weekStart)
	return (lead + calendar.DaysInMonth(year, month) + 6) / 7
}

func (b *GridBuilder) Build(ym calendar.YearMonth) MonthGrid {
	grid := MonthGrid{
		Year:   ym.Year,
		Month:  ym.Month,
		Header: b.header(ym),
	}

	lead := calendar.Weekday(ym.Year, ym.Month, 1, b.weekStart)
	weeks := WeekCount(ym.Year, ym.Month, b.weekStart)
	cells := make([]string, 7)
	for week := 0; week < weeks; week++ {
		for col := 0; col < 7; col++ {
			day := week*7 + col - lead + 1
			cells[col] = b.cells.Format(calendar.NewDate(ym.Year, ym.Month, day))
		}
		grid.Weeks = append(grid.Weeks, strings.Join(cells, " "))
	}
	return grid
}

func (b *GridBuilder) header(ym calendar.YearMonth) string {
	title := Truncate(shortMonthNames[ym.Month-1]+" "+strconv.Itoa(ym.Year), MonthWidth)
	width := VisibleWidth(title)
	left := (MonthWidth - width) / 2
	return blank(left) + b.palette.Month(ym.Month).Paint(title) + blank(MonthWidth-width-left)
}

// Banner returns the weekday abbreviations in policy order, weekend columns
// in their title colors.
func (b *GridBuilder) Banner() string {
	names := sundayFirstDays
	if b.weekStart == calendar.MondayFirst {
		names = mondayFirstDays
	}
	parts := make([]string, 7)
	for col, name := range names {
		role := palette.WorkdayTitle
		switch col {
		case b.weekStart.SundayColumn():
			role = palette.SundayTitle
		case b.weekStart.SaturdayColumn():
			role = palette.SaturdayTitle
		}
		parts[col] = b.palette.Style(role).Paint(name)
	}
	return strings.Join(parts, " ")
}
