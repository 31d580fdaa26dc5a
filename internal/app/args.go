package app

import (
	"strconv"

	"github.com/klokku/cal2/pkg/calendar"
)

const (
	minYearArg = 1900
	maxYearArg = 2100
)

// ResolveReference turns the positional arguments into the month to show.
// The last two values are month and year. A lone value is a month when it is
// in 1-12 and a year when it is in 1900-2100. Anything unparseable leaves the
// current month in place.
func ResolveReference(args []string, today calendar.Date) calendar.YearMonth {
	ref := calendar.YearMonth{Year: today.Year, Month: today.Month}

	switch {
	case len(args) >= 2:
		month, err := strconv.Atoi(args[len(args)-2])
		if err != nil || month < 1 || month > 12 {
			return ref
		}
		year, err := strconv.Atoi(args[len(args)-1])
		if err != nil || year < 1 {
			return ref
		}
		return calendar.YearMonth{Year: year, Month: month}
	case len(args) == 1:
		val, err := strconv.Atoi(args[0])
		if err != nil {
			return ref
		}
		if val >= 1 && val <= 12 {
			ref.Month = val
		} else if val >= minYearArg && val <= maxYearArg {
			ref.Year = val
		}
	}
	return ref
}
