package calendar

import (
	"errors"
	"fmt"
	"strings"
)

// WeekStart selects which weekday occupies the first column of a week.
type WeekStart int

const (
	SundayFirst WeekStart = iota
	MondayFirst
)

var ErrUnknownWeekStart = errors.New("unknown week start")

func (w WeekStart) String() string {
	if w == MondayFirst {
		return "monday"
	}
	return "sunday"
}

// SundayColumn returns the column index Sunday occupies under the policy.
func (w WeekStart) SundayColumn() int {
	if w == MondayFirst {
		return 6
	}
	return 0
}

// SaturdayColumn returns the column index Saturday occupies under the policy.
func (w WeekStart) SaturdayColumn() int {
	if w == MondayFirst {
		return 5
	}
	return 6
}

// ParseWeekStart accepts "sunday" or "monday" in any case. An empty string
// means Sunday-first.
func ParseWeekStart(s string) (WeekStart, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sunday", "sun":
		return SundayFirst, nil
	case "monday", "mon":
		return MondayFirst, nil
	default:
		return SundayFirst, fmt.Errorf("%w: %q", ErrUnknownWeekStart, s)
	}
}

// Weekday computes the day of week with a Zeller-style congruence. The result
// is 0 for Sunday under SundayFirst, or 0 for Monday under MondayFirst.
func Weekday(year, month, day int, weekStart WeekStart) int {
	if month <= 2 {
		month += 12
		year--
	}
	k := year % 100
	j := year / 100
	h := (day + 13*(month+1)/5 + k + k/4 + j/4 + 5*j) % 7
	result := (h + 6) % 7
	if weekStart == MondayFirst {
		result = (result + 6) % 7
	}
	return result
}

var monthLengths = [...]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the Gregorian length of the month, or 0 for a month
// outside 1..12.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthLengths[month]
}

// AddMonths steps delta months from (year, month), wrapping year boundaries.
func AddMonths(year, month, delta int) (int, int) {
	idx := year*12 + (month - 1) + delta
	y := idx / 12
	m := idx % 12
	if m < 0 {
		m += 12
		y--
	}
	return y, m + 1
}
