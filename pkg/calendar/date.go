package calendar

import (
	"fmt"
	"time"
)

type Date struct {
	Year  int
	Month int
	Day   int
}

func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// Valid reports whether the month is 1..12 and the day fits in that month.
func (d Date) Valid() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	return d.Day <= DaysInMonth(d.Year, d.Month)
}

func (d Date) Weekday(weekStart WeekStart) int {
	return Weekday(d.Year, d.Month, d.Day, weekStart)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// YearMonth identifies one calendar month.
type YearMonth struct {
	Year  int
	Month int
}

func (ym YearMonth) Add(delta int) YearMonth {
	y, m := AddMonths(ym.Year, ym.Month, delta)
	return YearMonth{Year: y, Month: m}
}

func (ym YearMonth) Days() int {
	return DaysInMonth(ym.Year, ym.Month)
}
