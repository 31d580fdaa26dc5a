package event

import (
	"strings"

	"github.com/klokku/cal2/pkg/palette"
)

type Category int

const (
	Holiday Category = iota
	Birthday
	Reminder
)

func (c Category) String() string {
	switch c {
	case Holiday:
		return "Holiday"
	case Birthday:
		return "Birthday"
	default:
		return "Reminder"
	}
}

// Role returns the palette role used to color days with an event of this category.
func (c Category) Role() palette.Role {
	switch c {
	case Holiday:
		return palette.Holiday
	case Birthday:
		return palette.Birthday
	default:
		return palette.Reminder
	}
}

// Categories lists every category in legend order.
var Categories = []Category{Holiday, Birthday, Reminder}

// Event is a yearly occurrence on a fixed month and day.
type Event struct {
	Month       int
	Day         int
	Description string
	Category    Category
}

// CategoryForSection maps a section name to the category it fixes. The
// section name is compared case-insensitively; singular and plural forms are
// accepted.
func CategoryForSection(section string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(section)) {
	case "holidays", "holiday":
		return Holiday, true
	case "birthdays", "birthday":
		return Birthday, true
	case "reminders", "reminder":
		return Reminder, true
	}
	return Reminder, false
}

// InferCategory guesses a category from free text. "birthday" is checked
// before "holiday", so a description mentioning both is a birthday; anything
// else is a reminder. Text that mentions a holiday in passing is still
// classified as a holiday.
func InferCategory(description string) Category {
	lower := strings.ToLower(description)
	switch {
	case strings.Contains(lower, "birthday"):
		return Birthday
	case strings.Contains(lower, "holiday"):
		return Holiday
	default:
		return Reminder
	}
}

// ResolveCategory applies the section first and falls back to inference.
func ResolveCategory(section, description string) Category {
	if c, ok := CategoryForSection(section); ok {
		return c
	}
	return InferCategory(description)
}
