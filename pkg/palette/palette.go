package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Style is an opaque terminal style prefix. The empty Style means no styling.
type Style string

const (
	NoStyle Style = ""
	Reset   Style = "\x1b[0m"
	Reverse Style = "\x1b[7m"
)

// Paint wraps text in the style followed by a reset.
func (s Style) Paint(text string) string {
	return string(s) + text + string(Reset)
}

type Role string

const (
	SundayTitle   Role = "sunday_title"
	SaturdayTitle Role = "saturday_title"
	WorkdayTitle  Role = "workday_title"
	SundayDate    Role = "sunday_date"
	SaturdayDate  Role = "saturday_date"
	WorkdayDate   Role = "workday_date"
	Holiday       Role = "holiday"
	Birthday      Role = "birthday"
	Reminder      Role = "reminder"
)

var ErrUnknownRole = errors.New("unknown color role")

var monthKeys = [12][2]string{
	{"january", "jan"},
	{"february", "feb"},
	{"march", "mar"},
	{"april", "apr"},
	{"may", "may"},
	{"june", "jun"},
	{"july", "jul"},
	{"august", "aug"},
	{"september", "sep"},
	{"october", "oct"},
	{"november", "nov"},
	{"december", "dec"},
}

// Palette assigns a Style to every role and every month. It is a value type;
// With returns a modified copy and never changes the receiver.
type Palette struct {
	roles  map[Role]Style
	months [12]Style
}

// Default returns the built-in colors: red Sundays, blue Saturdays, plain
// workdays and a distinct color per month.
func Default() Palette {
	return Palette{
		roles: map[Role]Style{
			SundayTitle:   Lookup("red"),
			SaturdayTitle: Lookup("blue"),
			WorkdayTitle:  NoStyle,
			SundayDate:    Lookup("red"),
			SaturdayDate:  Lookup("blue"),
			WorkdayDate:   NoStyle,
			Holiday:       Lookup("red"),
			Birthday:      Lookup("magenta"),
			Reminder:      Lookup("cyan"),
		},
		months: [12]Style{
			Lookup("cyan"), Lookup("magenta"), Lookup("green"), Lookup("yellow"),
			Lookup("red"), Lookup("blue"), Lookup("yellow"), Lookup("green"),
			Lookup("magenta"), Lookup("red"), Lookup("cyan"), Lookup("blue"),
		},
	}
}

func (p Palette) Style(role Role) Style {
	return p.roles[role]
}

// Month returns the header style for month 1..12, NoStyle otherwise.
func (p Palette) Month(month int) Style {
	if month < 1 || month > 12 {
		return NoStyle
	}
	return p.months[month-1]
}

// With returns a copy of the palette where key is assigned the named color.
// Keys are role names or month keys (full name, three-letter name or number).
// Unknown color names resolve to NoStyle; unknown keys return ErrUnknownRole.
func (p Palette) With(key, colorName string) (Palette, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	style := Lookup(colorName)

	next := Palette{roles: make(map[Role]Style, len(p.roles)), months: p.months}
	for r, s := range p.roles {
		next.roles[r] = s
	}

	if month, ok := monthFromKey(key); ok {
		next.months[month-1] = style
		return next, nil
	}
	role := Role(key)
	if _, ok := p.roles[role]; !ok {
		return p, fmt.Errorf("%w: %q", ErrUnknownRole, key)
	}
	next.roles[role] = style
	return next, nil
}

func monthFromKey(key string) (int, bool) {
	if n, err := strconv.Atoi(key); err == nil {
		return n, n >= 1 && n <= 12
	}
	for i, names := range monthKeys {
		if key == names[0] || key == names[1] {
			return i + 1, true
		}
	}
	return 0, false
}
