package event

import (
	"sort"

	"github.com/klokku/cal2/pkg/palette"
)

type dayKey struct {
	month int
	day   int
}

// Index groups events by (month, day). It is built once and only read
// afterwards, so it is safe to share between goroutines.
type Index struct {
	byDay map[dayKey][]Event
	all   []Event
}

// NewIndex groups events by day, keeping the input order within each day.
func NewIndex(events []Event) *Index {
	idx := &Index{byDay: make(map[dayKey][]Event)}
	for _, e := range events {
		k := dayKey{month: e.Month, day: e.Day}
		idx.byDay[k] = append(idx.byDay[k], e)
		idx.all = append(idx.all, e)
	}
	return idx
}

// Lookup returns the events on a day in load order. A nil Index has no events.
func (idx *Index) Lookup(month, day int) []Event {
	if idx == nil {
		return nil
	}
	events := idx.byDay[dayKey{month: month, day: day}]
	out := make([]Event, len(events))
	copy(out, events)
	return out
}

func (idx *Index) Has(month, day int) bool {
	if idx == nil {
		return false
	}
	return len(idx.byDay[dayKey{month: month, day: day}]) > 0
}

func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.all)
}

func (idx *Index) Empty() bool {
	return idx.Len() == 0
}

// Style returns the color of the first event on the day. ok is false when
// the day has no events.
func (idx *Index) Style(month, day int, p palette.Palette) (palette.Style, bool) {
	if idx == nil {
		return palette.NoStyle, false
	}
	events := idx.byDay[dayKey{month: month, day: day}]
	if len(events) == 0 {
		return palette.NoStyle, false
	}
	return p.Style(events[0].Category.Role()), true
}

// InMonth lists the events of a month ordered by day, or of the whole year
// when month is 0. Events on the same day keep their load order.
func (idx *Index) InMonth(month int) []Event {
	if idx == nil {
		return nil
	}
	out := make([]Event, 0, len(idx.all))
	for _, e := range idx.all {
		if month == 0 || e.Month == month {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].Day < out[j].Day
	})
	return out
}
