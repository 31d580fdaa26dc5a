package event

import (
	"testing"

	"github.com/klokku/cal2/pkg/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name        string
		section     string
		description string
		want        Category
	}{
		{name: "section fixes holiday", section: "holidays", description: "Mom's birthday", want: Holiday},
		{name: "singular section", section: "Birthday", description: "Company holiday", want: Birthday},
		{name: "reminder section wins over text", section: "reminders", description: "Holiday shopping", want: Reminder},
		{name: "birthday inferred", section: "", description: "Alice BIRTHDAY", want: Birthday},
		{name: "holiday inferred", section: "misc", description: "Bank Holiday", want: Holiday},
		{name: "birthday checked before holiday", section: "", description: "holiday birthday party", want: Birthday},
		{name: "mixed case is matched", section: "", description: "HoLiDaY", want: Holiday},
		{name: "no hint defaults to reminder", section: "", description: "Christmas", want: Reminder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCategory(tt.section, tt.description))
		})
	}
}

func TestCategory_Role(t *testing.T) {
	assert.Equal(t, palette.Holiday, Holiday.Role())
	assert.Equal(t, palette.Birthday, Birthday.Role())
	assert.Equal(t, palette.Reminder, Reminder.Role())
	assert.Equal(t, "Birthday", Birthday.String())
}

func TestIndex(t *testing.T) {
	events := []Event{
		{Month: 12, Day: 25, Description: "Christmas", Category: Holiday},
		{Month: 3, Day: 14, Description: "Pi day", Category: Reminder},
		{Month: 12, Day: 25, Description: "Call grandma", Category: Reminder},
	}
	idx := NewIndex(events)

	t.Run("keeps load order within a day", func(t *testing.T) {
		got := idx.Lookup(12, 25)

		require.Len(t, got, 2)
		assert.Equal(t, "Christmas", got[0].Description)
		assert.Equal(t, "Call grandma", got[1].Description)
		for _, e := range got {
			assert.Equal(t, 12, e.Month)
			assert.Equal(t, 25, e.Day)
		}
	})

	t.Run("empty day has no events", func(t *testing.T) {
		assert.Empty(t, idx.Lookup(1, 1))
		assert.False(t, idx.Has(1, 1))
		assert.True(t, idx.Has(3, 14))
	})

	t.Run("counts every event", func(t *testing.T) {
		assert.Equal(t, 3, idx.Len())
		assert.False(t, idx.Empty())
	})

	t.Run("lookup result cannot change the index", func(t *testing.T) {
		got := idx.Lookup(3, 14)
		got[0].Description = "changed"

		assert.Equal(t, "Pi day", idx.Lookup(3, 14)[0].Description)
	})

	t.Run("first event decides the color", func(t *testing.T) {
		p := palette.Default()

		style, ok := idx.Style(12, 25, p)

		assert.True(t, ok)
		assert.Equal(t, p.Style(palette.Holiday), style)

		_, ok = idx.Style(1, 1, p)
		assert.False(t, ok)
	})

	t.Run("month listing is ordered by day", func(t *testing.T) {
		got := idx.InMonth(12)

		require.Len(t, got, 2)
		assert.Equal(t, "Christmas", got[0].Description)
		assert.Empty(t, idx.InMonth(6))
	})

	t.Run("year listing is ordered by month", func(t *testing.T) {
		got := idx.InMonth(0)

		require.Len(t, got, 3)
		assert.Equal(t, "Pi day", got[0].Description)
		assert.Equal(t, "Christmas", got[1].Description)
		assert.Equal(t, "Call grandma", got[2].Description)
	})

	t.Run("nil index behaves as empty", func(t *testing.T) {
		var empty *Index

		assert.Empty(t, empty.Lookup(12, 25))
		assert.True(t, empty.Empty())
		_, ok := empty.Style(12, 25, palette.Default())
		assert.False(t, ok)
	})
}
