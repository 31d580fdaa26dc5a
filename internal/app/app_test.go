package app

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klokku/cal2/internal/config"
	"github.com/klokku/cal2/internal/utils"
	"github.com/klokku/cal2/pkg/calendar"
	"github.com/klokku/cal2/pkg/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCalendar = `[holidays]
2/14 Valentine

[colors]
holiday = green
`

func writeCalendar(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cal2.ini")
	require.NoError(t, os.WriteFile(path, []byte(sampleCalendar), 0o644))
	return path
}

func testConfig(t *testing.T, eventsFile string) config.Application {
	t.Helper()
	if eventsFile == "" {
		eventsFile = filepath.Join(t.TempDir(), "missing.ini")
	}
	return config.Application{
		EventsFile: eventsFile,
		WeekStart:  "sunday",
		Color:      "always",
		Serve:      config.Serve{Addr: ":0"},
	}
}

func run(t *testing.T, cfg config.Application, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := New(cfg, utils.NewMockClock(2024, time.December, 25), &out)
	err := a.Run(append([]string{"cal2"}, args...))
	return out.String(), err
}

func TestApplication_Run(t *testing.T) {
	t.Run("single month from positional arguments", func(t *testing.T) {
		out, err := run(t, testConfig(t, ""), "--color", "never", "2", "2015")

		require.NoError(t, err)
		assert.Equal(t, "     February 2015\n"+
			"Su Mo Tu We Th Fr Sa\n"+
			" 1  2  3  4  5  6  7 \n"+
			" 8  9 10 11 12 13 14 \n"+
			"15 16 17 18 19 20 21 \n"+
			"22 23 24 25 26 27 28 \n"+
			"\n", out)
	})

	t.Run("current month by default", func(t *testing.T) {
		out, err := run(t, testConfig(t, ""), "--color", "never")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "     December 2024\n"))
	})

	t.Run("three months with events and legend", func(t *testing.T) {
		out, err := run(t, testConfig(t, ""), "-3", "--color", "never", "-f", writeCalendar(t), "2", "2015")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "      Jan 2015             Feb 2015             Mar 2015      \n"))
		assert.True(t, strings.HasSuffix(out, "\nLegend:\n● Holiday  ● Birthday  ● Reminder\n"))
	})

	t.Run("colors from the calendar file", func(t *testing.T) {
		out, err := run(t, testConfig(t, writeCalendar(t)), "2", "2015")

		require.NoError(t, err)
		assert.Contains(t, out, palette.Lookup("green").Paint("14"))
	})

	t.Run("Monday first from the flag", func(t *testing.T) {
		out, err := run(t, testConfig(t, ""), "-m", "--color", "never", "6", "2024")

		require.NoError(t, err)
		assert.Contains(t, out, "Mo Tu We Th Fr Sa Su\n                1  2 \n")
	})

	t.Run("Monday first from the configuration", func(t *testing.T) {
		cfg := testConfig(t, "")
		cfg.WeekStart = "monday"

		out, err := run(t, cfg, "--color", "never", "6", "2024")

		require.NoError(t, err)
		assert.Contains(t, out, "Mo Tu We Th Fr Sa Su\n")
	})

	t.Run("year view from a single year argument", func(t *testing.T) {
		out, err := run(t, testConfig(t, ""), "-y", "--color", "never", "2030")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, strings.Repeat(" ", 38)+"2030\n\n      Jan 2030 "))
	})

	t.Run("twelve months beat the other views", func(t *testing.T) {
		out, err := run(t, testConfig(t, ""), "-Y", "-y", "-3", "--color", "never", "11", "2024")

		require.NoError(t, err)
		assert.Contains(t, out, "      Nov 2024             Dec 2024             Jan 2025      ")
		assert.Contains(t, out, "      Aug 2025             Sep 2025             Oct 2025      ")
	})

	t.Run("auto color is plain when not writing to a terminal", func(t *testing.T) {
		out, err := run(t, testConfig(t, writeCalendar(t)), "--color", "auto", "2", "2015")

		require.NoError(t, err)
		assert.NotContains(t, out, "\x1b")
	})

	t.Run("always color keeps escapes", func(t *testing.T) {
		out, err := run(t, testConfig(t, ""), "2", "2015")

		require.NoError(t, err)
		assert.Contains(t, out, "\x1b[")
	})

	t.Run("rejects an unknown color mode", func(t *testing.T) {
		_, err := run(t, testConfig(t, ""), "--color", "sometimes")

		assert.ErrorIs(t, err, config.ErrInvalidColorMode)
	})

	t.Run("events subcommand lists the calendar file", func(t *testing.T) {
		out, err := run(t, testConfig(t, writeCalendar(t)), "events")

		require.NoError(t, err)
		assert.Equal(t, "Date,Category,Description\n02/14,Holiday,Valentine\n", out)
	})

	t.Run("events subcommand for a month without events", func(t *testing.T) {
		out, err := run(t, testConfig(t, writeCalendar(t)), "events", "--month", "3")

		require.NoError(t, err)
		assert.Equal(t, "Date,Category,Description\n", out)
	})

	t.Run("help describes the calendar file", func(t *testing.T) {
		out, err := run(t, testConfig(t, ""), "-h")

		require.NoError(t, err)
		assert.Contains(t, out, "Events are loaded from ~/.cal2/cal2.ini")
		assert.Contains(t, out, "--twelve")
	})
}

func TestNewRouter(t *testing.T) {
	deps := BuildDependencies(writeCalendar(t), calendar.SundayFirst, utils.NewMockClock(2024, time.December, 25))
	r := NewRouter(deps)

	t.Run("month by path", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/calendar/2015/2?color=false", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Body.String(), "     February 2015\n"))
		assert.Contains(t, w.Body.String(), "Legend:")
	})

	t.Run("non numeric path does not match", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/calendar/2015/feb", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("events as json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"description":"Valentine"`)
	})

	t.Run("view by query", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/calendar?view=year&year=2015&color=false", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Body.String(), strings.Repeat(" ", 38)+"2015\n"))
	})
}

func TestBuildDependencies(t *testing.T) {
	t.Run("missing calendar file falls back to defaults", func(t *testing.T) {
		deps := BuildDependencies(filepath.Join(t.TempDir(), "missing.ini"), calendar.SundayFirst, utils.SystemClock{})

		assert.True(t, deps.Events.Empty())
		assert.Equal(t, palette.Default(), deps.CalendarFile.Palette)
	})

	t.Run("loads events and colors", func(t *testing.T) {
		deps := BuildDependencies(writeCalendar(t), calendar.SundayFirst, utils.SystemClock{})

		assert.Equal(t, 1, deps.Events.Len())
		assert.Equal(t, palette.Lookup("green"), deps.CalendarFile.Palette.Style(palette.Holiday))
	})
}
