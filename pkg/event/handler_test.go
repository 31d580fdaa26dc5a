package event

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []Event{
	{Month: 12, Day: 25, Description: "Christmas", Category: Holiday},
	{Month: 1, Day: 1, Description: "New Year", Category: Holiday},
	{Month: 3, Day: 14, Description: "Albert, physicist", Category: Birthday},
}

func TestCsvRenderer_Render(t *testing.T) {
	t.Run("header and rows", func(t *testing.T) {
		got, err := NewCsvRenderer().Render(NewIndex(sample).InMonth(0))

		require.NoError(t, err)
		assert.Equal(t, "Date,Category,Description\n"+
			"01/01,Holiday,New Year\n"+
			"03/14,Birthday,\"Albert, physicist\"\n"+
			"12/25,Holiday,Christmas\n", got)
	})

	t.Run("no events gives only the header", func(t *testing.T) {
		got, err := NewCsvRenderer().Render(nil)

		require.NoError(t, err)
		assert.Equal(t, "Date,Category,Description\n", got)
	})
}

func TestHandler_GetEvents(t *testing.T) {
	handler := NewHandler(NewIndex(sample), NewCsvRenderer())

	t.Run("json by default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
		w := httptest.NewRecorder()

		handler.GetEvents(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		var got []EventDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 3)
		assert.Equal(t, EventDTO{Month: 1, Day: 1, Date: "01/01", Description: "New Year", Category: "Holiday"}, got[0])
	})

	t.Run("csv for one month", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/events?month=12&format=csv", nil)
		w := httptest.NewRecorder()

		handler.GetEvents(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Equal(t, "Date,Category,Description\n12/25,Holiday,Christmas\n", w.Body.String())
	})

	t.Run("rejects a bad month", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/events?month=0", nil)
		w := httptest.NewRecorder()

		handler.GetEvents(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var got ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Invalid month", got.Error)
	})

	t.Run("rejects an unknown format", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/events?format=xml", nil)
		w := httptest.NewRecorder()

		handler.GetEvents(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
