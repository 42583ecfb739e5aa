package schedule

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(newTestService(t), nil)
}

func TestHandlerListEvents(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/schedule", nil)
	rec := httptest.NewRecorder()
	h.ListEvents(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp struct {
		Events []Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 3)
	assert.Equal(t, "HSR Layout", resp.Events[0].Area)
	assert.Equal(t, "9 AM - 7 PM", resp.Events[0].TimeWindow)
}

func TestHandlerFindAvailableAppointments(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/findAvailableAppointments",
		strings.NewReader(`{"eventId": 1}`))
	rec := httptest.NewRecorder()
	h.FindAvailableAppointments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Appointments []Appointment `json:"appointments"`
		Event        *EventInfo    `json:"event"`
		Promo        string        `json:"promo"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Event)
	assert.Equal(t, "Cult.fit HSR Layout", resp.Event.Landmark)
	assert.Len(t, resp.Appointments, 40)
	assert.Equal(t, "e1-m540", resp.Appointments[0].ID)
}

func TestHandlerFindAvailableAppointmentsStatusCodes(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"unknown event", `{"eventId": 99}`, http.StatusNotFound, "Event not found"},
		{"full event", `{"eventId": 2}`, http.StatusConflict, "This event is fully booked"},
		{"bad body", `{"eventId": `, http.StatusBadRequest, "Invalid request body"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/findAvailableAppointments",
				strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h.FindAvailableAppointments(rec, req)

			require.Equal(t, tc.status, rec.Code)
			var resp struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.message, resp.Message)
		})
	}
}

func TestHandlerFindAvailableAppointmentsEmptyWindow(t *testing.T) {
	// An unparseable window is a data problem, not a client error: the
	// event still renders, just with nothing bookable.
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/findAvailableAppointments",
		strings.NewReader(`{"eventId": 3}`))
	rec := httptest.NewRecorder()
	h.FindAvailableAppointments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp findAppointmentsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Appointments)
	assert.Equal(t, "Residents and members only", resp.Event.AccessText)
}
