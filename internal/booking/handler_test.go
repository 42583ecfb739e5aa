package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*chi.Mux, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	h := NewHandler(env.service, nil)

	r := chi.NewRouter()
	r.Post("/checkPendingAppointment", h.CheckPendingAppointment)
	r.Post("/getAppointment", h.GetAppointment)
	r.Post("/cancelUpcomingAppointment", h.CancelUpcomingAppointment)
	r.Post("/applyCouponCode", h.ApplyCouponCode)
	r.Post("/bookAppointment", h.BookAppointment)
	return r, env
}

func postJSON(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandlerBookAppointment(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := postJSON(t, r, "/bookAppointment",
		`{"token":"tok-asha","appointmentId":"e1-m540","name":"Asha Rao","dateOfBirth":"1990-04-12","coupon":"FIRST50"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp bookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.RefNumber, "BI-"))
	assert.Equal(t, Pricing{BasePrice: 2999, Discount: 50, FinalPrice: 1500}, resp.Pricing)
}

func TestHandlerBookAppointmentStatusCodes(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"bad json", `{`, http.StatusBadRequest},
		{"invalid token", `{"token":"nope","appointmentId":"e1-m540","name":"A","dateOfBirth":"1990-01-01"}`, http.StatusUnauthorized},
		{"missing name", `{"token":"tok-asha","appointmentId":"e1-m540","dateOfBirth":"1990-01-01"}`, http.StatusBadRequest},
		{"unknown appointment", `{"token":"tok-asha","appointmentId":"e5-m540","name":"A","dateOfBirth":"1990-01-01"}`, http.StatusNotFound},
		{"bad coupon", `{"token":"tok-asha","appointmentId":"e1-m540","name":"A","dateOfBirth":"1990-01-01","coupon":"NOPE"}`, http.StatusUnprocessableEntity},
		{"full event", `{"token":"tok-asha","appointmentId":"e6-m540","name":"A","dateOfBirth":"1990-01-01"}`, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := newTestRouter(t)
			rec := postJSON(t, r, "/bookAppointment", tc.body)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestHandlerDuplicateBookingConflict(t *testing.T) {
	r, _ := newTestRouter(t)

	body := `{"token":"tok-asha","appointmentId":"e1-m540","name":"Asha Rao","dateOfBirth":"1990-04-12"}`
	require.Equal(t, http.StatusOK, postJSON(t, r, "/bookAppointment", body).Code)

	rec := postJSON(t, r, "/bookAppointment", body)
	require.Equal(t, http.StatusConflict, rec.Code)
	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "You already have an upcoming appointment", resp.Message)
}

func TestHandlerCheckPendingAppointment(t *testing.T) {
	r, env := newTestRouter(t)

	rec := postJSON(t, r, "/checkPendingAppointment", `{"token":"tok-asha"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var status PendingStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.False(t, status.HasPendingAppointment)

	_, err := env.service.Book(context.Background(), BookRequest{
		Token: "tok-asha", AppointmentID: "e1-m540",
		Name: "Asha Rao", DateOfBirth: "1990-04-12",
	})
	require.NoError(t, err)

	rec = postJSON(t, r, "/checkPendingAppointment", `{"token":"tok-asha"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.HasPendingAppointment)
	assert.Equal(t, "e1-m540", status.PendingAppointmentID)

	assert.Equal(t, http.StatusUnauthorized,
		postJSON(t, r, "/checkPendingAppointment", `{"token":"stale"}`).Code)
}

func TestHandlerGetAppointment(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := postJSON(t, r, "/getAppointment", `{"appointmentId":"e1-m615"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp getAppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, "10:15 AM", resp.Appointment.DisplayTime)
	require.NotNil(t, resp.Event)
	assert.Equal(t, "Cult.fit HSR Layout", resp.Event.Landmark)

	assert.Equal(t, http.StatusNotFound,
		postJSON(t, r, "/getAppointment", `{"appointmentId":"e1-m9999"}`).Code)
}

func TestHandlerCancelUpcomingAppointment(t *testing.T) {
	r, env := newTestRouter(t)

	_, err := env.service.Book(context.Background(), BookRequest{
		Token: "tok-asha", AppointmentID: "e1-m540",
		Name: "Asha Rao", DateOfBirth: "1990-04-12",
	})
	require.NoError(t, err)

	rec := postJSON(t, r, "/cancelUpcomingAppointment", `{"token":"tok-asha","appointmentId":"e1-m540"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Gone now.
	assert.Equal(t, http.StatusNotFound,
		postJSON(t, r, "/cancelUpcomingAppointment", `{"token":"tok-asha","appointmentId":"e1-m540"}`).Code)
}

func TestHandlerApplyCouponCode(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := postJSON(t, r, "/applyCouponCode", `{"token":"tok-asha","appointmentId":"e1-m540","code":"bodyinsight"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp applyCouponResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2999, resp.BasePrice)
	assert.Equal(t, 20, resp.Discount)
	assert.Equal(t, 2399, resp.FinalPrice)
	assert.Equal(t, "Coupon applied: 20% off", resp.Message)

	assert.Equal(t, http.StatusUnprocessableEntity,
		postJSON(t, r, "/applyCouponCode", `{"token":"tok-asha","appointmentId":"e1-m540","code":"EXPIRED9"}`).Code)
}
