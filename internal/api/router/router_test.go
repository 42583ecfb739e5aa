package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodyinsight/booking-platform/internal/auth"
	"github.com/bodyinsight/booking-platform/internal/booking"
	"github.com/bodyinsight/booking-platform/internal/contact"
	"github.com/bodyinsight/booking-platform/internal/notify"
	"github.com/bodyinsight/booking-platform/internal/schedule"
	"github.com/bodyinsight/booking-platform/internal/slots"
)

var otpRe = regexp.MustCompile(`\b(\d{6})\b`)

type captureMailer struct {
	mu   sync.Mutex
	sent []notify.EmailMessage
}

func (c *captureMailer) Send(ctx context.Context, msg notify.EmailMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, msg)
	return nil
}

func (c *captureMailer) lastBody(t *testing.T) string {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.sent)
	return c.sent[len(c.sent)-1].Body
}

func newTestServer(t *testing.T) (http.Handler, *captureMailer) {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	mailer := &captureMailer{}
	profiles := auth.NewInMemoryProfileRepository()

	authSvc := auth.NewService(auth.ServiceConfig{
		OTPs:     auth.NewRedisOTPStore(redisClient, 5),
		Sessions: auth.NewSessionIssuer("test-secret", time.Hour),
		Profiles: profiles,
		Mailer:   mailer,
	})

	events := []schedule.Event{{
		EventID:     1,
		City:        "Bangalore",
		Area:        "HSR Layout",
		Landmark:    "Cult.fit HSR Layout",
		Day:         "Saturday",
		DisplayDate: "Sep 6",
		FullDate:    "2026-09-06",
		TimeWindow:  "9 AM - 7 PM",
		Amount:      2999,
	}}
	scheduleSvc := schedule.NewService(
		schedule.NewInMemoryRepository(events),
		slots.NewGenerator(slots.AlwaysAvailable{}),
		nil, nil,
	)

	notifier := notify.NewService(mailer, "support@bodyinsight.in", nil)
	bookingSvc := booking.NewService(booking.ServiceConfig{
		Repo:     booking.NewInMemoryRepository(),
		Schedule: scheduleSvc,
		Tokens:   authSvc,
		Profiles: profiles,
		Notifier: notifier,
	})

	handler := New(&Config{
		AuthHandler:     auth.NewHandler(authSvc, nil),
		ScheduleHandler: schedule.NewHandler(scheduleSvc, nil),
		BookingHandler:  booking.NewHandler(bookingSvc, nil),
		ContactHandler:  contact.NewHandler(contact.NewInMemoryRepository(), notifier, nil),
	})
	return handler, mailer
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr *strings.Reader
	if body == "" {
		rdr = strings.NewReader("{}")
	} else {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// Walks the whole booking journey through the HTTP surface: request an OTP,
// verify it, confirm nothing is pending, pick a slot, apply a coupon and book.
func TestBookingJourney(t *testing.T) {
	h, mailer := newTestServer(t)

	// Step 1: request an OTP.
	rec := doJSON(t, h, http.MethodPost, "/login", `{"email":"asha@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	code := otpRe.FindStringSubmatch(mailer.lastBody(t))
	require.NotNil(t, code)

	// Step 2: verify it and collect the session token.
	rec = doJSON(t, h, http.MethodPost, "/verifyLoginOtp",
		`{"email":"asha@example.com","otp":"`+code[1]+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var verify struct {
		Token      string `json:"token"`
		IsComplete bool   `json:"isComplete"`
	}
	decode(t, rec, &verify)
	require.NotEmpty(t, verify.Token)
	assert.False(t, verify.IsComplete)

	// Step 3: nothing pending yet.
	rec = doJSON(t, h, http.MethodPost, "/checkPendingAppointment", `{"token":"`+verify.Token+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var pending booking.PendingStatus
	decode(t, rec, &pending)
	assert.False(t, pending.HasPendingAppointment)

	// Step 4: pick a slot off the schedule.
	rec = doJSON(t, h, http.MethodPost, "/findAvailableAppointments", `{"eventId":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var found struct {
		Appointments []schedule.Appointment `json:"appointments"`
	}
	decode(t, rec, &found)
	require.NotEmpty(t, found.Appointments)
	slot := found.Appointments[0]

	// Step 5: a coupon prices the slot down.
	rec = doJSON(t, h, http.MethodPost, "/applyCouponCode",
		`{"token":"`+verify.Token+`","appointmentId":"`+slot.ID+`","code":"FIRST50"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var quote booking.Pricing
	decode(t, rec, &quote)
	assert.Equal(t, 2999, quote.BasePrice)
	assert.Equal(t, 1500, quote.FinalPrice)

	// Step 6: book it.
	rec = doJSON(t, h, http.MethodPost, "/bookAppointment",
		`{"token":"`+verify.Token+`","appointmentId":"`+slot.ID+`","name":"Asha Rao","dateOfBirth":"1990-04-12","phone":"9876543210","coupon":"FIRST50"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var booked struct {
		RefNumber string          `json:"refNumber"`
		Pricing   booking.Pricing `json:"pricing"`
	}
	decode(t, rec, &booked)
	assert.True(t, strings.HasPrefix(booked.RefNumber, "BI-"))
	assert.Equal(t, 1500, booked.Pricing.FinalPrice)

	// The pending check now blocks a second booking.
	rec = doJSON(t, h, http.MethodPost, "/checkPendingAppointment", `{"token":"`+verify.Token+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &pending)
	assert.True(t, pending.HasPendingAppointment)
	assert.Equal(t, slot.ID, pending.PendingAppointmentID)

	rec = doJSON(t, h, http.MethodPost, "/bookAppointment",
		`{"token":"`+verify.Token+`","appointmentId":"`+slot.ID+`","name":"Asha Rao","dateOfBirth":"1990-04-12"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// A later login prefills from the booking's profile.
	rec = doJSON(t, h, http.MethodPost, "/login", `{"email":"asha@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	code = otpRe.FindStringSubmatch(mailer.lastBody(t))
	require.NotNil(t, code)
	rec = doJSON(t, h, http.MethodPost, "/verifyLoginOtp",
		`{"email":"asha@example.com","otp":"`+code[1]+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var second struct {
		Profile    *auth.Profile `json:"profile"`
		IsComplete bool          `json:"isComplete"`
	}
	decode(t, rec, &second)
	require.NotNil(t, second.Profile)
	assert.Equal(t, "Asha Rao", second.Profile.Name)
	assert.True(t, second.IsComplete)
}

func TestAuthenticatedEndpointsReject401(t *testing.T) {
	h, _ := newTestServer(t)

	paths := []string{
		"/checkPendingAppointment",
		"/cancelUpcomingAppointment",
		"/applyCouponCode",
		"/bookAppointment",
	}
	for _, path := range paths {
		rec := doJSON(t, h, http.MethodPost, path,
			`{"token":"forged","appointmentId":"e1-m540","name":"A","dateOfBirth":"1990-01-01","code":"FIRST50"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "path %s", path)
	}
}

func TestContactUsThroughRouter(t *testing.T) {
	h, mailer := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/contactUs",
		`{"name":"Asha Rao","email":"asha@example.com","message":"Do I need to fast?"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotEmpty(t, mailer.sent)
	assert.Equal(t, "support@bodyinsight.in", mailer.sent[len(mailer.sent)-1].To)
}

func TestLoginRateLimited(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	authSvc := auth.NewService(auth.ServiceConfig{
		OTPs:     auth.NewRedisOTPStore(redisClient, 5),
		Sessions: auth.NewSessionIssuer("test-secret", time.Hour),
		Profiles: auth.NewInMemoryProfileRepository(),
		Mailer:   &captureMailer{},
	})
	h := New(&Config{
		AuthHandler: auth.NewHandler(authSvc, nil),
		OTPRate:     0.01,
		OTPBurst:    2,
	})

	for i := 0; i < 2; i++ {
		rec := doJSON(t, h, http.MethodPost, "/login", `{"email":"asha@example.com"}`)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}
	rec := doJSON(t, h, http.MethodPost, "/login", `{"email":"asha@example.com"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
