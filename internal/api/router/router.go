// Package router assembles the HTTP API: public schedule and contact
// endpoints, the OTP login flow and the authenticated booking endpoints.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bodyinsight/booking-platform/internal/auth"
	"github.com/bodyinsight/booking-platform/internal/booking"
	"github.com/bodyinsight/booking-platform/internal/contact"
	httpmiddleware "github.com/bodyinsight/booking-platform/internal/http/middleware"
	"github.com/bodyinsight/booking-platform/internal/httpx"
	"github.com/bodyinsight/booking-platform/internal/report"
	"github.com/bodyinsight/booking-platform/internal/schedule"
	"github.com/bodyinsight/booking-platform/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger          *logging.Logger
	AuthHandler     *auth.Handler
	ScheduleHandler *schedule.Handler
	BookingHandler  *booking.Handler
	ContactHandler  *contact.Handler
	ReportHandler   *report.Handler
	MetricsHandler  http.Handler

	CORSAllowedOrigins []string

	// OTPRate limits /login per client IP; zero disables the limiter.
	OTPRate  float64
	OTPBurst int
}

// New creates a chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.AuthHandler != nil {
		if cfg.OTPRate > 0 {
			r.With(httpmiddleware.RateLimit(cfg.OTPRate, cfg.OTPBurst)).Post("/login", cfg.AuthHandler.Login)
		} else {
			r.Post("/login", cfg.AuthHandler.Login)
		}
		r.Post("/verifyLoginOtp", cfg.AuthHandler.VerifyLoginOTP)
	}

	if cfg.ScheduleHandler != nil {
		r.Post("/schedule", cfg.ScheduleHandler.ListEvents)
		r.Post("/findAvailableAppointments", cfg.ScheduleHandler.FindAvailableAppointments)
	}

	if cfg.BookingHandler != nil {
		r.Post("/checkPendingAppointment", cfg.BookingHandler.CheckPendingAppointment)
		r.Post("/getAppointment", cfg.BookingHandler.GetAppointment)
		r.Post("/cancelUpcomingAppointment", cfg.BookingHandler.CancelUpcomingAppointment)
		r.Post("/applyCouponCode", cfg.BookingHandler.ApplyCouponCode)
		r.Post("/bookAppointment", cfg.BookingHandler.BookAppointment)
	}

	if cfg.ContactHandler != nil {
		r.Post("/contactUs", cfg.ContactHandler.ContactUs)
	}

	if cfg.ReportHandler != nil {
		r.Route("/reports", func(rep chi.Router) {
			rep.Get("/{id}", cfg.ReportHandler.GetReport)
			rep.Get("/{id}/charts/{series}", cfg.ReportHandler.GetChart)
		})
	}

	return r
}
