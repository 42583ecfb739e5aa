package booking

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/bodyinsight/booking-platform/internal/auth"
	"github.com/bodyinsight/booking-platform/internal/notify"
	"github.com/bodyinsight/booking-platform/internal/observability/metrics"
	"github.com/bodyinsight/booking-platform/internal/pricing"
	"github.com/bodyinsight/booking-platform/internal/schedule"
	"github.com/bodyinsight/booking-platform/pkg/logging"
)

var bookingTracer = otel.Tracer("bodyinsight.internal.booking")

// TokenVerifier resolves a session token to the email it was issued for.
// Implemented by the auth service.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// Service owns the booking lifecycle: pending checks, coupon pricing,
// booking and cancellation.
type Service struct {
	repo      Repository
	schedule  *schedule.Service
	tokens    TokenVerifier
	profiles  auth.ProfileRepository
	notifier  *notify.Service
	metrics   *metrics.BookingMetrics
	logger    *logging.Logger
	refPrefix string
}

// ServiceConfig wires a Service.
type ServiceConfig struct {
	Repo      Repository
	Schedule  *schedule.Service
	Tokens    TokenVerifier
	Profiles  auth.ProfileRepository
	Notifier  *notify.Service
	Metrics   *metrics.BookingMetrics
	Logger    *logging.Logger
	RefPrefix string
}

// NewService creates the booking service.
func NewService(cfg ServiceConfig) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	prefix := cfg.RefPrefix
	if prefix == "" {
		prefix = "BI-"
	}
	return &Service{
		repo:      cfg.Repo,
		schedule:  cfg.Schedule,
		tokens:    cfg.Tokens,
		profiles:  cfg.Profiles,
		notifier:  cfg.Notifier,
		metrics:   cfg.Metrics,
		logger:    logger.Component("booking"),
		refPrefix: prefix,
	}
}

// PendingStatus reports whether the user already holds a pending booking.
type PendingStatus struct {
	HasPendingAppointment bool   `json:"hasPendingAppointment"`
	PendingAppointmentID  string `json:"pendingAppointmentId,omitempty"`
	Landmark              string `json:"landmark,omitempty"`
	Area                  string `json:"area,omitempty"`
	Date                  string `json:"date,omitempty"`
	Time                  string `json:"time,omitempty"`
}

// CheckPending answers whether the token's user already has a pending
// booking. Invalid tokens surface auth.ErrInvalidToken.
func (s *Service) CheckPending(ctx context.Context, token string) (*PendingStatus, error) {
	email, err := s.tokens.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	b, err := s.repo.FindPending(ctx, email)
	if errors.Is(err, ErrBookingNotFound) {
		return &PendingStatus{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &PendingStatus{
		HasPendingAppointment: true,
		PendingAppointmentID:  b.AppointmentID,
		Landmark:              b.Landmark,
		Area:                  b.Area,
		Date:                  b.Date,
		Time:                  b.SlotTime,
	}, nil
}

// GetAppointment resolves an appointment id to its slot and event details.
func (s *Service) GetAppointment(ctx context.Context, appointmentID string) (*schedule.Appointment, *schedule.Event, error) {
	return s.schedule.ResolveAppointment(ctx, appointmentID)
}

// Cancel cancels the user's pending booking for an appointment.
func (s *Service) Cancel(ctx context.Context, token, appointmentID string) error {
	email, err := s.tokens.VerifyToken(token)
	if err != nil {
		return err
	}
	if err := s.repo.Cancel(ctx, email, appointmentID); err != nil {
		return err
	}
	s.metrics.ObserveCancellation()
	s.logger.Info("booking cancelled", "email", email, "appointment_id", appointmentID)
	return nil
}

// ApplyCoupon prices an appointment under a coupon code. The server is the
// sole source of pricing; clients render whatever breakdown comes back.
func (s *Service) ApplyCoupon(ctx context.Context, token, appointmentID, code string) (*Pricing, *pricing.Coupon, error) {
	if _, err := s.tokens.VerifyToken(token); err != nil {
		return nil, nil, err
	}

	appt, _, err := s.schedule.ResolveAppointment(ctx, appointmentID)
	if err != nil {
		return nil, nil, err
	}

	coupon, ok := pricing.Lookup(code)
	if !ok {
		s.metrics.ObserveCouponApply("invalid")
		return nil, nil, ErrInvalidCoupon
	}

	s.metrics.ObserveCouponApply("ok")
	return &Pricing{
		BasePrice:  appt.BasePrice,
		Discount:   coupon.DiscountPercent,
		FinalPrice: pricing.Quote(appt.BasePrice, coupon.DiscountPercent),
	}, &coupon, nil
}

// BookRequest is a booking submission.
type BookRequest struct {
	Token         string  `json:"token"`
	AppointmentID string  `json:"appointmentId"`
	Name          string  `json:"name"`
	DateOfBirth   string  `json:"dateOfBirth"`
	Phone         string  `json:"phone,omitempty"`
	Coupon        string  `json:"coupon,omitempty"`
	Height        float64 `json:"height,omitempty"`
	Weight        float64 `json:"weight,omitempty"`
	Gender        string  `json:"gender,omitempty"`
}

// Book confirms a booking. The submission is accepted once; a user with a
// pending booking is blocked until they cancel it. The profile fields ride
// along so the next login can prefill the form.
func (s *Service) Book(ctx context.Context, req BookRequest) (*Booking, error) {
	ctx, span := bookingTracer.Start(ctx, "booking.book")
	defer span.End()

	email, err := s.tokens.VerifyToken(req.Token)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("bodyinsight.appointment_id", req.AppointmentID))

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.DateOfBirth) == "" {
		return nil, ErrIncompleteDetails
	}

	if _, err := s.repo.FindPending(ctx, email); err == nil {
		s.metrics.ObserveBooking("blocked")
		return nil, ErrPendingExists
	} else if !errors.Is(err, ErrBookingNotFound) {
		return nil, err
	}

	appt, event, err := s.schedule.ResolveAppointment(ctx, req.AppointmentID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	price := Pricing{BasePrice: appt.BasePrice, FinalPrice: appt.BasePrice}
	couponCode := ""
	if strings.TrimSpace(req.Coupon) != "" {
		coupon, ok := pricing.Lookup(req.Coupon)
		if !ok {
			return nil, ErrInvalidCoupon
		}
		couponCode = coupon.Code
		price.Discount = coupon.DiscountPercent
		price.FinalPrice = pricing.Quote(appt.BasePrice, coupon.DiscountPercent)
	}

	b := &Booking{
		RefNumber:     NewRefNumber(s.refPrefix),
		Email:         email,
		AppointmentID: req.AppointmentID,
		EventID:       event.EventID,
		Landmark:      event.Landmark,
		Area:          event.Area,
		Date:          event.DisplayDate,
		FullDate:      event.FullDate,
		SlotTime:      appt.DisplayTime,
		Name:          strings.TrimSpace(req.Name),
		DateOfBirth:   strings.TrimSpace(req.DateOfBirth),
		Phone:         strings.TrimSpace(req.Phone),
		Coupon:        couponCode,
		BasePrice:     price.BasePrice,
		Discount:      price.Discount,
		FinalPrice:    price.FinalPrice,
		Status:        StatusPending,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		s.metrics.ObserveBooking("error")
		span.RecordError(err)
		return nil, err
	}

	if s.profiles != nil {
		profile := &auth.Profile{
			Email:       email,
			Name:        b.Name,
			Phone:       b.Phone,
			DateOfBirth: b.DateOfBirth,
			Height:      req.Height,
			Weight:      req.Weight,
			Gender:      strings.TrimSpace(req.Gender),
		}
		if err := s.profiles.Upsert(ctx, profile); err != nil {
			// Prefill data only; the booking already stands.
			s.logger.Error("profile upsert failed", "email", email, "error", err)
		}
	}

	if s.notifier != nil {
		s.notifier.SendBookingConfirmation(ctx, notify.BookingConfirmation{
			Email:      email,
			Name:       b.Name,
			RefNumber:  b.RefNumber,
			Landmark:   b.Landmark,
			Date:       b.Date,
			SlotTime:   b.SlotTime,
			FinalPrice: pricing.FormatPrice(b.FinalPrice),
		})
	}

	s.metrics.ObserveBooking("ok")
	s.logger.Info("booking confirmed",
		"ref", b.RefNumber, "email", email, "landmark", b.Landmark, "slot", b.SlotTime)
	return b, nil
}
