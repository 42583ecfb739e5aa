package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/bodyinsight/booking-platform/internal/notify"
	"github.com/bodyinsight/booking-platform/internal/observability/metrics"
	"github.com/bodyinsight/booking-platform/pkg/logging"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service runs the email OTP login flow: send a code, verify it, hand back a
// session token plus any stored profile.
type Service struct {
	otps      OTPStore
	sessions  *SessionIssuer
	profiles  ProfileRepository
	mailer    notify.EmailSender
	metrics   *metrics.AuthMetrics
	logger    *logging.Logger
	otpLength int
	otpTTL    time.Duration
}

// ServiceConfig wires a Service.
type ServiceConfig struct {
	OTPs      OTPStore
	Sessions  *SessionIssuer
	Profiles  ProfileRepository
	Mailer    notify.EmailSender
	Metrics   *metrics.AuthMetrics
	Logger    *logging.Logger
	OTPLength int
	OTPTTL    time.Duration
}

// NewService creates the auth service.
func NewService(cfg ServiceConfig) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	ttl := cfg.OTPTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	length := cfg.OTPLength
	if length == 0 {
		length = 6
	}
	return &Service{
		otps:      cfg.OTPs,
		sessions:  cfg.Sessions,
		profiles:  cfg.Profiles,
		mailer:    cfg.Mailer,
		metrics:   cfg.Metrics,
		logger:    logger.Component("auth"),
		otpLength: length,
		otpTTL:    ttl,
	}
}

// SendOTP generates and emails a login code.
func (s *Service) SendOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}

	code, err := GenerateOTP(s.otpLength)
	if err != nil {
		s.metrics.ObserveOTPSend("error")
		return err
	}
	if err := s.otps.Put(ctx, email, code, s.otpTTL); err != nil {
		s.metrics.ObserveOTPSend("error")
		return err
	}

	msg := notify.EmailMessage{
		To:      email,
		Subject: "Your BodyInsight login code",
		Body: fmt.Sprintf(
			"Your one-time login code is %s. It expires in %d minutes.\n\nIf you didn't request this, you can ignore this email.",
			code, int(s.otpTTL.Minutes())),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.metrics.ObserveOTPSend("error")
		return fmt.Errorf("auth: send otp email: %w", err)
	}

	s.metrics.ObserveOTPSend("ok")
	s.logger.Info("otp sent", "email", email)
	return nil
}

// VerifyResult is what a successful OTP verification returns.
type VerifyResult struct {
	Token      string
	Profile    *Profile
	IsComplete bool
}

// VerifyOTP consumes the pending code and issues a session token. The stored
// profile rides along when one exists so booking forms can prefill.
func (s *Service) VerifyOTP(ctx context.Context, email, code string) (*VerifyResult, error) {
	email = normalizeEmail(email)
	if !emailRe.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	if err := s.otps.Verify(ctx, email, code); err != nil {
		s.metrics.ObserveOTPVerify("fail")
		return nil, err
	}

	token, err := s.sessions.Issue(email)
	if err != nil {
		return nil, err
	}

	result := &VerifyResult{Token: token}
	profile, err := s.profiles.Get(ctx, email)
	switch {
	case err == nil:
		result.Profile = profile
		result.IsComplete = profile.IsComplete()
	case errors.Is(err, ErrProfileNotFound):
		// First login; nothing to prefill.
	default:
		// Profile is a convenience, not a login requirement.
		s.logger.Error("failed to load profile", "email", email, "error", err)
	}

	s.metrics.ObserveOTPVerify("ok")
	s.logger.Info("otp verified", "email", email, "has_profile", result.Profile != nil)
	return result, nil
}

// VerifyToken resolves a session token to its email. Used by every
// authenticated booking endpoint.
func (s *Service) VerifyToken(token string) (string, error) {
	return s.sessions.Verify(token)
}
