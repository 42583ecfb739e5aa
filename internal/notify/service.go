package notify

import (
	"context"
	"fmt"

	"github.com/bodyinsight/booking-platform/pkg/logging"
)

// Service sends the operational emails around bookings: confirmations to the
// user and contact-form copies to support. Notification failures are logged
// and swallowed; a booking never fails because an email bounced.
type Service struct {
	email        EmailSender
	supportEmail string
	logger       *logging.Logger
}

// NewService creates a notification service.
func NewService(email EmailSender, supportEmail string, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{email: email, supportEmail: supportEmail, logger: logger.Component("notify")}
}

// BookingConfirmation is what the confirmation email needs.
type BookingConfirmation struct {
	Email      string
	Name       string
	RefNumber  string
	Landmark   string
	Date       string
	SlotTime   string
	FinalPrice string
}

// SendBookingConfirmation emails the user their booking reference.
func (s *Service) SendBookingConfirmation(ctx context.Context, bc BookingConfirmation) {
	if s.email == nil {
		return
	}
	msg := EmailMessage{
		To:      bc.Email,
		ToName:  bc.Name,
		Subject: fmt.Sprintf("Your scan is booked: %s", bc.RefNumber),
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour DEXA scan is confirmed.\n\nReference: %s\nLocation: %s\nDate: %s\nTime: %s\nAmount: %s\n\nNo preparation needed, just show up in comfortable clothing.\n",
			bc.Name, bc.RefNumber, bc.Landmark, bc.Date, bc.SlotTime, bc.FinalPrice),
	}
	if err := s.email.Send(ctx, msg); err != nil {
		s.logger.Error("booking confirmation email failed", "error", err, "ref", bc.RefNumber)
	}
}

// ForwardContactMessage sends a copy of a contact-form submission to support.
func (s *Service) ForwardContactMessage(ctx context.Context, fromEmail, subject, message string) {
	if s.email == nil || s.supportEmail == "" {
		return
	}
	msg := EmailMessage{
		To:      s.supportEmail,
		Subject: fmt.Sprintf("[contact] %s", subject),
		Body:    fmt.Sprintf("From: %s\n\n%s", fromEmail, message),
	}
	if err := s.email.Send(ctx, msg); err != nil {
		s.logger.Error("contact forward email failed", "error", err, "from", fromEmail)
	}
}
