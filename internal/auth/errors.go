package auth

import "errors"

var (
	// ErrInvalidEmail is returned when the login email fails validation.
	ErrInvalidEmail = errors.New("a valid email is required")

	// ErrOTPMismatch is returned when the submitted OTP is wrong.
	ErrOTPMismatch = errors.New("invalid OTP")

	// ErrOTPExpired is returned when no OTP is pending for the email.
	ErrOTPExpired = errors.New("OTP expired or not requested")

	// ErrTooManyAttempts is returned once the attempt budget for a pending
	// OTP is spent. The user must request a fresh code.
	ErrTooManyAttempts = errors.New("too many incorrect attempts, request a new OTP")

	// ErrInvalidToken is returned for missing, malformed or expired session
	// tokens. Handlers map it to 401.
	ErrInvalidToken = errors.New("invalid or expired session")
)
