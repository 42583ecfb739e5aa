package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPStore persists pending one-time passwords. Codes are single use: a
// successful verify consumes the code.
type OTPStore interface {
	Put(ctx context.Context, email, code string, ttl time.Duration) error
	Verify(ctx context.Context, email, code string) error
}

// RedisOTPStore keeps pending OTPs in Redis under otp:<email>, with a
// parallel attempts counter so a code cannot be brute-forced within its TTL.
type RedisOTPStore struct {
	client      *redis.Client
	maxAttempts int
}

// NewRedisOTPStore creates an OTP store. maxAttempts <= 0 defaults to 5.
func NewRedisOTPStore(client *redis.Client, maxAttempts int) *RedisOTPStore {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &RedisOTPStore{client: client, maxAttempts: maxAttempts}
}

func otpKey(email string) string      { return "otp:" + email }
func attemptsKey(email string) string { return "otp_attempts:" + email }

// Put stores a fresh code, replacing any pending one and resetting the
// attempt counter. Resending an OTP therefore invalidates the previous code.
func (s *RedisOTPStore) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, otpKey(email), code, ttl).Err(); err != nil {
		return fmt.Errorf("auth: store otp: %w", err)
	}
	if err := s.client.Set(ctx, attemptsKey(email), 0, ttl).Err(); err != nil {
		return fmt.Errorf("auth: reset otp attempts: %w", err)
	}
	return nil
}

// Verify checks the code. On success both code and counter are deleted; a
// wrong code burns one attempt.
func (s *RedisOTPStore) Verify(ctx context.Context, email, code string) error {
	stored, err := s.client.Get(ctx, otpKey(email)).Result()
	if err == redis.Nil {
		return ErrOTPExpired
	}
	if err != nil {
		return fmt.Errorf("auth: load otp: %w", err)
	}

	attempts, err := s.client.Incr(ctx, attemptsKey(email)).Result()
	if err != nil {
		return fmt.Errorf("auth: count otp attempt: %w", err)
	}
	if attempts > int64(s.maxAttempts) {
		s.client.Del(ctx, otpKey(email), attemptsKey(email))
		return ErrTooManyAttempts
	}

	if stored != code {
		return ErrOTPMismatch
	}

	if err := s.client.Del(ctx, otpKey(email), attemptsKey(email)).Err(); err != nil {
		return fmt.Errorf("auth: consume otp: %w", err)
	}
	return nil
}

// GenerateOTP returns a random numeric code of the given length. Lengths
// outside 4..8 clamp to 6.
func GenerateOTP(length int) (string, error) {
	if length < 4 || length > 8 {
		length = 6
	}
	code := make([]byte, 0, length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("auth: generate otp: %w", err)
		}
		code = strconv.AppendInt(code, n.Int64(), 10)
	}
	return string(code), nil
}
