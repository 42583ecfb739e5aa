package booking

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Booking statuses. A pending booking blocks new bookings for the same email
// until it is cancelled or the scan day passes.
const (
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// Booking is one confirmed scan reservation.
type Booking struct {
	ID            uuid.UUID `json:"-"`
	RefNumber     string    `json:"refNumber"`
	Email         string    `json:"email"`
	AppointmentID string    `json:"appointmentId"`
	EventID       int       `json:"-"`
	Landmark      string    `json:"landmark"`
	Area          string    `json:"area"`
	Date          string    `json:"date"`
	FullDate      string    `json:"fullDate"`
	SlotTime      string    `json:"time"`
	Name          string    `json:"name"`
	DateOfBirth   string    `json:"dateOfBirth"`
	Phone         string    `json:"phone,omitempty"`
	Coupon        string    `json:"coupon,omitempty"`
	BasePrice     int       `json:"basePrice"`
	Discount      int       `json:"discount"`
	FinalPrice    int       `json:"finalPrice"`
	Status        string    `json:"-"`
	CreatedAt     time.Time `json:"-"`
}

// Pricing is the price breakdown returned by coupon application and booking.
// Discount is a percentage; zero means base price applies untouched.
type Pricing struct {
	BasePrice  int `json:"basePrice"`
	Discount   int `json:"discount"`
	FinalPrice int `json:"finalPrice"`
}

// NewRefNumber builds a booking reference like BI-3K7F9Q2M: the prefix plus
// eight base36 characters from a random 64-bit value.
func NewRefNumber(prefix string) string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fall back to the clock; references only need to be unique enough
		// for support lookups, uniqueness is enforced by the database.
		binary.BigEndian.PutUint64(buf[:], uint64(time.Now().UnixNano()))
	}
	n := binary.BigEndian.Uint64(buf[:])
	s := strings.ToUpper(strconv.FormatUint(n, 36))
	if len(s) > 8 {
		s = s[:8]
	}
	return fmt.Sprintf("%s%s", prefix, s)
}
