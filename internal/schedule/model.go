package schedule

import (
	"fmt"
	"regexp"
	"strconv"
)

// Event is one van stop: a landmark, a day and a bookable time window.
// Events are immutable once published; the schedule page groups them by area.
type Event struct {
	EventID     int    `json:"eventId"`
	City        string `json:"city,omitempty"`
	Area        string `json:"area"`
	Landmark    string `json:"landmark"`
	Day         string `json:"day"`
	DisplayDate string `json:"displayDate"`
	FullDate    string `json:"fullDate"`
	TimeWindow  string `json:"time"`
	Amount      int    `json:"amount"`
	IsFull      bool   `json:"isFull"`
	IsPrivate   bool   `json:"isPrivate,omitempty"`
	LocationURL string `json:"locationUrl,omitempty"`
	Promo       string `json:"promo,omitempty"`
}

// EventInfo is the subset of an event the confirmation page shows.
type EventInfo struct {
	Area        string `json:"area"`
	Landmark    string `json:"landmark"`
	LocationURL string `json:"locationUrl"`
	Date        string `json:"date"`
	FullDate    string `json:"fullDate"`
	Amount      int    `json:"amount"`
	IsPrivate   bool   `json:"isPrivate"`
	AccessText  string `json:"accessText"`
}

// Info projects an event into its confirmation-page view.
func (e *Event) Info() EventInfo {
	accessText := "Open to everyone"
	if e.IsPrivate {
		accessText = "Residents and members only"
	}
	return EventInfo{
		Area:        e.Area,
		Landmark:    e.Landmark,
		LocationURL: e.LocationURL,
		Date:        e.DisplayDate,
		FullDate:    e.FullDate,
		Amount:      e.Amount,
		IsPrivate:   e.IsPrivate,
		AccessText:  accessText,
	}
}

// Appointment is one bookable slot of an event.
type Appointment struct {
	ID          string `json:"_id"`
	DisplayTime string `json:"displayTime"`
	Amount      int    `json:"amount"`
	BasePrice   int    `json:"basePrice"`
	FinalPrice  int    `json:"finalPrice"`
}

// Appointment ids encode the event and slot start so they resolve without a
// separate appointments table: e<eventID>-m<minuteOfDay>.
var appointmentIDRe = regexp.MustCompile(`^e(\d+)-m(\d+)$`)

// AppointmentID builds the id for an event slot.
func AppointmentID(eventID, minuteOfDay int) string {
	return fmt.Sprintf("e%d-m%d", eventID, minuteOfDay)
}

// ParseAppointmentID splits an appointment id back into event and slot.
func ParseAppointmentID(id string) (eventID, minuteOfDay int, ok bool) {
	m := appointmentIDRe.FindStringSubmatch(id)
	if m == nil {
		return 0, 0, false
	}
	eventID, _ = strconv.Atoi(m[1])
	minuteOfDay, _ = strconv.Atoi(m[2])
	return eventID, minuteOfDay, true
}
