// Package slots derives bookable 15-minute scan slots from a venue's posted
// time window, e.g. "9 AM - 7 PM" at a given landmark.
package slots

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SlotInterval is the length of one scan appointment in minutes.
const SlotInterval = 15

// Slot is one bookable interval within a venue window.
type Slot struct {
	Label       string `json:"label"`
	MinuteOfDay int    `json:"minuteOfDay"`
	Available   bool   `json:"available"`
}

// Generator expands time windows into slots and asks an oracle for
// availability.
type Generator struct {
	oracle AvailabilityOracle
}

// NewGenerator creates a generator. A nil oracle defaults to the
// deterministic stub.
func NewGenerator(oracle AvailabilityOracle) *Generator {
	if oracle == nil {
		oracle = DeterministicOracle{}
	}
	return &Generator{oracle: oracle}
}

var clockRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(AM|PM)$`)

// ParseWindow parses a window string of the form "<start> - <end>" where each
// side matches H[:MM] (AM|PM). It returns start and end as minutes from
// midnight. Malformed input returns ok=false; callers degrade to an empty
// slot list rather than failing the whole schedule response.
func ParseWindow(window string) (start, end int, ok bool) {
	parts := strings.Split(window, " - ")
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, ok = parseClock(strings.TrimSpace(parts[0]))
	if !ok {
		return 0, 0, false
	}
	end, ok = parseClock(strings.TrimSpace(parts[1]))
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

func parseClock(s string) (int, bool) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}
	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil || minute > 59 {
			return 0, false
		}
	}
	if hour == 12 {
		hour = 0
	}
	if m[3] == "PM" {
		hour += 12
	}
	return hour*60 + minute, true
}

// Generate produces the ordered slots for a window at a landmark. The last
// slot starts at or before end-15 so every scan fits inside the window. A
// window that cannot be parsed, or where end <= start, yields no slots.
func (g *Generator) Generate(window, landmark string) []Slot {
	start, end, ok := ParseWindow(window)
	if !ok || end-start < SlotInterval {
		return nil
	}

	out := make([]Slot, 0, (end-start)/SlotInterval)
	for m := start; m <= end-SlotInterval; m += SlotInterval {
		out = append(out, Slot{
			Label:       FormatMinute(m),
			MinuteOfDay: m,
			Available:   g.oracle.Available(m, landmark),
		})
	}
	return out
}

// Available asks the oracle whether a single slot is still open. Callers
// validating a stored slot id get the same answer Generate would give.
func (g *Generator) Available(minuteOfDay int, landmark string) bool {
	return g.oracle.Available(minuteOfDay, landmark)
}

// FormatMinute renders a minute-of-day as a 12-hour clock label, e.g.
// 0 -> "12:00 AM", 780 -> "1:00 PM".
func FormatMinute(minuteOfDay int) string {
	hour := minuteOfDay / 60
	minute := minuteOfDay % 60
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour
	if display > 12 {
		display -= 12
	}
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}
