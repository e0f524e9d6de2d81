package model

import (
	"fmt"
	"strings"
	"time"
)

// Weekday names in the order the availability string lists them.
var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func validWeekday(name string) bool {
	for _, d := range weekdayNames {
		if d == name {
			return true
		}
	}
	return false
}

// Availability is the structured form of a doctor's denormalized availability
// string ("Monday, Tuesday from 09:00 to 17:00"). Days hold canonical weekday
// names; From and To are HH:MM times of day.
type Availability struct {
	Days []string `json:"days"`
	From string   `json:"from"`
	To   string   `json:"to"`
}

// Validate requires at least one valid weekday and a complete HH:MM time
// window.
func (a Availability) Validate() error {
	if len(a.Days) == 0 {
		return fmt.Errorf("availability requires at least one day")
	}
	for _, d := range a.Days {
		if !validWeekday(d) {
			return fmt.Errorf("invalid weekday %q", d)
		}
	}
	if a.From == "" || a.To == "" {
		return fmt.Errorf("availability requires a complete time range")
	}
	for _, t := range []string{a.From, a.To} {
		if _, err := time.Parse("15:04", t); err != nil {
			return fmt.Errorf("invalid time of day %q: expected HH:MM", t)
		}
	}
	return nil
}

// String renders the stored representation. ParseAvailability inverts it.
func (a Availability) String() string {
	return fmt.Sprintf("%s from %s to %s", strings.Join(a.Days, ", "), a.From, a.To)
}

// ParseAvailability parses the stored availability string back into its day
// set and time window so the record can be edited.
func ParseAvailability(s string) (Availability, error) {
	var a Availability

	days, window, ok := strings.Cut(s, " from ")
	if !ok {
		return a, fmt.Errorf("malformed availability %q", s)
	}
	from, to, ok := strings.Cut(window, " to ")
	if !ok {
		return a, fmt.Errorf("malformed availability window %q", window)
	}

	a.Days = strings.Split(days, ", ")
	a.From = from
	a.To = to

	if err := a.Validate(); err != nil {
		return Availability{}, err
	}
	return a, nil
}
