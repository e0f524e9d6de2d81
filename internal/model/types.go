package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout   = "2006-01-02"
	minuteLayout = "2006-01-02T15:04"
)

// Date is a calendar date with no time-of-day component. It marshals as
// "YYYY-MM-DD" and maps to a DATE column.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(s string) error {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("cannot scan %q into Date: %w", s, err)
	}
	d.Time = t
	return nil
}

// DateTime is a timestamp at minute granularity, the stored resolution for
// appointment start times. It marshals as "YYYY-MM-DDTHH:MM".
type DateTime struct {
	time.Time
}

// DateTimeOf truncates t to the minute.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{t.Truncate(time.Minute)}
}

func (dt DateTime) String() string {
	return dt.Format(minuteLayout)
}

// Equal compares at minute granularity.
func (dt DateTime) Equal(other DateTime) bool {
	return dt.Time.Truncate(time.Minute).Equal(other.Time.Truncate(time.Minute))
}

func (dt DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + dt.Format(minuteLayout) + `"`), nil
}

func (dt *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	for _, layout := range []string{minuteLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			dt.Time = t.Truncate(time.Minute)
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q: expected YYYY-MM-DDTHH:MM", s)
}

func (dt DateTime) Value() (driver.Value, error) {
	return dt.Time, nil
}

func (dt *DateTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*dt = DateTimeOf(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateTime", src)
	}
}
