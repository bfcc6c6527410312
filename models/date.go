package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for calendar dates: "2006-01-02".
const dateLayout = "2006-01-02"

// Date is a calendar date without a time component.
//
// It marshals to and from JSON as a "YYYY-MM-DD" string and maps to the
// PostgreSQL DATE column type. The zero value is the zero time.Time and is
// considered invalid for persisted records.
type Date struct {
	time.Time
}

// NewDate constructs a Date from year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// SentinelDeletionDate is the reserved date 2100-01-01 that the historical
// data set used as a deletion marker. Records carrying this date must remain
// invisible to every read operation.
var SentinelDeletionDate = NewDate(2100, time.January, 1)

// Equal reports whether d and other denote the same calendar date.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

// String returns the date in "YYYY-MM-DD" form.
// It implements the [fmt.Stringer] interface.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON encodes the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON decodes a quoted "YYYY-MM-DD" string. A full RFC 3339
// timestamp is also accepted and truncated to its date part, so payloads
// produced by clients that serialize dates as timestamps keep working.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}

	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD: %w", s, err)
		}
	}

	*d = DateOf(parsed)
	return nil
}

// Value implements [driver.Valuer] so a Date can be passed directly as a
// query argument for a DATE column.
func (d Date) Value() (driver.Value, error) {
	return d.Format(dateLayout), nil
}

// Scan implements [sql.Scanner]. It accepts time.Time (the pgx driver's
// representation of DATE), []byte, and string column values.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) parse(s string) error {
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("cannot scan %q into Date: %w", s, err)
	}
	*d = DateOf(parsed)
	return nil
}
