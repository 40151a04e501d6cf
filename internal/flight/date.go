package flight

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day with no time zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate accepts "2006-01-02" or an RFC 3339 timestamp. For timestamps the day is
// taken as written in the value's own offset, never converted to UTC or local time.
func ParseDate(value string) (Date, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Date{}, fmt.Errorf("date is required")
	}

	if t, err := time.Parse(dateLayout, trimmed); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return DateOf(t), nil
	}
	return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
