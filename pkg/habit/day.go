package habit

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	layoutDate = "Mon Jan 02 2006"
	layoutISO  = "2006-01-02"
)

// Day is a calendar date in the local zone with no time component. The zero
// Day means no date has been recorded.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// Today returns the local calendar day of now.
func Today(now time.Time) Day {
	y, m, d := now.Local().Date()
	return Day{Year: y, Month: m, Day: d}
}

// ParseDay accepts both "Mon Jan 02 2006" and "2006-01-02".
func ParseDay(v string) (Day, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return Day{}, nil
	}
	for _, layout := range []string{layoutDate, layoutISO} {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return Today(t), nil
		}
	}
	return Day{}, fmt.Errorf("habit: unrecognized date %q", v)
}

// IsZero reports whether no day has been recorded.
func (d Day) IsZero() bool {
	return d == Day{}
}

// Equal reports whether d and o are the same calendar day.
func (d Day) Equal(o Day) bool {
	return d == o
}

// Time returns local midnight at the start of d.
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// String renders d like "Sat Oct 17 2026", or "" for the zero Day.
func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(layoutDate)
}

// MarshalJSON encodes d as its String form.
func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts any form ParseDay does.
func (d *Day) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
