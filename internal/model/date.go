package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day with no time component. The zero value means
// "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int

	// raw keeps stored text that decoded to no date, so it is written back
	// unchanged.
	raw string
}

// dateLayouts are accepted when decoding. The first one is what we write;
// the second is the browser's Date.toDateString() form found in old backups.
var dateLayouts = []string{
	"2006-01-02",
	"Mon Jan 02 2006",
	"2/1/2006",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a calendar day. RFC 3339 instants are converted to the
// local calendar day. An empty string yields the zero Date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return DateOf(t), nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t.Local()), nil
	}
	return Date{}, fmt.Errorf("unrecognized date %q", s)
}

// IsZero reports whether d is unset.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Unrecognized returns the stored text that could not be read as a date,
// or "".
func (d Date) Unrecognized() string {
	return d.raw
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

// Before reports whether d is a strictly earlier calendar day than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// AddDays returns the calendar day n days after d.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.Local).AddDate(0, 0, n))
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalJSON encodes d as "YYYY-MM-DD", or "" when unset. Unrecognized
// text is written back as it was read.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() && d.raw != "" {
		return json.Marshal(d.raw)
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts null, "" and any layout ParseDate understands.
// Other strings decode to the zero Date and are kept for Unrecognized, so
// one odd record does not make the whole blob unreadable. Non-string
// values are still an error.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		*d = Date{raw: s}
		return nil
	}
	*d = parsed
	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
