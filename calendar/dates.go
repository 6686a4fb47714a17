package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Accepted year range for form input
const (
	MinYear = 1900
	MaxYear = 2100
)

const (
	dateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

// Date is a calendar day without time or zone
type Date struct {
	Year, Month, Day int
}

// DateOf returns the calendar day of t in t's location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// ParseDate reads a YYYY-MM-DD date within [MinYear, MaxYear]
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil || t.Year() < MinYear || t.Year() > MaxYear {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// String formats the date with zero-padded month and day
func (d Date) String() string {
	return fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the whole days from d to other, negative when other is earlier
func (d Date) DaysUntil(other Date) int {
	// Unix seconds of UTC midnights differ by exact multiples of a day;
	// time.Duration would saturate past ~292 years
	return int((other.Time().Unix() - d.Time().Unix()) / secondsPerDay)
}

// DaysIn returns the number of days in the month
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ValidDate reports whether the fields name a real day within the accepted year range
func ValidDate(year, month, day int) bool {
	if year < MinYear || year > MaxYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= DaysIn(year, month)
}

// Fields holds the raw text of a three-part date input
type Fields struct {
	Year, Month, Day string
}

// FieldsOf returns the input text for d
func FieldsOf(d Date) Fields {
	return Fields{
		Year:  strconv.Itoa(d.Year),
		Month: fmt.Sprintf("%02d", d.Month),
		Day:   fmt.Sprintf("%02d", d.Day),
	}
}

// Date parses and validates the fields
func (f Fields) Date() (Date, bool) {
	y, err1 := atoi(f.Year)
	m, err2 := atoi(f.Month)
	d, err3 := atoi(f.Day)
	if err1 != nil || err2 != nil || err3 != nil {
		return Date{}, false
	}
	if !ValidDate(y, m, d) {
		return Date{}, false
	}
	return Date{Year: y, Month: m, Day: d}, true
}

// Clamp pins a numeric field into [lo, hi]; non-numeric text is returned unchanged
func Clamp(value string, lo, hi int) string {
	v, err := atoi(value)
	if err != nil {
		return value
	}
	switch {
	case v < lo:
		return strconv.Itoa(lo)
	case v > hi:
		return strconv.Itoa(hi)
	}
	return value
}

// ClampFields applies the per-field bounds of a date input
// Day is bounded by 31, the month length is only checked by ValidDate
func ClampFields(f Fields) Fields {
	return Fields{
		Year:  Clamp(f.Year, MinYear, MaxYear),
		Month: Clamp(f.Month, 1, 12),
		Day:   Clamp(f.Day, 1, 31),
	}
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
