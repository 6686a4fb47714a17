package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestValidDate(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		want             bool
	}{
		{"Leap day", 2024, 2, 29, true},
		{"Non-leap Feb 29", 2023, 2, 29, false},
		{"Century non-leap", 1900, 2, 29, false},
		{"April 31", 2024, 4, 31, false},
		{"Upper year bound", 2100, 12, 31, true},
		{"Below year range", 1899, 12, 31, false},
		{"Above year range", 2101, 1, 1, false},
		{"Month zero", 2024, 0, 1, false},
		{"Month 13", 2024, 13, 1, false},
		{"Day zero", 2024, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidDate(tt.year, tt.month, tt.day); got != tt.want {
				t.Errorf("ValidDate(%d, %d, %d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct{ year, month, want int }{
		{2024, 2, 29},
		{2023, 2, 28},
		{2000, 2, 29},
		{2024, 4, 30},
		{2024, 12, 31},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestFields_Date(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		want   Date
		ok     bool
	}{
		{"Padded", Fields{"1990", "01", "05"}, Date{1990, 1, 5}, true},
		{"Unpadded", Fields{"1990", "1", "5"}, Date{1990, 1, 5}, true},
		{"Whitespace", Fields{" 2001 ", "12", "31 "}, Date{2001, 12, 31}, true},
		{"Empty day", Fields{"1990", "01", ""}, Date{}, false},
		{"Not a number", Fields{"19x0", "01", "01"}, Date{}, false},
		{"Fraction", Fields{"1990", "1.5", "01"}, Date{}, false},
		{"Impossible day", Fields{"2023", "02", "29"}, Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.fields.Date()
			if ok != tt.ok || got != tt.want {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestClampFields(t *testing.T) {
	got := ClampFields(Fields{Year: "1800", Month: "13", Day: "45"})
	want := Fields{Year: "1900", Month: "12", Day: "31"}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	got = ClampFields(Fields{Year: "3000", Month: "0", Day: "abc"})
	want = Fields{Year: "2100", Month: "1", Day: "abc"}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if got := Clamp("07", 1, 12); got != "07" {
		t.Errorf("Expected in-range value to be kept verbatim, got %q", got)
	}
}

func TestDate_DaysUntil(t *testing.T) {
	a := Date{2024, 2, 28}
	b := Date{2024, 3, 1}
	if d := a.DaysUntil(b); d != 2 {
		t.Errorf("Expected 2 days across leap day, got %d", d)
	}
	if d := b.DaysUntil(a); d != -2 {
		t.Errorf("Expected -2 days backwards, got %d", d)
	}
	if d := a.DaysUntil(a); d != 0 {
		t.Errorf("Expected 0 days to self, got %d", d)
	}

	// 400 Gregorian years are exactly 146097 days
	if d := (Date{1700, 1, 1}).DaysUntil(Date{2100, 1, 1}); d != 146097 {
		t.Errorf("Expected 146097 days over four centuries, got %d", d)
	}
	if d := (Date{2100, 1, 1}).DaysUntil(Date{1700, 1, 1}); d != -146097 {
		t.Errorf("Expected -146097 days backwards over four centuries, got %d", d)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil || d != (Date{2024, 2, 29}) {
		t.Errorf("Expected 2024-02-29, got %v (%v)", d, err)
	}
	if d.String() != "2024-02-29" {
		t.Errorf("Expected round trip, got %q", d.String())
	}

	for _, s := range []string{"", "2024-02-30", "29.02.2024", "2024-2-29x", "1899-12-31", "2101-01-01", "0001-01-01", "9999-12-31"} {
		if _, err := ParseDate(s); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q): expected ErrInvalidDate, got %v", s, err)
		}
	}
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	ts := time.Date(2025, 6, 30, 23, 30, 0, 0, time.UTC).In(loc)
	if got := DateOf(ts); got != (Date{2025, 7, 1}) {
		t.Errorf("Expected local calendar day 2025-07-01, got %v", got)
	}
}
