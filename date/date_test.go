package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"15.01.2025", New(2025, time.January, 15), false},
		{"1.7.2025", New(2025, time.July, 1), false},
		{"29.02.2024", New(2024, time.February, 29), false},
		{"29.02.2023", Date{}, true},
		{"31.04.2025", Date{}, true},
		{"01.13.2025", Date{}, true},
		{"2025-01-15", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got, want := New(2024, time.March, 5).String(), "05.03.2024"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := (Date{}).String(); got != "" {
		t.Errorf("zero String() = %q, want empty", got)
	}
}

func TestDays(t *testing.T) {
	tests := []struct {
		name      string
		from, to  Date
		inclusive bool
		want      int
	}{
		{"leap year", New(2024, 1, 1), New(2025, 1, 1), false, 366},
		{"plain year", New(2025, 1, 1), New(2026, 1, 1), false, 365},
		{"inclusive", New(2024, 1, 2), New(2024, 1, 31), true, 30},
		{"same day inclusive", New(2024, 1, 2), New(2024, 1, 2), true, 1},
		{"across dst", New(2024, 3, 30), New(2024, 4, 1), false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Days(tt.from, tt.to, tt.inclusive); got != tt.want {
				t.Errorf("Days(%v, %v, %v) = %d, want %d", tt.from, tt.to, tt.inclusive, got, tt.want)
			}
		})
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		month time.Month
		year  int
		want  int
	}{
		{time.January, 2025, 31},
		{time.February, 2024, 29},
		{time.February, 2100, 28},
		{time.February, 2000, 29},
		{time.April, 2025, 30},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.month, tt.year); got != tt.want {
			t.Errorf("DaysIn(%v, %d) = %d, want %d", tt.month, tt.year, got, tt.want)
		}
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		from Date
		n    int
		day  int
		want Date
	}{
		{"plain", New(2025, 1, 15), 1, 15, New(2025, 2, 15)},
		{"31 into 30-day month", New(2025, 3, 31), 1, 31, New(2025, 4, 30)},
		{"30 into february", New(2025, 1, 30), 1, 30, New(2025, 2, 28)},
		{"29 into leap february", New(2024, 1, 29), 1, 29, New(2024, 2, 29)},
		{"back to 31 after clamp", New(2025, 2, 28), 1, 31, New(2025, 3, 31)},
		{"year wrap", New(2025, 12, 10), 1, 10, New(2026, 1, 10)},
		{"quarter", New(2025, 11, 30), 3, 30, New(2026, 2, 28)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.AddMonths(tt.n, tt.day); got != tt.want {
				t.Errorf("AddMonths(%d, %d) = %v, want %v", tt.n, tt.day, got, tt.want)
			}
		})
	}
}

func TestSkipWeekend(t *testing.T) {
	tests := []struct {
		in, want Date
	}{
		{New(2024, 6, 1), New(2024, 6, 3)}, // Saturday
		{New(2024, 6, 2), New(2024, 6, 3)}, // Sunday
		{New(2024, 6, 3), New(2024, 6, 3)}, // Monday
		{New(2024, 6, 7), New(2024, 6, 7)}, // Friday
	}
	for _, tt := range tests {
		if got := tt.in.SkipWeekend(); got != tt.want {
			t.Errorf("%v.SkipWeekend() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMonthsBetween(t *testing.T) {
	if got := MonthsBetween(New(2024, 1, 31), New(2025, 1, 1)); got != 12 {
		t.Errorf("MonthsBetween() = %d, want 12", got)
	}
	if got := MonthsBetween(New(2024, 7, 1), New(2024, 7, 30)); got != 0 {
		t.Errorf("MonthsBetween() = %d, want 0", got)
	}
}

func TestJSON(t *testing.T) {
	var v struct {
		On Date `json:"on"`
	}
	if err := json.Unmarshal([]byte(`{"on":"1.2.2024"}`), &v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v.On != New(2024, 2, 1) {
		t.Errorf("Unmarshal() = %v, want 01.02.2024", v.On)
	}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(b), `{"on":"01.02.2024"}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}
