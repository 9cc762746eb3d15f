package utility

import (
	"testing"
	"time"
)

func TestFromEpochMilliseconds(t *testing.T) {
	got := FromEpoch(1770957322714)
	want := time.Date(2026, 2, 13, 4, 35, 22, 714000000, time.UTC)
	if !got.Equal(want) {
		t.Errorf("FromEpoch(1770957322714) = %v, want %v", got, want)
	}
}

func TestFromEpochSeconds(t *testing.T) {
	got := FromEpoch(1770957322)
	want := time.Date(2026, 2, 13, 4, 35, 22, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("FromEpoch(1770957322) = %v, want %v", got, want)
	}
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  time.Time
		ok    bool
	}{
		{"rfc3339", "2026-02-13T04:35:22Z", time.Date(2026, 2, 13, 4, 35, 22, 0, time.UTC), true},
		{"space separated", "2026-02-13 04:35:22", time.Date(2026, 2, 13, 4, 35, 22, 0, time.UTC), true},
		{"date only", "2026-02-13", time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC), true},
		{"epoch millis", float64(1770957322714), time.Date(2026, 2, 13, 4, 35, 22, 714000000, time.UTC), true},
		{"empty string", "", time.Time{}, false},
		{"garbage", "not-a-time", time.Time{}, false},
		{"nil", nil, time.Time{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tc.input)
			if ok != tc.ok {
				t.Fatalf("ParseTimestamp(%v) ok = %v, want %v", tc.input, ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Errorf("ParseTimestamp(%v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseDurationMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:30:00", 30},
		{"01:00:00", 60},
		{"00:00:29", 0},
		{"00:00:30", 1},
		{"02:15:45", 136},
		{"", 0},
		{"bogus", 0},
		{"1:2", 0},
	}

	for _, tc := range cases {
		if got := ParseDurationMinutes(tc.input); got != tc.want {
			t.Errorf("ParseDurationMinutes(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestWorkingDaysSkipsSunday(t *testing.T) {
	// 2026-02-09 is a Monday; the window runs through the next Monday.
	start := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)

	days := WorkingDays(start, end)
	if len(days) != 7 {
		t.Fatalf("WorkingDays over 8 calendar days = %d, want 7", len(days))
	}
	for _, d := range days {
		if d.Weekday() == time.Sunday {
			t.Errorf("WorkingDays included Sunday %v", d)
		}
	}
}

func TestDayBounds(t *testing.T) {
	day := time.Date(2026, 2, 13, 15, 4, 5, 0, time.UTC)
	lo, hi := DayBounds(day, day)

	if lo.Hour() != 0 || lo.Minute() != 0 || lo.Second() != 0 {
		t.Errorf("lower bound = %v, want midnight", lo)
	}
	if hi.Hour() != 23 || hi.Minute() != 59 || hi.Second() != 59 {
		t.Errorf("upper bound = %v, want 23:59:59", hi)
	}
}

func TestParseDateParam(t *testing.T) {
	if _, err := ParseDateParam("2026-02-13"); err != nil {
		t.Errorf("ParseDateParam valid date: %v", err)
	}
	if _, err := ParseDateParam("13/02/2026"); err == nil {
		t.Error("ParseDateParam accepted a non-ISO date")
	}
}
