package models

import (
	"testing"
)

func TestPresent(t *testing.T) {
	cases := []struct {
		code int
		want bool
	}{
		{AttendancePunchedInOut, true},
		{AttendancePunchedIn, true},
		{AttendanceAutoClosed, true},
		{2, false},
		{3, false},
		{-1, false},
	}

	for _, tc := range cases {
		day := EodSummary{AttendanceResultCode: tc.code}
		if got := day.Present(); got != tc.want {
			t.Errorf("Present() with code %d = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestCompletedTasks(t *testing.T) {
	day := EodSummary{AdminCompletedTasks: 5, SelfCompletedTasks: 3}
	if got := day.CompletedTasks(); got != 8 {
		t.Errorf("CompletedTasks() = %d, want 8", got)
	}
}
