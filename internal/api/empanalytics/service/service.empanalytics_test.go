package empanalyticssvc

import (
	"testing"
	"time"

	eodmodels "fieldpulse/internal/api/eod/models"
	"fieldpulse/internal/utility"
)

func workingDays(t *testing.T, start, end string) []time.Time {
	t.Helper()
	from, err := utility.ParseDateParam(start)
	if err != nil {
		t.Fatalf("ParseDateParam(%q): %v", start, err)
	}
	to, err := utility.ParseDateParam(end)
	if err != nil {
		t.Fatalf("ParseDateParam(%q): %v", end, err)
	}
	return utility.WorkingDays(from, to)
}

func TestFoldReportPresenceGating(t *testing.T) {
	// Three working days; the employee shows up on two of them. The day
	// with code 2 (absent) contributes nothing.
	summaries := []eodmodels.EodSummary{
		{
			Date:                 "2026-02-09",
			AttendanceResultCode: eodmodels.AttendancePunchedInOut,
			AdminCompletedTasks:  5,
			Distance:             10,
			NumBreaks:            2,
			TotalBreakTime:       "00:30:00",
		},
		{
			Date:                 "2026-02-10",
			AttendanceResultCode: eodmodels.AttendancePunchedInOut,
			SelfCompletedTasks:   3,
			Distance:             5,
			NumBreaks:            1,
			TotalBreakTime:       "01:00:00",
		},
		{
			Date:                 "2026-02-11",
			AttendanceResultCode: 2,
			AdminCompletedTasks:  9,
			Distance:             99,
			NumBreaks:            4,
		},
	}

	report := foldReport(PresenceReport{}, workingDays(t, "2026-02-09", "2026-02-11"), summaries)

	if report.PresentDays != 2 {
		t.Errorf("PresentDays = %d, want 2", report.PresentDays)
	}
	if report.WorkingDays != 3 {
		t.Errorf("WorkingDays = %d, want 3", report.WorkingDays)
	}
	if report.AttendancePct != 66.7 {
		t.Errorf("AttendancePct = %v, want 66.7", report.AttendancePct)
	}
	if report.TotalTasks != 8 {
		t.Errorf("TotalTasks = %d, want 8", report.TotalTasks)
	}
	if report.AvgTasksPerDay != 4.0 {
		t.Errorf("AvgTasksPerDay = %v, want 4.0", report.AvgTasksPerDay)
	}
	if report.TotalDistanceKm != 15.0 {
		t.Errorf("TotalDistanceKm = %v, want 15.0", report.TotalDistanceKm)
	}
	if report.AvgDistanceKm != 7.5 {
		t.Errorf("AvgDistanceKm = %v, want 7.5", report.AvgDistanceKm)
	}
	if report.TotalBreaks != 3 {
		t.Errorf("TotalBreaks = %d, want 3", report.TotalBreaks)
	}
	if report.TotalBreakMinutes != 90 {
		t.Errorf("TotalBreakMinutes = %d, want 90", report.TotalBreakMinutes)
	}
	if report.AvgBreakMinutes != 45.0 {
		t.Errorf("AvgBreakMinutes = %v, want 45.0", report.AvgBreakMinutes)
	}
}

func TestFoldReportIgnoresSundayRecords(t *testing.T) {
	// Sat 2026-02-07 through Sun 2026-02-08 spans one working day. The
	// Sunday record marks the employee present but must not count: it
	// would push attendance past 100%.
	summaries := []eodmodels.EodSummary{
		{
			Date:                 "2026-02-07",
			AttendanceResultCode: eodmodels.AttendancePunchedInOut,
			AdminCompletedTasks:  2,
			Distance:             1,
		},
		{
			Date:                 "2026-02-08",
			AttendanceResultCode: eodmodels.AttendancePunchedInOut,
			AdminCompletedTasks:  5,
			Distance:             9,
		},
	}

	report := foldReport(PresenceReport{}, workingDays(t, "2026-02-07", "2026-02-08"), summaries)

	if report.WorkingDays != 1 {
		t.Fatalf("WorkingDays = %d, want 1", report.WorkingDays)
	}
	if report.PresentDays != 1 {
		t.Errorf("PresentDays = %d, want 1 (Sunday record ignored)", report.PresentDays)
	}
	if report.AttendancePct != 100 {
		t.Errorf("AttendancePct = %v, want 100", report.AttendancePct)
	}
	if report.TotalTasks != 2 {
		t.Errorf("TotalTasks = %d, want 2", report.TotalTasks)
	}
	if report.TotalDistanceKm != 1 {
		t.Errorf("TotalDistanceKm = %v, want 1", report.TotalDistanceKm)
	}
}

func TestFoldReportDailySeries(t *testing.T) {
	// Mon and Tue window; only Monday has a record. The series still
	// carries both days, the absent one zeroed.
	summaries := []eodmodels.EodSummary{
		{
			Date:                 "2026-02-09",
			AttendanceResultCode: eodmodels.AttendancePunchedInOut,
			SelfCompletedTasks:   3,
			Distance:             4.5,
			NumBreaks:            1,
			TotalBreakTime:       "00:30:00",
		},
	}

	report := foldReport(PresenceReport{}, workingDays(t, "2026-02-09", "2026-02-10"), summaries)

	if len(report.Daily) != 2 {
		t.Fatalf("len(Daily) = %d, want 2", len(report.Daily))
	}
	mon := report.Daily[0]
	if mon.Date != "2026-02-09" || !mon.Present {
		t.Errorf("Daily[0] = %+v, want present 2026-02-09", mon)
	}
	if mon.Tasks != 3 || mon.DistanceKm != 4.5 || mon.Breaks != 1 || mon.BreakMinutes != 30 {
		t.Errorf("Daily[0] metrics = %+v", mon)
	}
	tue := report.Daily[1]
	if tue.Date != "2026-02-10" || tue.Present {
		t.Errorf("Daily[1] = %+v, want absent 2026-02-10", tue)
	}
	if tue.Tasks != 0 || tue.DistanceKm != 0 || tue.Breaks != 0 || tue.BreakMinutes != 0 {
		t.Errorf("Daily[1] metrics = %+v, want zeroes", tue)
	}
}

func TestFoldReportNoPresentDays(t *testing.T) {
	summaries := []eodmodels.EodSummary{
		{Date: "2026-02-09", AttendanceResultCode: 2, AdminCompletedTasks: 4},
	}

	report := foldReport(PresenceReport{}, workingDays(t, "2026-02-09", "2026-02-14"), summaries)

	if report.WorkingDays != 6 {
		t.Fatalf("WorkingDays = %d, want 6", report.WorkingDays)
	}
	if report.PresentDays != 0 {
		t.Errorf("PresentDays = %d, want 0", report.PresentDays)
	}
	if report.AttendancePct != 0 {
		t.Errorf("AttendancePct = %v, want 0", report.AttendancePct)
	}
	// Averages stay zero instead of dividing by zero.
	if report.AvgTasksPerDay != 0 || report.AvgDistanceKm != 0 || report.AvgBreakMinutes != 0 {
		t.Errorf("averages not zero: %+v", report)
	}
}

func TestFoldReportDeduplicatesDates(t *testing.T) {
	summaries := []eodmodels.EodSummary{
		{Date: "2026-02-09", AttendanceResultCode: 0, AdminCompletedTasks: 2},
		{Date: "2026-02-09", AttendanceResultCode: 1, AdminCompletedTasks: 7},
	}

	report := foldReport(PresenceReport{}, workingDays(t, "2026-02-09", "2026-02-09"), summaries)

	if report.PresentDays != 1 {
		t.Errorf("PresentDays = %d, want 1", report.PresentDays)
	}
	if report.TotalTasks != 2 {
		t.Errorf("TotalTasks = %d, want 2 (first record per date wins)", report.TotalTasks)
	}
}

func TestFoldReportAutoClosedCounts(t *testing.T) {
	summaries := []eodmodels.EodSummary{
		{Date: "2026-02-09", AttendanceResultCode: eodmodels.AttendanceAutoClosed, SelfCompletedTasks: 1},
		{Date: "2026-02-10", AttendanceResultCode: eodmodels.AttendancePunchedIn, SelfCompletedTasks: 1},
	}

	report := foldReport(PresenceReport{}, workingDays(t, "2026-02-09", "2026-02-10"), summaries)
	if report.PresentDays != 2 {
		t.Errorf("PresentDays = %d, want 2 (codes 1 and 6 count)", report.PresentDays)
	}
}
