// Package empanalyticssvc computes per-employee presence and effort
// metrics from the end-of-day rollups.
package empanalyticssvc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	employeemodels "fieldpulse/internal/api/employee/models"
	employeesvc "fieldpulse/internal/api/employee/service"
	eodmodels "fieldpulse/internal/api/eod/models"
	eodsvc "fieldpulse/internal/api/eod/service"
	"fieldpulse/internal/common"
	"fieldpulse/internal/utility"
)

// DayMetrics is one working day in the presence time series. Absent
// days appear with zeroed metrics so charts render a continuous axis.
type DayMetrics struct {
	Date         string  `json:"date"` // YYYY-MM-DD
	Present      bool    `json:"present"`
	Tasks        int     `json:"tasks"`
	DistanceKm   float64 `json:"distance_km"`
	Breaks       int     `json:"breaks"`
	BreakMinutes int     `json:"break_minutes"`
}

// PresenceReport is one employee's presence rollup for a date window.
// All averages are over present days, zero when none.
type PresenceReport struct {
	EmpID   string `json:"empID"`
	EmpName string `json:"empName"`
	Start   string `json:"start"`
	End     string `json:"end"`

	WorkingDays   int     `json:"working_days"`
	PresentDays   int     `json:"present_days"`
	AttendancePct float64 `json:"attendance_pct"`

	TotalTasks     int     `json:"total_tasks"`
	AvgTasksPerDay float64 `json:"avg_tasks_per_day"`

	TotalDistanceKm float64 `json:"total_distance_km"`
	AvgDistanceKm   float64 `json:"avg_distance_km"`

	TotalBreaks       int     `json:"total_breaks"`
	TotalBreakMinutes int     `json:"total_break_minutes"`
	AvgBreakMinutes   float64 `json:"avg_break_minutes"`

	Daily []DayMetrics `json:"daily"`
}

// TeamPresence is the all-employee variant: one report per employee
// plus team averages taken over the per-employee figures.
type TeamPresence struct {
	Start   string           `json:"start"`
	End     string           `json:"end"`
	Reports []PresenceReport `json:"reports"`

	TotalTasks      int     `json:"total_tasks"`
	TotalDistanceKm float64 `json:"total_distance_km"`

	AvgAttendancePct float64 `json:"avg_attendance_pct"`
	AvgTasksPerDay   float64 `json:"avg_tasks_per_day"`
	AvgDistanceKm    float64 `json:"avg_distance_km"`
	AvgBreakMinutes  float64 `json:"avg_break_minutes"`
}

// EmpAnalyticsService computes presence metrics.
type EmpAnalyticsService struct {
	employees *employeesvc.EmployeeService
	eod       *eodsvc.EodService
}

// NewEmpAnalyticsService creates the service.
func NewEmpAnalyticsService(employees *employeesvc.EmployeeService, eod *eodsvc.EodService) *EmpAnalyticsService {
	return &EmpAnalyticsService{employees: employees, eod: eod}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

// foldReport walks the working days and folds the matching EOD record
// into the presence report. A record on an off day (Sunday) never
// counts, even when it marks the employee present; the first record per
// calendar date wins. Every derived figure is rounded here, at the edge.
func foldReport(report PresenceReport, days []time.Time, summaries []eodmodels.EodSummary) PresenceReport {
	report.WorkingDays = len(days)

	byDate := make(map[string]*eodmodels.EodSummary)
	for i := range summaries {
		day := &summaries[i]
		if _, ok := byDate[day.Date]; !ok {
			byDate[day.Date] = day
		}
	}

	var distance float64
	report.Daily = make([]DayMetrics, 0, len(days))
	for _, d := range days {
		row := DayMetrics{Date: d.Format("2006-01-02")}
		if day, ok := byDate[row.Date]; ok && day.Present() {
			row.Present = true
			row.Tasks = day.CompletedTasks()
			row.DistanceKm = day.Distance
			row.Breaks = day.NumBreaks
			row.BreakMinutes = utility.ParseDurationMinutes(day.TotalBreakTime)

			report.PresentDays++
			report.TotalTasks += row.Tasks
			distance += row.DistanceKm
			report.TotalBreaks += row.Breaks
			report.TotalBreakMinutes += row.BreakMinutes
		}
		report.Daily = append(report.Daily, row)
	}

	report.TotalDistanceKm = round2(distance)
	if report.WorkingDays > 0 {
		report.AttendancePct = round1(float64(report.PresentDays) / float64(report.WorkingDays) * 100)
	}
	if report.PresentDays > 0 {
		days := float64(report.PresentDays)
		report.AvgTasksPerDay = round1(float64(report.TotalTasks) / days)
		report.AvgDistanceKm = round2(distance / days)
		report.AvgBreakMinutes = round1(float64(report.TotalBreakMinutes) / days)
	}

	return report
}

// buildReport loads one employee's EOD records and folds them.
func (s *EmpAnalyticsService) buildReport(ctx context.Context, emp *employeemodels.Employee, start, end string) (PresenceReport, error) {
	report := PresenceReport{
		EmpID:   emp.EmpID,
		EmpName: emp.EmpName,
		Start:   start,
		End:     end,
	}

	from, err := utility.ParseDateParam(start)
	if err != nil {
		return report, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil)
	}
	to, err := utility.ParseDateParam(end)
	if err != nil {
		return report, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil)
	}

	summaries, err := s.eod.ForEmployee(ctx, emp.EmpID, emp.EmployeeID, start, end)
	if err != nil {
		return report, err
	}

	return foldReport(report, utility.WorkingDays(from, to), summaries), nil
}

// ForEmployee computes one employee's presence report.
func (s *EmpAnalyticsService) ForEmployee(ctx context.Context, empID, start, end string) (PresenceReport, error) {
	emp, err := s.employees.FindOne(ctx, bson.M{"empID": empID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return PresenceReport{}, common.NewError(common.ErrCodeDatabaseQuery,
				fmt.Sprintf("unknown employee %s", empID), common.StatusNotFound, nil)
		}
		return PresenceReport{}, err
	}

	return s.buildReport(ctx, &emp, start, end)
}

// ForAllEmployees computes the team rollup. The team averages are the
// mean of the per-employee figures, not a recomputation over the pooled
// records, so a low-activity employee weighs the same as a busy one.
func (s *EmpAnalyticsService) ForAllEmployees(ctx context.Context, start, end string) (TeamPresence, error) {
	team := TeamPresence{Start: start, End: end, Reports: []PresenceReport{}}

	employees, err := s.employees.List(ctx)
	if err != nil {
		return team, err
	}

	var pct, tasks, km, breaks float64
	for i := range employees {
		report, err := s.buildReport(ctx, &employees[i], start, end)
		if err != nil {
			return team, err
		}
		team.Reports = append(team.Reports, report)
		team.TotalTasks += report.TotalTasks
		team.TotalDistanceKm = round2(team.TotalDistanceKm + report.TotalDistanceKm)
		pct += report.AttendancePct
		tasks += report.AvgTasksPerDay
		km += report.AvgDistanceKm
		breaks += report.AvgBreakMinutes
	}

	if n := float64(len(team.Reports)); n > 0 {
		team.AvgAttendancePct = round1(pct / n)
		team.AvgTasksPerDay = round1(tasks / n)
		team.AvgDistanceKm = round2(km / n)
		team.AvgBreakMinutes = round1(breaks / n)
	}

	return team, nil
}
