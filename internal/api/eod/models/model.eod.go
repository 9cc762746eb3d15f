// Package models defines the end-of-day summary entity.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance result codes that count as a present day.
const (
	AttendancePunchedInOut = 0
	AttendancePunchedIn    = 1
	AttendanceAutoClosed   = 6
)

// EodSummary is one employee-day rollup produced by the tracking source.
// The (employeeID, date) pair is the natural key.
type EodSummary struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	EmployeeID    int64  `json:"employeeID" bson:"employeeID"`
	InternalEmpID string `json:"internalEmpID,omitempty" bson:"internalEmpID,omitempty"`
	Date          string `json:"date" bson:"date"` // YYYY-MM-DD

	AttendanceResultCode int     `json:"attendanceResultCode" bson:"attendanceResultCode"`
	Distance             float64 `json:"distance,omitempty" bson:"distance,omitempty"`       // km, GPS
	OdoDistance          float64 `json:"odoDistance,omitempty" bson:"odoDistance,omitempty"` // km, odometer

	AdminAssignedTasks  int `json:"adminAssignedTasks,omitempty" bson:"adminAssignedTasks,omitempty"`
	AdminCompletedTasks int `json:"adminCompletedTasks,omitempty" bson:"adminCompletedTasks,omitempty"`
	SelfAssignedTasks   int `json:"selfAssignedTasks,omitempty" bson:"selfAssignedTasks,omitempty"`
	SelfCompletedTasks  int `json:"selfCompletedTasks,omitempty" bson:"selfCompletedTasks,omitempty"`

	NumBreaks      int    `json:"numBreaks,omitempty" bson:"numBreaks,omitempty"`
	TotalBreakTime string `json:"totalBreakTime,omitempty" bson:"totalBreakTime,omitempty"` // HH:MM:SS

	FirstSignIn string `json:"firstSignIn,omitempty" bson:"firstSignIn,omitempty"`
	LastSignOut string `json:"lastSignOut,omitempty" bson:"lastSignOut,omitempty"`

	TotalForms        int `json:"totalForms,omitempty" bson:"totalForms,omitempty"`
	ClientsCreated    int `json:"clientsCreated,omitempty" bson:"clientsCreated,omitempty"`
	TotalClientVisits int `json:"totalClientVisits,omitempty" bson:"totalClientVisits,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// Present reports whether this record counts as a present day: the
// employee punched in and the day closed normally (or was auto closed).
func (e *EodSummary) Present() bool {
	switch e.AttendanceResultCode {
	case AttendancePunchedInOut, AttendancePunchedIn, AttendanceAutoClosed:
		return true
	}
	return false
}

// CompletedTasks is the day's total completed task count across admin
// and self assigned work.
func (e *EodSummary) CompletedTasks() int {
	return e.AdminCompletedTasks + e.SelfCompletedTasks
}
