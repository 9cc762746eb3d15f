package eodsvc

import (
	"testing"
)

func TestNormalizeSummary(t *testing.T) {
	filter, doc, err := normalizeSummary(map[string]interface{}{
		"employeeID":           float64(12),
		"internalEmpID":        "E12",
		"date":                 "2026-02-13",
		"attendanceResultCode": float64(0),
		"distance":             10.4,
		"adminCompletedTasks":  float64(5),
		"selfCompletedTasks":   float64(3),
		"totalBreakTime":       "00:45:00",
		"firstSignIn":          "09:02:11",
	})
	if err != nil {
		t.Fatalf("normalizeSummary: %v", err)
	}

	if filter["employeeID"] != int64(12) || filter["date"] != "2026-02-13" {
		t.Errorf("filter = %v", filter)
	}
	if doc["attendanceResultCode"] != 0 {
		t.Errorf("attendanceResultCode = %v", doc["attendanceResultCode"])
	}
	if doc["distance"] != 10.4 {
		t.Errorf("distance = %v", doc["distance"])
	}
	if doc["adminCompletedTasks"] != 5 || doc["selfCompletedTasks"] != 3 {
		t.Errorf("task counts = %v / %v", doc["adminCompletedTasks"], doc["selfCompletedTasks"])
	}
	if doc["totalBreakTime"] != "00:45:00" {
		t.Errorf("totalBreakTime = %v", doc["totalBreakTime"])
	}
}

func TestNormalizeSummaryRequiresKey(t *testing.T) {
	if _, _, err := normalizeSummary(map[string]interface{}{
		"date": "2026-02-13",
	}); err == nil {
		t.Error("normalizeSummary accepted a record without employeeID")
	}
	if _, _, err := normalizeSummary(map[string]interface{}{
		"employeeID": float64(12),
	}); err == nil {
		t.Error("normalizeSummary accepted a record without date")
	}
}
