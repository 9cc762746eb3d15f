package tasksvc

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestNormalizeTaskFixedFields(t *testing.T) {
	taskID, doc, err := NormalizeTask(map[string]interface{}{
		"taskID":        float64(9001),
		"clientID":      float64(55),
		"employeeID":    float64(12),
		"internalEmpID": "E12",
		"checkinTime":   float64(1770957322714),
		"lat":           12.9,
		"lon":           77.6,
		"taskStatus":    "completed",
	})
	if err != nil {
		t.Fatalf("NormalizeTask: %v", err)
	}
	if taskID != "9001" {
		t.Errorf("taskID = %q, want 9001", taskID)
	}
	if doc["clientID"] != "55" {
		t.Errorf("clientID = %v, want string 55", doc["clientID"])
	}
	if doc["employeeID"] != int64(12) {
		t.Errorf("employeeID = %v, want int64 12", doc["employeeID"])
	}

	checkin, ok := doc["checkinTime"].(time.Time)
	if !ok {
		t.Fatalf("checkinTime not normalized: %T", doc["checkinTime"])
	}
	want := time.Date(2026, 2, 13, 4, 35, 22, 714000000, time.UTC)
	if !checkin.Equal(want) {
		t.Errorf("checkinTime = %v, want %v", checkin, want)
	}

	// date derived from the check-in when absent
	if doc["date"] != "2026-02-13" {
		t.Errorf("date = %v, want 2026-02-13", doc["date"])
	}
}

func TestNormalizeTaskMergesCustomFields(t *testing.T) {
	_, doc, err := NormalizeTask(map[string]interface{}{
		"taskID":   "T1",
		"metadata": map[string]interface{}{"schoolCategory": "Hot"},
		"customEntity": map[string]interface{}{
			"specimensGiven": "3",
		},
		"somethingNew": "kept",
	})
	if err != nil {
		t.Fatalf("NormalizeTask: %v", err)
	}

	metadata, ok := doc["metadata"].(bson.M)
	if !ok {
		t.Fatalf("metadata missing: %T", doc["metadata"])
	}
	if metadata["schoolCategory"] != "Hot" {
		t.Errorf("schoolCategory = %v", metadata["schoolCategory"])
	}
	if metadata["specimensGiven"] != "3" {
		t.Errorf("specimensGiven = %v", metadata["specimensGiven"])
	}
	if metadata["somethingNew"] != "kept" {
		t.Errorf("unrecognized field dropped: %v", metadata["somethingNew"])
	}
}

func TestNormalizeTaskRequiresID(t *testing.T) {
	if _, _, err := NormalizeTask(map[string]interface{}{"clientID": "55"}); err == nil {
		t.Error("NormalizeTask accepted a record without taskID")
	}
}
