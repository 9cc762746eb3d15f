package dto

import (
	"testing"
)

func TestFold(t *testing.T) {
	batch := Fold([]ItemResult{
		{Index: 0, Key: "T1", Status: StatusCreated},
		{Index: 1, Key: "T2", Status: StatusUpdated},
		{Index: 2, Status: StatusFailed, Error: "missing taskID"},
	})

	if batch.Processed != 3 {
		t.Errorf("Processed = %d, want 3", batch.Processed)
	}
	if batch.SuccessCount != 2 {
		t.Errorf("SuccessCount = %d, want 2", batch.SuccessCount)
	}
	if batch.FailureCount != 1 {
		t.Errorf("FailureCount = %d, want 1", batch.FailureCount)
	}
	if batch.AllFailed() {
		t.Error("AllFailed() = true with successes present")
	}
}

func TestAllFailed(t *testing.T) {
	failed := Fold([]ItemResult{
		{Index: 0, Status: StatusFailed},
		{Index: 1, Status: StatusFailed},
	})
	if !failed.AllFailed() {
		t.Error("AllFailed() = false for an all-failure batch")
	}

	empty := Fold(nil)
	if empty.AllFailed() {
		t.Error("AllFailed() = true for an empty batch")
	}
}
