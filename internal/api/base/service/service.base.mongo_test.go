package basesvc

import (
	"testing"
)

func TestStampUpsertTimesRoutesCreatedAt(t *testing.T) {
	update := &UpdateData{Set: map[string]interface{}{
		"name":      "x",
		"createdAt": int64(1),
	}}

	stampUpsertTimes(update, 42)

	if _, ok := update.Set["createdAt"]; ok {
		t.Error("createdAt left in $set, would be rewritten on update")
	}
	if update.Set["updatedAt"] != int64(42) {
		t.Errorf("updatedAt = %v, want 42", update.Set["updatedAt"])
	}
	if update.SetOnInsert["createdAt"] != int64(42) {
		t.Errorf("$setOnInsert createdAt = %v, want 42", update.SetOnInsert["createdAt"])
	}
	if update.Set["name"] != "x" {
		t.Errorf("payload field lost: %v", update.Set)
	}
}

func TestStampUpsertTimesNilMaps(t *testing.T) {
	update := &UpdateData{}
	stampUpsertTimes(update, 7)

	if update.Set["updatedAt"] != int64(7) || update.SetOnInsert["createdAt"] != int64(7) {
		t.Errorf("maps not initialized: %+v", update)
	}
}

func TestToUpdateDataWrapsPlainMap(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{"a": 1})
	if err != nil {
		t.Fatalf("ToUpdateData: %v", err)
	}
	if update.Set["a"] != 1 {
		t.Errorf("Set = %v, want plain map wrapped in $set", update.Set)
	}
}
