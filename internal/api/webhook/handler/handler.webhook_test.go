package webhookhdl

import (
	"testing"
)

func TestDecodeItemsArray(t *testing.T) {
	items, err := decodeItems([]byte(`[{"taskID":"T1"},{"taskID":"T2"}]`))
	if err != nil {
		t.Fatalf("decodeItems: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("items = %d, want 2", len(items))
	}
}

func TestDecodeItemsSingleObject(t *testing.T) {
	items, err := decodeItems([]byte(`{"taskID":"T1"}`))
	if err != nil {
		t.Fatalf("decodeItems: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0]["taskID"] != "T1" {
		t.Errorf("taskID = %v", items[0]["taskID"])
	}
}

func TestDecodeItemsRejectsScalars(t *testing.T) {
	for _, body := range []string{`"text"`, `42`, `not json`} {
		if _, err := decodeItems([]byte(body)); err == nil {
			t.Errorf("decodeItems(%s) accepted a non-object body", body)
		}
	}
}
