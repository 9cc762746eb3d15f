package registry

import (
	"errors"
	"testing"
)

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	if err != nil || !isNew {
		t.Fatalf("Register new: isNew=%v err=%v", isNew, err)
	}

	isNew, err = r.Register("a", 2)
	if err != nil || isNew {
		t.Fatalf("Register overwrite: isNew=%v err=%v", isNew, err)
	}

	got, exists := r.Get("a")
	if !exists || got != 2 {
		t.Errorf("Get(a) = %v, %v", got, exists)
	}

	if _, exists := r.Get("missing"); exists {
		t.Error("Get(missing) reported existence")
	}
}

func TestRegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Error("Register accepted an empty name")
	}
}

func TestGetOrCreate(t *testing.T) {
	r := NewRegistry[string]()

	created, err := r.GetOrCreate("x", func() (string, error) { return "made", nil })
	if err != nil || created != "made" {
		t.Fatalf("GetOrCreate create: %v %v", created, err)
	}

	// The creator must not run again for an existing entry.
	existing, err := r.GetOrCreate("x", func() (string, error) {
		return "", errors.New("should not be called")
	})
	if err != nil || existing != "made" {
		t.Errorf("GetOrCreate existing: %v %v", existing, err)
	}
}

func TestClear(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)

	cleaned := false
	deleted, err := r.Clear("a", func(int) error {
		cleaned = true
		return nil
	})
	if err != nil || !deleted || !cleaned {
		t.Errorf("Clear: deleted=%v cleaned=%v err=%v", deleted, cleaned, err)
	}

	deleted, err = r.Clear("a", nil)
	if err != nil || deleted {
		t.Errorf("Clear on missing: deleted=%v err=%v", deleted, err)
	}
}

func TestClearAll(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	count, err := r.ClearAll(nil)
	if err != nil || count != 2 {
		t.Errorf("ClearAll: count=%d err=%v", count, err)
	}
	if len(r.Names()) != 0 {
		t.Errorf("Names after ClearAll = %v", r.Names())
	}
}
