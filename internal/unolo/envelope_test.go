package unolo

import (
	"testing"
)

func TestDecodeEnvelopeList(t *testing.T) {
	body := []byte(`[{"empID":"E1"},{"empID":"E2"}]`)

	env, err := DecodeEnvelope(body, "employees", "")
	if err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if env.Shape != ShapeList {
		t.Errorf("shape = %v, want ShapeList", env.Shape)
	}
	if len(env.Items()) != 2 {
		t.Errorf("items = %d, want 2", len(env.Items()))
	}
}

func TestDecodeEnvelopeWrapped(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"data key", `{"data":[{"empID":"E1"}]}`},
		{"entity key", `{"employees":[{"empID":"E1"}]}`},
		{"result key", `{"result":[{"empID":"E1"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env, err := DecodeEnvelope([]byte(tc.body), "employees", "")
			if err != nil {
				t.Fatalf("DecodeEnvelope: %v", err)
			}
			if env.Shape != ShapeWrapped {
				t.Errorf("shape = %v, want ShapeWrapped", env.Shape)
			}
			if len(env.Items()) != 1 {
				t.Errorf("items = %d, want 1", len(env.Items()))
			}
		})
	}
}

func TestDecodeEnvelopeBareObject(t *testing.T) {
	body := []byte(`{"userID":42,"date":"2026-02-13"}`)

	env, err := DecodeEnvelope(body, "attendance", "userID")
	if err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if env.Shape != ShapeObject {
		t.Errorf("shape = %v, want ShapeObject", env.Shape)
	}
	if len(env.Items()) != 1 {
		t.Fatalf("items = %d, want 1", len(env.Items()))
	}

	// Without the identifying field the same body is an empty envelope,
	// not a record.
	env, err = DecodeEnvelope(body, "attendance", "")
	if err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if env.Shape != ShapeEmpty {
		t.Errorf("shape without objectKey = %v, want ShapeEmpty", env.Shape)
	}
}

func TestDecodeEnvelopeEmpty(t *testing.T) {
	for _, body := range [][]byte{nil, []byte(`null`), []byte(`{}`)} {
		env, err := DecodeEnvelope(body, "tasks", "")
		if err != nil {
			t.Fatalf("DecodeEnvelope(%q): %v", body, err)
		}
		if env.Shape != ShapeEmpty {
			t.Errorf("DecodeEnvelope(%q) shape = %v, want ShapeEmpty", body, env.Shape)
		}
		if len(env.Items()) != 0 {
			t.Errorf("DecodeEnvelope(%q) items = %d, want 0", body, len(env.Items()))
		}
	}
}

func TestDecodeEnvelopeRejectsScalars(t *testing.T) {
	if _, err := DecodeEnvelope([]byte(`"surprise"`), "tasks", ""); err == nil {
		t.Error("DecodeEnvelope accepted a bare string")
	}
	if _, err := DecodeEnvelope([]byte(`not json`), "tasks", ""); err == nil {
		t.Error("DecodeEnvelope accepted malformed JSON")
	}
}
