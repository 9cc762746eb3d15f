package unolo

import (
	"encoding/json"
	"fmt"
)

// EnvelopeShape discriminates the response shapes the tracking API is
// known to produce.
type EnvelopeShape int

const (
	// ShapeList is a bare JSON array.
	ShapeList EnvelopeShape = iota
	// ShapeWrapped is an object wrapping the list under a candidate key
	// (data, the entity name, or result).
	ShapeWrapped
	// ShapeObject is a bare single object (attendance responses).
	ShapeObject
	// ShapeEmpty is an empty or null body.
	ShapeEmpty
)

// Envelope is the decoded tagged union of a response body.
type Envelope struct {
	Shape EnvelopeShape
	items []map[string]interface{}
}

// Items returns the normalized list regardless of the original shape.
func (e *Envelope) Items() []map[string]interface{} {
	return e.items
}

// DecodeEnvelope normalizes a raw response body into a list of items.
// entityKey is the per-entity wrapper key candidate ("employees",
// "clients", "tasks", ...); objectKey, when non-empty, names a field whose
// presence identifies a bare single object as one record (attendance uses
// "userID").
func DecodeEnvelope(body []byte, entityKey, objectKey string) (*Envelope, error) {
	var raw interface{}
	if len(body) == 0 {
		return &Envelope{Shape: ShapeEmpty}, nil
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("undecodable response body: %w", err)
	}

	switch v := raw.(type) {
	case nil:
		return &Envelope{Shape: ShapeEmpty}, nil

	case []interface{}:
		return &Envelope{Shape: ShapeList, items: toItemList(v)}, nil

	case map[string]interface{}:
		for _, key := range []string{"data", entityKey, "result"} {
			if key == "" {
				continue
			}
			if wrapped, ok := v[key].([]interface{}); ok {
				return &Envelope{Shape: ShapeWrapped, items: toItemList(wrapped)}, nil
			}
		}
		// A bare object counts as a one-element list when it carries the
		// entity's identifying field.
		if objectKey != "" {
			if _, ok := v[objectKey]; ok {
				return &Envelope{Shape: ShapeObject, items: []map[string]interface{}{v}}, nil
			}
		}
		return &Envelope{Shape: ShapeEmpty}, nil

	default:
		return nil, fmt.Errorf("unexpected response shape %T", raw)
	}
}

func toItemList(raw []interface{}) []map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]interface{}); ok {
			items = append(items, m)
		}
	}
	return items
}
