// Package utility provides small conversion helpers shared by the sync
// engine, webhook ingestion and analytics services.
package utility

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap converts a struct into a map through its bson tags, so documents
// written by services match the documents the driver decodes.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	if err := bson.Unmarshal(raw, &stringInterfaceMap); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}

// CoerceString renders a loosely-typed external identifier as a string.
// The source is inconsistent about numeric vs string IDs; JSON numbers
// arrive as float64 and must not pick up a ".000000" suffix.
func CoerceString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return CoerceString(float64(val))
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// CoerceFloat extracts a float64 from a loosely-typed value. Non-numeric
// values yield zero, never an error; metadata fields are producer
// controlled and must not break aggregation.
func CoerceFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// CoerceInt extracts an int from a loosely-typed value, zero on mismatch.
func CoerceInt(v interface{}) int {
	switch val := v.(type) {
	case int:
		return val
	case int32:
		return int(val)
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
