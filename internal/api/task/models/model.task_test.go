package models

import (
	"testing"
)

func TestSchoolCategory(t *testing.T) {
	cases := []struct {
		name     string
		metadata map[string]interface{}
		want     string
	}{
		{"plain string", map[string]interface{}{"schoolCategory": "Hot"}, "Hot"},
		{"array form", map[string]interface{}{"schoolCategory": []interface{}{"Warm"}}, "Warm"},
		{"empty array", map[string]interface{}{"schoolCategory": []interface{}{}}, ""},
		{"non-string array", map[string]interface{}{"schoolCategory": []interface{}{7}}, ""},
		{"absent", map[string]interface{}{}, ""},
		{"nil metadata", nil, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := Task{Metadata: tc.metadata}
			if got := task.SchoolCategory(); got != tc.want {
				t.Errorf("SchoolCategory() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHasSpecimens(t *testing.T) {
	cases := []struct {
		name     string
		metadata map[string]interface{}
		want     bool
	}{
		{"string count", map[string]interface{}{"specimensGiven": "3"}, true},
		{"numeric count", map[string]interface{}{"specimensGiven": float64(2)}, true},
		{"string zero", map[string]interface{}{"specimensGiven": "0"}, false},
		{"numeric zero", map[string]interface{}{"specimensGiven": float64(0)}, false},
		{"empty string", map[string]interface{}{"specimensGiven": ""}, false},
		{"absent", map[string]interface{}{}, false},
		{"nil value", map[string]interface{}{"specimensGiven": nil}, false},
		{"nil metadata", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := Task{Metadata: tc.metadata}
			if got := task.HasSpecimens(); got != tc.want {
				t.Errorf("HasSpecimens() = %v, want %v", got, tc.want)
			}
		})
	}
}
