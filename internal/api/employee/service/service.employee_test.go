package employeesvc

import (
	"testing"
)

func TestNormalizeEmployee(t *testing.T) {
	empID, doc, err := normalizeEmployee(map[string]interface{}{
		"empID":      "E12",
		"empName":    "Priya Sharma",
		"employeeID": float64(12),
		"empEmail":   "priya@example.com",
		"city":       "Pune",
	})
	if err != nil {
		t.Fatalf("normalizeEmployee: %v", err)
	}
	if empID != "E12" {
		t.Errorf("empID = %q, want E12", empID)
	}
	if doc["employeeID"] != int64(12) {
		t.Errorf("employeeID = %v, want int64 12", doc["employeeID"])
	}
	if doc["empEmail"] != "priya@example.com" {
		t.Errorf("empEmail = %v", doc["empEmail"])
	}
	if doc["city"] != "Pune" {
		t.Errorf("city = %v", doc["city"])
	}
}

func TestNormalizeEmployeeValidation(t *testing.T) {
	if _, _, err := normalizeEmployee(map[string]interface{}{
		"empName": "No ID",
	}); err == nil {
		t.Error("normalizeEmployee accepted a record without empID")
	}
	if _, _, err := normalizeEmployee(map[string]interface{}{
		"empID": "E13",
	}); err == nil {
		t.Error("normalizeEmployee accepted a record without empName")
	}
}

func TestRegexQuote(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"a.b", `a\.b`},
		{"x(y)", `x\(y\)`},
		{"$5+", `\$5\+`},
	}

	for _, tc := range cases {
		if got := regexQuote(tc.input); got != tc.want {
			t.Errorf("regexQuote(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
