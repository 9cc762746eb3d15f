package utility

import (
	"testing"
)

func TestCoerceString(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"string", "E12", "E12"},
		{"whole float", float64(9001), "9001"},
		{"fractional float", 12.5, "12.5"},
		{"int", 7, "7"},
		{"int64", int64(42), "42"},
		{"bool", true, "true"},
		{"nil", nil, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CoerceString(tc.input); got != tc.want {
				t.Errorf("CoerceString(%v) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCoerceFloat(t *testing.T) {
	if got := CoerceFloat("12.5"); got != 12.5 {
		t.Errorf("CoerceFloat(\"12.5\") = %v", got)
	}
	if got := CoerceFloat(int64(3)); got != 3 {
		t.Errorf("CoerceFloat(int64(3)) = %v", got)
	}
	if got := CoerceFloat("abc"); got != 0 {
		t.Errorf("CoerceFloat(\"abc\") = %v, want 0", got)
	}
	if got := CoerceFloat(nil); got != 0 {
		t.Errorf("CoerceFloat(nil) = %v, want 0", got)
	}
}

func TestCoerceInt(t *testing.T) {
	if got := CoerceInt(float64(12)); got != 12 {
		t.Errorf("CoerceInt(float64(12)) = %v", got)
	}
	if got := CoerceInt("55"); got != 55 {
		t.Errorf("CoerceInt(\"55\") = %v", got)
	}
	if got := CoerceInt("bogus"); got != 0 {
		t.Errorf("CoerceInt(\"bogus\") = %v, want 0", got)
	}
}

func TestToMapUsesBsonTags(t *testing.T) {
	type sample struct {
		EmpID string `bson:"empID"`
		Name  string `bson:"empName"`
	}

	m, err := ToMap(sample{EmpID: "E1", Name: "Asha"})
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}
	if m["empID"] != "E1" || m["empName"] != "Asha" {
		t.Errorf("ToMap = %v", m)
	}
}
