// Package models defines the task entity (one field visit).
package models

import (
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is one visit record. TaskID is the external natural key. The
// producer attaches free-form custom fields that vary by form template;
// everything not in the fixed schema lands in Metadata.
type Task struct {
	ID     primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	TaskID string             `json:"taskID" bson:"taskID"`

	ClientID      string `json:"clientID,omitempty" bson:"clientID,omitempty"`
	EmployeeID    int64  `json:"employeeID,omitempty" bson:"employeeID,omitempty"`
	InternalEmpID string `json:"internalEmpID,omitempty" bson:"internalEmpID,omitempty"`

	Date            string     `json:"date,omitempty" bson:"date,omitempty"` // YYYY-MM-DD
	CheckinTime     *time.Time `json:"checkinTime,omitempty" bson:"checkinTime,omitempty"`
	CheckoutTime    *time.Time `json:"checkoutTime,omitempty" bson:"checkoutTime,omitempty"`
	TaskDescription string     `json:"taskDescription,omitempty" bson:"taskDescription,omitempty"`
	TaskStatus      string     `json:"taskStatus,omitempty" bson:"taskStatus,omitempty"`
	Address         string     `json:"address,omitempty" bson:"address,omitempty"`
	Latitude        float64    `json:"lat,omitempty" bson:"lat,omitempty"`
	Longitude       float64    `json:"lon,omitempty" bson:"lon,omitempty"`

	CreatedBy          string `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedByName      string `json:"createdByName,omitempty" bson:"createdByName,omitempty"`
	LastModifiedBy     string `json:"lastModifiedBy,omitempty" bson:"lastModifiedBy,omitempty"`
	LastModifiedByName string `json:"lastModifiedByName,omitempty" bson:"lastModifiedByName,omitempty"`

	// Metadata carries the form's custom fields (school category,
	// specimens given, remarks and whatever else the template defines).
	Metadata map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// SchoolCategory returns the normalized school category from the
// metadata bag. The producer sends it either as a plain string or as a
// one-element array; an absent or empty value returns "".
func (t *Task) SchoolCategory() string {
	if t.Metadata == nil {
		return ""
	}
	switch v := t.Metadata["schoolCategory"].(type) {
	case string:
		return v
	case []interface{}:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

// SpecimenCount returns the number of specimens given on this visit.
// The producer sends the count as a string or a number; anything
// non-numeric counts as zero.
func (t *Task) SpecimenCount() int {
	if t.Metadata == nil {
		return 0
	}
	switch v := t.Metadata["specimensGiven"].(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return 0
		}
		return n
	case float64:
		return int(v)
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	}
	return 0
}

// HasSpecimens reports whether the visit recorded any specimens given.
// Zero, empty and absent values all count as no specimens.
func (t *Task) HasSpecimens() bool {
	if t.Metadata == nil {
		return false
	}
	v, ok := t.Metadata["specimensGiven"]
	if !ok || v == nil {
		return false
	}
	switch s := v.(type) {
	case string:
		return s != "" && s != "0"
	case float64:
		return s != 0
	case int:
		return s != 0
	case int32:
		return s != 0
	case int64:
		return s != 0
	}
	return true
}
