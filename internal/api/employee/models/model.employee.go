// Package models defines the employee entity.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee mirrors one field executive from the tracking source.
// empID is the stable external natural key; employeeID is a numeric
// external key that may be absent and may repeat across sync calls, but
// maps to exactly one empID at any time (last write wins).
type Employee struct {
	ID                 primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmpID              string             `json:"empID" bson:"empID"`                                   // Unique external key
	EmployeeID         int64              `json:"employeeID,omitempty" bson:"employeeID,omitempty"`     // Numeric external key
	EmpName            string             `json:"empName" bson:"empName"`                               // Full display name
	FirstName          string             `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName           string             `json:"lastName,omitempty" bson:"lastName,omitempty"`
	EmpEmail           string             `json:"empEmail,omitempty" bson:"empEmail,omitempty"`
	EmpPhoneNumber     string             `json:"empPhoneNumber,omitempty" bson:"empPhoneNumber,omitempty"`
	ManagerName        string             `json:"managerName,omitempty" bson:"managerName,omitempty"`
	ManagerEmail       string             `json:"managerEmail,omitempty" bson:"managerEmail,omitempty"`
	ManagerPhoneNumber string             `json:"managerPhoneNumber,omitempty" bson:"managerPhoneNumber,omitempty"`
	ProfileID          int64              `json:"profileID,omitempty" bson:"profileID,omitempty"`       // Team ID
	DesignationID      int64              `json:"designationID,omitempty" bson:"designationID,omitempty"`
	City               string             `json:"city,omitempty" bson:"city,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
