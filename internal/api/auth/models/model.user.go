// Package models defines the login account entity.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is one login account. Accounts are either created explicitly by
// an admin or synthesized for employees during sync; the empID links a
// synthesized account back to its employee record.
type User struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	Role         string             `json:"role" bson:"role"`

	EmpID      string `json:"empID,omitempty" bson:"empID,omitempty"`
	EmployeeID string `json:"employeeID,omitempty" bson:"employeeID,omitempty"`
	Name       string `json:"name,omitempty" bson:"name,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
