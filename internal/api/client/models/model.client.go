// Package models defines the client entity (a physical site: school or
// distributor).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client is one site record. UnoloClientID is the external natural key;
// AltID carries the alternate sheet "ID" column verbatim (string or
// numeric) because the task join must try both. Fields not recognized by
// the schema land in Extra instead of being dropped.
type Client struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UnoloClientID string             `json:"unoloClientID,omitempty" bson:"unoloClientID,omitempty"` // External natural key
	AltID         interface{}        `json:"altID,omitempty" bson:"ID,omitempty"`                    // Alternate sheet ID, loosely typed

	ClientName      string  `json:"clientName" bson:"clientName"`
	VisibleTo       string  `json:"visibleTo,omitempty" bson:"visibleTo,omitempty"` // Owning employee (empID)
	EmployeeID      string  `json:"employeeID,omitempty" bson:"employeeID,omitempty"`
	ContactName     string  `json:"contactName,omitempty" bson:"contactName,omitempty"`
	ContactNumber   string  `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	CountryCode     string  `json:"countryCode,omitempty" bson:"countryCode,omitempty"`
	Address         string  `json:"address,omitempty" bson:"address,omitempty"`
	City            string  `json:"city,omitempty" bson:"city,omitempty"`
	Email           string  `json:"email,omitempty" bson:"email,omitempty"`
	Latitude        float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude       float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
	ClientCategory  string  `json:"clientCategory,omitempty" bson:"clientCategory,omitempty"` // School | Distributor
	DivisionName    string  `json:"divisionName,omitempty" bson:"divisionName,omitempty"`     // Geographic area
	DistributorName string  `json:"distributorName,omitempty" bson:"distributorName,omitempty"`
	UsingMaterial   string  `json:"usingMaterial,omitempty" bson:"usingMaterial,omitempty"`
	SchoolStrength  int     `json:"schoolStrength,omitempty" bson:"schoolStrength,omitempty"`
	UsingIIT        string  `json:"usingIIT,omitempty" bson:"usingIIT,omitempty"`
	UsingAI         string  `json:"usingAI,omitempty" bson:"usingAI,omitempty"`
	BranchesPlaces  string  `json:"branchesPlaces,omitempty" bson:"branchesPlaces,omitempty"`
	Building        string  `json:"building,omitempty" bson:"building,omitempty"`

	SourceCreatedAt  int64 `json:"sourceCreatedAt,omitempty" bson:"sourceCreatedAt,omitempty"`   // Source-side audit (UnixMilli)
	SourceModifiedAt int64 `json:"sourceModifiedAt,omitempty" bson:"sourceModifiedAt,omitempty"` // Source-side audit (UnixMilli)

	Extra map[string]interface{} `json:"extra,omitempty" bson:"extra,omitempty"` // Unrecognized producer fields

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`

	// Unknown marks the synthetic read-time placeholder for tasks whose
	// client reference resolves to nothing. Never persisted.
	Unknown bool `json:"unknown,omitempty" bson:"-"`
}

// Key returns the stable identity used to group analytics rows. The
// external ID wins; the display name is only a fallback for records
// that never carried one, so two sites sharing a name stay distinct.
func (c *Client) Key() string {
	if c.UnoloClientID != "" {
		return c.UnoloClientID
	}
	return c.ClientName
}

// UnknownClient builds the synthetic placeholder substituted when a task
// references a client that does not exist in the store. It carries the
// original reference so callers can still display the task.
func UnknownClient(clientID string) *Client {
	return &Client{
		UnoloClientID: clientID,
		ClientName:    "Unknown Client",
		Unknown:       true,
	}
}
