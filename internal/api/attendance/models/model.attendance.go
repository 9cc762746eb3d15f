// Package models defines the raw attendance record entity.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance is one raw punch record from the tracking source. The
// (userID, date) pair is the natural key. Kept alongside the EOD rollup
// for audit; presence math reads the rollup, not this.
type Attendance struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	UserID int64  `json:"userID" bson:"userID"`
	Date   string `json:"date" bson:"date"` // YYYY-MM-DD

	Status      string `json:"status,omitempty" bson:"status,omitempty"`
	PunchIn     string `json:"punchIn,omitempty" bson:"punchIn,omitempty"`
	PunchOut    string `json:"punchOut,omitempty" bson:"punchOut,omitempty"`
	PunchInLat  float64 `json:"punchInLat,omitempty" bson:"punchInLat,omitempty"`
	PunchInLon  float64 `json:"punchInLon,omitempty" bson:"punchInLon,omitempty"`
	PunchOutLat float64 `json:"punchOutLat,omitempty" bson:"punchOutLat,omitempty"`
	PunchOutLon float64 `json:"punchOutLon,omitempty" bson:"punchOutLon,omitempty"`

	Extra map[string]interface{} `json:"extra,omitempty" bson:"extra,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
