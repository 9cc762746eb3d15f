package database

import (
	"go.mongodb.org/mongo-driver/mongo"

	"fieldpulse/internal/registry"
)

// Collection names, one logical collection per entity.
type colNames struct {
	Employees    string
	Clients      string
	Tasks        string
	EodSummaries string
	Attendance   string
	Users        string
}

// ColNames holds the canonical collection names.
var ColNames = colNames{
	Employees:    "employees",
	Clients:      "clients",
	Tasks:        "tasks",
	EodSummaries: "eod_summaries",
	Attendance:   "attendance",
	Users:        "users",
}

// NewCollectionRegistry registers every entity collection of db into a
// registry. The registry is owned by the caller (cmd/server) and passed
// into service constructors; there is no package-level instance.
func NewCollectionRegistry(db *mongo.Database) *registry.Registry[*mongo.Collection] {
	r := registry.NewRegistry[*mongo.Collection]()
	for _, name := range []string{
		ColNames.Employees,
		ColNames.Clients,
		ColNames.Tasks,
		ColNames.EodSummaries,
		ColNames.Attendance,
		ColNames.Users,
	} {
		r.Register(name, db.Collection(name))
	}
	return r
}
