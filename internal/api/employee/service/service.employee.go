// Package employeesvc owns the employee entity: sync from the tracking
// source, the employee directory and identity reconciliation.
package employeesvc

import (
	"context"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "fieldpulse/internal/api/base/models"
	basesvc "fieldpulse/internal/api/base/service"
	employeemodels "fieldpulse/internal/api/employee/models"
	"fieldpulse/internal/common"
	"fieldpulse/internal/logger"
	"fieldpulse/internal/registry"
	"fieldpulse/internal/unolo"
	"fieldpulse/internal/utility"
)

// AccountEnsurer creates a login account for a synced employee when none
// exists yet. Implemented by the auth domain; injected to avoid a
// dependency cycle.
type AccountEnsurer interface {
	EnsureAccountForEmployee(ctx context.Context, empID string, employeeID int64, name string) error
}

// EmployeeService provides employee sync, directory queries and identity
// resolution.
type EmployeeService struct {
	*basesvc.BaseServiceMongoImpl[employeemodels.Employee]
	source   *unolo.Client
	accounts AccountEnsurer
}

// NewEmployeeService creates the service. accounts may be nil, in which
// case sync skips account synthesis.
func NewEmployeeService(collections *registry.Registry[*mongo.Collection], source *unolo.Client, accounts AccountEnsurer) (*EmployeeService, error) {
	collection, exists := collections.Get("employees")
	if !exists {
		return nil, fmt.Errorf("failed to get employees collection: %v", common.ErrNotFound)
	}

	return &EmployeeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[employeemodels.Employee](collection),
		source:               source,
		accounts:             accounts,
	}, nil
}

// normalizeEmployee maps one raw source item onto the local schema.
// Returns the natural key and the upsert document, or an error when the
// item fails validation.
func normalizeEmployee(item map[string]interface{}) (string, bson.M, error) {
	empID := utility.CoerceString(item["empID"])
	if empID == "" {
		return "", nil, fmt.Errorf("missing empID")
	}
	empName := utility.CoerceString(item["empName"])
	if empName == "" {
		return empID, nil, fmt.Errorf("missing empName for %s", empID)
	}

	doc := bson.M{
		"empID":   empID,
		"empName": empName,
	}

	if v, ok := item["employeeID"]; ok && v != nil {
		doc["employeeID"] = int64(utility.CoerceInt(v))
	}
	for field, key := range map[string]string{
		"firstName":          "firstName",
		"lastName":           "lastName",
		"empEmail":           "empEmail",
		"empPhoneNumber":     "empPhoneNumber",
		"managerName":        "managerName",
		"managerEmail":       "managerEmail",
		"managerPhoneNumber": "managerPhoneNumber",
		"city":               "city",
	} {
		if v := utility.CoerceString(item[key]); v != "" {
			doc[field] = v
		}
	}
	if v, ok := item["profileID"]; ok && v != nil {
		doc["profileID"] = int64(utility.CoerceInt(v))
	}
	if v, ok := item["designationID"]; ok && v != nil {
		doc["designationID"] = int64(utility.CoerceInt(v))
	}

	return empID, doc, nil
}

// Sync pulls the full employee master and upserts it keyed on empID.
// For every synced employee a login account is ensured; account errors
// are logged, never propagated.
func (s *EmployeeService) Sync(ctx context.Context) (basemodels.SyncStats, error) {
	log := logger.GetSyncLogger()
	stats := basemodels.SyncStats{}

	items, err := s.source.GetEmployees(ctx)
	if err != nil {
		return stats, common.NewExternalAPIError("employee fetch failed", err.Error())
	}
	defer s.source.Close()

	stats.TotalFetched = len(items)
	log.WithField("count", len(items)).Info("Fetched employees")

	for _, item := range items {
		empID, doc, err := normalizeEmployee(item)
		if err != nil {
			log.WithError(err).WithField("empID", empID).Warn("Skipping invalid employee record")
			stats.Errors++
			continue
		}

		_, created, err := s.Upsert(ctx, bson.M{"empID": empID}, doc)
		if err != nil {
			log.WithError(err).WithField("empID", empID).Error("Employee upsert failed")
			stats.Errors++
			continue
		}
		if created {
			stats.Created++
		} else {
			stats.Updated++
		}

		if s.accounts != nil {
			var numericID int64
			if v, ok := doc["employeeID"].(int64); ok {
				numericID = v
			}
			if err := s.accounts.EnsureAccountForEmployee(ctx, empID, numericID, utility.CoerceString(doc["empName"])); err != nil {
				// Account synthesis must never fail the sync.
				log.WithError(err).WithField("empID", empID).Warn("Failed to ensure login account")
			}
		}
	}

	log.WithFields(map[string]interface{}{
		"fetched": stats.TotalFetched,
		"created": stats.Created,
		"updated": stats.Updated,
		"errors":  stats.Errors,
	}).Info("Employee sync completed")

	return stats, nil
}

// List returns the full employee directory sorted by name.
func (s *EmployeeService) List(ctx context.Context) ([]employeemodels.Employee, error) {
	return s.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "empName", Value: 1}}))
}

// ResolveByName finds an employee by case-insensitive substring match on
// the display name. Returns (nil, nil) on a miss. When several employees
// match, the first by empID is returned and a warning names the
// candidates; there is no documented tie-break.
func (s *EmployeeService) ResolveByName(ctx context.Context, name string) (*employeemodels.Employee, error) {
	if name == "" {
		return nil, nil
	}

	filter := bson.M{"empName": bson.M{"$regex": primitive.Regex{Pattern: regexQuote(name), Options: "i"}}}
	matches, err := s.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "empID", Value: 1}}))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	if len(matches) > 1 {
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = m.EmpID
		}
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"name":       name,
			"candidates": ids,
		}).Warn("Ambiguous employee name match, using first candidate")
	}

	return &matches[0], nil
}

// Resolution is the outcome of canonical-ID resolution. Resolved is false
// when the candidate passed through unchanged, so callers cannot mistake
// an unknown ID for a valid one.
type Resolution struct {
	ID       string `json:"id"`
	Resolved bool   `json:"resolved"`
}

// ResolveCanonicalID maps a numeric employeeID (as string) to its empID.
// The mapping is rebuilt from the full employee set on every call. A
// candidate that is already a known empID resolves to itself; anything
// unknown passes through unresolved.
func (s *EmployeeService) ResolveCanonicalID(ctx context.Context, candidate string) (Resolution, error) {
	employees, err := s.Find(ctx, bson.D{}, nil)
	if err != nil {
		return Resolution{ID: candidate}, err
	}

	byNumericID := make(map[string]string, len(employees))
	known := make(map[string]bool, len(employees))
	for _, emp := range employees {
		if emp.EmployeeID != 0 {
			byNumericID[strconv.FormatInt(emp.EmployeeID, 10)] = emp.EmpID
		}
		known[emp.EmpID] = true
	}

	if empID, ok := byNumericID[candidate]; ok {
		return Resolution{ID: empID, Resolved: true}, nil
	}
	if known[candidate] {
		return Resolution{ID: candidate, Resolved: true}, nil
	}

	return Resolution{ID: candidate, Resolved: false}, nil
}

// regexQuote escapes regex metacharacters in a user-supplied fragment.
func regexQuote(s string) string {
	special := `\.+*?()|[]{}^$`
	out := make([]rune, 0, len(s))
	for _, r := range s {
		for _, sp := range special {
			if r == sp {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, r)
	}
	return string(out)
}
