// Package eodsvc owns the end-of-day summary entity.
package eodsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "fieldpulse/internal/api/base/models"
	basesvc "fieldpulse/internal/api/base/service"
	eodmodels "fieldpulse/internal/api/eod/models"
	"fieldpulse/internal/common"
	"fieldpulse/internal/logger"
	"fieldpulse/internal/registry"
	"fieldpulse/internal/unolo"
	"fieldpulse/internal/utility"
)

// EodService provides EOD summary sync and queries.
type EodService struct {
	*basesvc.BaseServiceMongoImpl[eodmodels.EodSummary]
	source *unolo.Client
}

// NewEodService creates the service.
func NewEodService(collections *registry.Registry[*mongo.Collection], source *unolo.Client) (*EodService, error) {
	collection, exists := collections.Get("eod_summaries")
	if !exists {
		return nil, fmt.Errorf("failed to get eod_summaries collection: %v", common.ErrNotFound)
	}

	return &EodService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[eodmodels.EodSummary](collection),
		source:               source,
	}, nil
}

// normalizeSummary maps one raw EOD item onto the local schema. The
// (employeeID, date) pair is the natural key; both are required.
func normalizeSummary(item map[string]interface{}) (bson.M, bson.M, error) {
	employeeID := int64(utility.CoerceInt(item["employeeID"]))
	date := utility.CoerceString(item["date"])
	if employeeID == 0 || date == "" {
		return nil, nil, fmt.Errorf("missing employeeID or date")
	}

	doc := bson.M{
		"employeeID":           employeeID,
		"date":                 date,
		"attendanceResultCode": utility.CoerceInt(item["attendanceResultCode"]),
	}

	if v := utility.CoerceString(item["internalEmpID"]); v != "" {
		doc["internalEmpID"] = v
	}
	for _, key := range []string{"distance", "odoDistance"} {
		if v, ok := item[key]; ok && v != nil {
			doc[key] = utility.CoerceFloat(v)
		}
	}
	for _, key := range []string{
		"adminAssignedTasks", "adminCompletedTasks",
		"selfAssignedTasks", "selfCompletedTasks",
		"numBreaks", "totalForms", "clientsCreated", "totalClientVisits",
	} {
		if v, ok := item[key]; ok && v != nil {
			doc[key] = utility.CoerceInt(v)
		}
	}
	for _, key := range []string{"totalBreakTime", "firstSignIn", "lastSignOut"} {
		if v := utility.CoerceString(item[key]); v != "" {
			doc[key] = v
		}
	}

	return bson.M{"employeeID": employeeID, "date": date}, doc, nil
}

// Sync pulls EOD summaries for the date window and upserts them keyed
// on (employeeID, date).
func (s *EodService) Sync(ctx context.Context, start, end string) (basemodels.SyncStats, error) {
	log := logger.GetSyncLogger()
	stats := basemodels.SyncStats{}

	items, err := s.source.GetEODSummaries(ctx, start, end)
	if err != nil {
		return stats, common.NewExternalAPIError("eod summary fetch failed", err.Error())
	}
	defer s.source.Close()

	stats.TotalFetched = len(items)
	log.WithFields(map[string]interface{}{
		"count": len(items),
		"start": start,
		"end":   end,
	}).Info("Fetched EOD summaries")

	for _, item := range items {
		filter, doc, err := normalizeSummary(item)
		if err != nil {
			log.WithError(err).Warn("Skipping invalid EOD record")
			stats.Errors++
			continue
		}

		_, created, err := s.Upsert(ctx, filter, doc)
		if err != nil {
			log.WithError(err).WithField("filter", filter).Error("EOD upsert failed")
			stats.Errors++
			continue
		}
		if created {
			stats.Created++
		} else {
			stats.Updated++
		}
	}

	log.WithFields(map[string]interface{}{
		"fetched": stats.TotalFetched,
		"created": stats.Created,
		"updated": stats.Updated,
		"errors":  stats.Errors,
	}).Info("EOD sync completed")

	return stats, nil
}

// ForEmployee returns one employee's summaries in the date window,
// oldest first. Matches on either identity column.
func (s *EodService) ForEmployee(ctx context.Context, empID string, employeeID int64, start, end string) ([]eodmodels.EodSummary, error) {
	filter := bson.M{
		"date": bson.M{"$gte": start, "$lte": end},
	}
	var idOr []bson.M
	if empID != "" {
		idOr = append(idOr, bson.M{"internalEmpID": empID})
	}
	if employeeID != 0 {
		idOr = append(idOr, bson.M{"employeeID": employeeID})
	}
	if len(idOr) > 0 {
		filter["$or"] = idOr
	}

	return s.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
}

// ForWindow returns all summaries in the date window.
func (s *EodService) ForWindow(ctx context.Context, start, end string) ([]eodmodels.EodSummary, error) {
	filter := bson.M{"date": bson.M{"$gte": start, "$lte": end}}
	return s.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
}

// List returns summaries with optional filters, paginated.
func (s *EodService) List(ctx context.Context, employeeID, start, end string, limit, skip int64) (*basemodels.PaginateResult[eodmodels.EodSummary], error) {
	filter := bson.M{}
	if employeeID != "" {
		filter["employeeID"] = int64(utility.CoerceInt(employeeID))
	}
	if start != "" || end != "" {
		window := bson.M{}
		if start != "" {
			window["$gte"] = start
		}
		if end != "" {
			window["$lte"] = end
		}
		filter["date"] = window
	}

	return s.FindWithPagination(ctx, filter, limit, skip, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
}
