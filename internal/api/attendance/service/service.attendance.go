// Package attendancesvc owns the raw attendance record entity.
package attendancesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	attendancemodels "fieldpulse/internal/api/attendance/models"
	basemodels "fieldpulse/internal/api/base/models"
	basesvc "fieldpulse/internal/api/base/service"
	"fieldpulse/internal/common"
	"fieldpulse/internal/logger"
	"fieldpulse/internal/registry"
	"fieldpulse/internal/unolo"
	"fieldpulse/internal/utility"
)

// AttendanceService provides attendance sync and queries.
type AttendanceService struct {
	*basesvc.BaseServiceMongoImpl[attendancemodels.Attendance]
	source *unolo.Client
}

// NewAttendanceService creates the service.
func NewAttendanceService(collections *registry.Registry[*mongo.Collection], source *unolo.Client) (*AttendanceService, error) {
	collection, exists := collections.Get("attendance")
	if !exists {
		return nil, fmt.Errorf("failed to get attendance collection: %v", common.ErrNotFound)
	}

	return &AttendanceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[attendancemodels.Attendance](collection),
		source:               source,
	}, nil
}

// attendanceFieldMap maps payload keys onto local string fields.
var attendanceFieldMap = map[string]string{
	"status":   "status",
	"punchIn":  "punchIn",
	"punchOut": "punchOut",
}

// normalizeAttendance maps one raw punch record onto the local schema.
func normalizeAttendance(item map[string]interface{}) (bson.M, bson.M, error) {
	userID := int64(utility.CoerceInt(item["userID"]))
	date := utility.CoerceString(item["date"])
	if userID == 0 || date == "" {
		return nil, nil, fmt.Errorf("missing userID or date")
	}

	doc := bson.M{"userID": userID, "date": date}
	extra := bson.M{}

	for key, value := range item {
		if value == nil || key == "userID" || key == "date" {
			continue
		}
		switch key {
		case "punchInLat":
			doc["punchInLat"] = utility.CoerceFloat(value)
		case "punchInLon":
			doc["punchInLon"] = utility.CoerceFloat(value)
		case "punchOutLat":
			doc["punchOutLat"] = utility.CoerceFloat(value)
		case "punchOutLon":
			doc["punchOutLon"] = utility.CoerceFloat(value)
		default:
			if field, ok := attendanceFieldMap[key]; ok {
				if v := utility.CoerceString(value); v != "" {
					doc[field] = v
				}
			} else {
				extra[key] = value
			}
		}
	}

	if len(extra) > 0 {
		doc["extra"] = extra
	}

	return bson.M{"userID": userID, "date": date}, doc, nil
}

// Sync pulls attendance for the date window and upserts keyed on
// (userID, date).
func (s *AttendanceService) Sync(ctx context.Context, start, end string) (basemodels.SyncStats, error) {
	log := logger.GetSyncLogger()
	stats := basemodels.SyncStats{}

	items, err := s.source.GetAttendance(ctx, start, end)
	if err != nil {
		return stats, common.NewExternalAPIError("attendance fetch failed", err.Error())
	}
	defer s.source.Close()

	stats.TotalFetched = len(items)
	log.WithFields(map[string]interface{}{
		"count": len(items),
		"start": start,
		"end":   end,
	}).Info("Fetched attendance records")

	for _, item := range items {
		filter, doc, err := normalizeAttendance(item)
		if err != nil {
			log.WithError(err).Warn("Skipping invalid attendance record")
			stats.Errors++
			continue
		}

		_, created, err := s.Upsert(ctx, filter, doc)
		if err != nil {
			log.WithError(err).WithField("filter", filter).Error("Attendance upsert failed")
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
	}).Info("Attendance sync completed")

	return stats, nil
}

// List returns attendance records with optional filters, paginated.
func (s *AttendanceService) List(ctx context.Context, userID, start, end string, limit, skip int64) (*basemodels.PaginateResult[attendancemodels.Attendance], error) {
	filter := bson.M{}
	if userID != "" {
		filter["userID"] = int64(utility.CoerceInt(userID))
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
