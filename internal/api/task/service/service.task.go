// Package tasksvc owns the task entity: sync from the tracking source,
// webhook ingestion and the task queries.
package tasksvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "fieldpulse/internal/api/base/models"
	basesvc "fieldpulse/internal/api/base/service"
	taskmodels "fieldpulse/internal/api/task/models"
	"fieldpulse/internal/common"
	"fieldpulse/internal/logger"
	"fieldpulse/internal/registry"
	"fieldpulse/internal/unolo"
	"fieldpulse/internal/utility"
)

// TaskService provides task sync and queries.
type TaskService struct {
	*basesvc.BaseServiceMongoImpl[taskmodels.Task]
	source *unolo.Client
}

// NewTaskService creates the service.
func NewTaskService(collections *registry.Registry[*mongo.Collection], source *unolo.Client) (*TaskService, error) {
	collection, exists := collections.Get("tasks")
	if !exists {
		return nil, fmt.Errorf("failed to get tasks collection: %v", common.ErrNotFound)
	}

	return &TaskService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[taskmodels.Task](collection),
		source:               source,
	}, nil
}

// fixedTaskFields are the payload keys stored as first-class columns.
// Everything else merges into the metadata bag.
var fixedTaskFields = map[string]bool{
	"taskID": true, "clientID": true, "employeeID": true,
	"internalEmpID": true, "date": true, "checkinTime": true,
	"checkoutTime": true, "taskDescription": true, "taskStatus": true,
	"address": true, "lat": true, "lon": true,
	"createdBy": true, "createdByName": true,
	"lastModifiedBy": true, "lastModifiedByName": true,
	"metadata": true, "customEntity": true, "customFieldsComplex": true,
}

// NormalizeTask maps one raw task payload onto the local schema.
// Exported for the webhook handler. Returns the natural key and the
// upsert document.
func NormalizeTask(item map[string]interface{}) (string, bson.M, error) {
	taskID := utility.CoerceString(item["taskID"])
	if taskID == "" {
		return "", nil, fmt.Errorf("missing taskID")
	}

	doc := bson.M{"taskID": taskID}
	metadata := bson.M{}

	// Custom form fields arrive under several wrapper keys depending on
	// producer version; all of them merge into one bag.
	for _, wrapper := range []string{"metadata", "customEntity", "customFieldsComplex"} {
		if nested, ok := item[wrapper].(map[string]interface{}); ok {
			for k, v := range nested {
				metadata[k] = v
			}
		}
	}

	for key, value := range item {
		if value == nil || key == "taskID" {
			continue
		}
		if !fixedTaskFields[key] {
			metadata[key] = value
			continue
		}
		switch key {
		case "clientID":
			doc["clientID"] = utility.CoerceString(value)
		case "employeeID":
			doc["employeeID"] = int64(utility.CoerceInt(value))
		case "internalEmpID":
			doc["internalEmpID"] = utility.CoerceString(value)
		case "date":
			doc["date"] = utility.CoerceString(value)
		case "checkinTime", "checkoutTime":
			if t, ok := utility.ParseTimestamp(value); ok {
				doc[key] = t
			}
		case "lat":
			doc["lat"] = utility.CoerceFloat(value)
		case "lon":
			doc["lon"] = utility.CoerceFloat(value)
		case "metadata", "customEntity", "customFieldsComplex":
			// merged above
		default:
			if v := utility.CoerceString(value); v != "" {
				doc[key] = v
			}
		}
	}

	// Derive the day from the check-in when the producer omitted it.
	if doc["date"] == nil {
		if t, ok := doc["checkinTime"].(time.Time); ok {
			doc["date"] = t.UTC().Format("2006-01-02")
		}
	}

	if len(metadata) > 0 {
		doc["metadata"] = metadata
	}

	return taskID, doc, nil
}

// Sync pulls tasks for the date window and upserts keyed on taskID.
// start and end are YYYY-MM-DD, inclusive.
func (s *TaskService) Sync(ctx context.Context, start, end, customTaskName string) (basemodels.SyncStats, error) {
	log := logger.GetSyncLogger()
	stats := basemodels.SyncStats{}

	items, err := s.source.GetTasks(ctx, start, end, customTaskName)
	if err != nil {
		return stats, common.NewExternalAPIError("task fetch failed", err.Error())
	}
	defer s.source.Close()

	stats.TotalFetched = len(items)
	log.WithFields(map[string]interface{}{
		"count": len(items),
		"start": start,
		"end":   end,
	}).Info("Fetched tasks")

	for _, item := range items {
		taskID, doc, err := NormalizeTask(item)
		if err != nil {
			log.WithError(err).Warn("Skipping invalid task record")
			stats.Errors++
			continue
		}

		_, created, err := s.Upsert(ctx, bson.M{"taskID": taskID}, doc)
		if err != nil {
			log.WithError(err).WithField("taskID", taskID).Error("Task upsert failed")
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
	}).Info("Task sync completed")

	return stats, nil
}

// UpsertPayload ingests one webhook task payload. Returns the natural
// key and whether a new record was created.
func (s *TaskService) UpsertPayload(ctx context.Context, item map[string]interface{}) (string, bool, error) {
	taskID, doc, err := NormalizeTask(item)
	if err != nil {
		return "", false, common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, nil)
	}

	_, created, err := s.Upsert(ctx, bson.M{"taskID": taskID}, doc)
	return taskID, created, err
}

// List returns tasks filtered by employee and date window, paginated.
func (s *TaskService) List(ctx context.Context, empID, employeeID, start, end string, limit, skip int64) (*basemodels.PaginateResult[taskmodels.Task], error) {
	filter := bson.M{}

	var idOr []bson.M
	if empID != "" {
		idOr = append(idOr, bson.M{"internalEmpID": empID})
	}
	if employeeID != "" {
		idOr = append(idOr, bson.M{"employeeID": int64(utility.CoerceInt(employeeID))})
	}
	if len(idOr) > 0 {
		filter["$or"] = idOr
	}

	if start != "" || end != "" {
		window, err := checkinWindow(start, end)
		if err != nil {
			return nil, err
		}
		filter["checkinTime"] = window
	}

	return s.FindWithPagination(ctx, filter, limit, skip, options.Find().SetSort(bson.D{{Key: "checkinTime", Value: -1}}))
}

// checkinWindow builds the checkinTime range filter covering both days
// fully.
func checkinWindow(start, end string) (bson.M, error) {
	window := bson.M{}
	if start != "" {
		day, err := utility.ParseDateParam(start)
		if err != nil {
			return nil, err
		}
		from, _ := utility.DayBounds(day, day)
		window["$gte"] = from
	}
	if end != "" {
		day, err := utility.ParseDateParam(end)
		if err != nil {
			return nil, err
		}
		_, to := utility.DayBounds(day, day)
		window["$lte"] = to
	}
	return window, nil
}
