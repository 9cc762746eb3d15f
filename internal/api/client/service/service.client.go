// Package clientsvc owns the client entity: sync from the tracking
// source, webhook sheet-row upserts, and the visibility-scoped queries
// used by the dashboard.
package clientsvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "fieldpulse/internal/api/base/models"
	basesvc "fieldpulse/internal/api/base/service"
	clientmodels "fieldpulse/internal/api/client/models"
	"fieldpulse/internal/common"
	"fieldpulse/internal/logger"
	"fieldpulse/internal/registry"
	"fieldpulse/internal/unolo"
	"fieldpulse/internal/utility"
)

// Grouping dimensions accepted by GroupedClients.
const (
	GroupByArea     = "area"
	GroupByMaterial = "material"
	// UnassignedBucket collects records with an empty grouping value.
	UnassignedBucket = "unassigned"
)

// ClientService provides client sync and queries.
type ClientService struct {
	*basesvc.BaseServiceMongoImpl[clientmodels.Client]
	source *unolo.Client
}

// NewClientService creates the service.
func NewClientService(collections *registry.Registry[*mongo.Collection], source *unolo.Client) (*ClientService, error) {
	collection, exists := collections.Get("clients")
	if !exists {
		return nil, fmt.Errorf("failed to get clients collection: %v", common.ErrNotFound)
	}

	return &ClientService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[clientmodels.Client](collection),
		source:               source,
	}, nil
}

// apiFieldMap maps tracking-API payload keys onto local string fields.
var apiFieldMap = map[string]string{
	"clientName":      "clientName",
	"proprietorName":  "contactName",
	"contactName":     "contactName",
	"phoneNumber":     "contactNumber",
	"contactNumber":   "contactNumber",
	"countryCode":     "countryCode",
	"address":         "address",
	"city":            "city",
	"email":           "email",
	"clientCatagory":  "clientCategory", // upstream misspelling, both arrive
	"clientCategory":  "clientCategory",
	"divisionNameNew": "divisionName",
	"distributorName": "distributorName",
	"usingMaterial":   "usingMaterial",
	"usingIIT":        "usingIIT",
	"usingAI":         "usingAI",
	"branchesPlaces":  "branchesPlaces",
	"building":        "building",
	"internalClientID": "employeeID",
}

// sheetFieldMap maps the webhook sheet column names onto local fields.
// The upstream sheet headers are preserved verbatim, typos included.
var sheetFieldMap = map[string]string{
	"Client Name (*)":      "clientName",
	"Visible To (*)":       "visibleTo",
	"Employee ID":          "employeeID",
	"Contact Name (*)":     "contactName",
	"Country Code (*)":     "countryCode",
	"Contact Number (*)":   "contactNumber",
	"Address (*)":          "address",
	"Client Catagory (*)":  "clientCategory",
	"Division Name new (*)": "divisionName",
	"Distributor Name":     "distributorName",
	"Using Material (*)":   "usingMaterial",
	"Using IIT (*)":        "usingIIT",
	"Using AI (*)":         "usingAI",
	"Branches Places":      "branchesPlaces",
	"Building":             "building",
	"Created By":           "createdBy",
}

// normalizeAPIClient maps one tracking-API item onto the local schema.
func normalizeAPIClient(item map[string]interface{}) (string, bson.M, error) {
	clientID := utility.CoerceString(item["clientID"])
	name := utility.CoerceString(item["clientName"])
	if clientID == "" && name == "" {
		return "", nil, fmt.Errorf("missing clientID and clientName")
	}

	doc := bson.M{}
	extra := bson.M{}

	for key, value := range item {
		if value == nil {
			continue
		}
		switch key {
		case "clientID":
			doc["unoloClientID"] = clientID
		case "lat":
			doc["latitude"] = utility.CoerceFloat(value)
		case "lng":
			doc["longitude"] = utility.CoerceFloat(value)
		case "schoolStrength":
			doc["schoolStrength"] = utility.CoerceInt(value)
		case "createdTs":
			if t, ok := utility.ParseTimestamp(value); ok {
				doc["sourceCreatedAt"] = t.UnixMilli()
			}
		case "lastModifiedTs":
			if t, ok := utility.ParseTimestamp(value); ok {
				doc["sourceModifiedAt"] = t.UnixMilli()
			}
		default:
			if field, ok := apiFieldMap[key]; ok {
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

	return clientID, doc, nil
}

// NormalizeSheetRow maps one webhook sheet row onto the local schema.
// Exported for the webhook handler. Returns the upsert filter and doc.
func NormalizeSheetRow(row map[string]interface{}) (bson.M, bson.M, error) {
	doc := bson.M{}
	extra := bson.M{}

	for key, value := range row {
		if value == nil {
			continue
		}
		switch key {
		case "ID":
			doc["ID"] = value
			doc["unoloClientID"] = utility.CoerceString(value)
		case "Latitude":
			doc["latitude"] = utility.CoerceFloat(value)
		case "Longitude":
			doc["longitude"] = utility.CoerceFloat(value)
		case "School Strength":
			if s := utility.CoerceString(value); strings.TrimSpace(s) != "" {
				doc["schoolStrength"] = utility.CoerceInt(value)
			}
		case "Created At":
			if t, ok := utility.ParseTimestamp(value); ok {
				doc["sourceCreatedAt"] = t.UnixMilli()
			}
		case "Last Modified At":
			if t, ok := utility.ParseTimestamp(value); ok {
				doc["sourceModifiedAt"] = t.UnixMilli()
			}
		default:
			if field, ok := sheetFieldMap[key]; ok {
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

	name := utility.CoerceString(doc["clientName"])
	if doc["unoloClientID"] == nil && name == "" {
		return nil, nil, fmt.Errorf("row has neither ID nor client name")
	}

	// Prefer the external ID as the match key; fall back to the name for
	// rows the sheet has not assigned an ID yet.
	var filter bson.M
	if id, ok := doc["unoloClientID"].(string); ok && id != "" {
		filter = bson.M{"unoloClientID": id}
	} else {
		filter = bson.M{"clientName": name}
	}

	return filter, doc, nil
}

// Sync pulls the full client list and upserts keyed on unoloClientID.
func (s *ClientService) Sync(ctx context.Context) (basemodels.SyncStats, error) {
	log := logger.GetSyncLogger()
	stats := basemodels.SyncStats{}

	items, err := s.source.GetClients(ctx)
	if err != nil {
		return stats, common.NewExternalAPIError("client fetch failed", err.Error())
	}
	defer s.source.Close()

	stats.TotalFetched = len(items)
	log.WithField("count", len(items)).Info("Fetched clients")

	for _, item := range items {
		clientID, doc, err := normalizeAPIClient(item)
		if err != nil {
			log.WithError(err).Warn("Skipping invalid client record")
			stats.Errors++
			continue
		}

		var filter bson.M
		if clientID != "" {
			filter = bson.M{"unoloClientID": clientID}
		} else {
			filter = bson.M{"clientName": doc["clientName"]}
		}

		_, created, err := s.Upsert(ctx, filter, doc)
		if err != nil {
			log.WithError(err).WithField("unoloClientID", clientID).Error("Client upsert failed")
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
	}).Info("Client sync completed")

	return stats, nil
}

// UpsertSheetRow ingests one webhook sheet row. Returns the natural key
// and whether a new record was created.
func (s *ClientService) UpsertSheetRow(ctx context.Context, row map[string]interface{}) (string, bool, error) {
	filter, doc, err := NormalizeSheetRow(row)
	if err != nil {
		return "", false, common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, nil)
	}

	key := utility.CoerceString(doc["unoloClientID"])
	if key == "" {
		key = utility.CoerceString(doc["clientName"])
	}

	_, created, err := s.Upsert(ctx, filter, doc)
	return key, created, err
}

// ClientsForEmployee returns every client the employee owns, either as
// the declared visibility owner or through the employee-ID column.
// category filters when not empty and not "Both". No pagination: the
// per-employee client count is bounded in practice.
func (s *ClientService) ClientsForEmployee(ctx context.Context, empID, category string) ([]clientmodels.Client, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"visibleTo": empID},
			{"employeeID": empID},
		},
	}
	if category != "" && !strings.EqualFold(category, "Both") {
		filter["clientCategory"] = category
	}

	return s.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "clientName", Value: 1}}))
}

// GroupedClients groups the employee's clients by a caller-selected
// dimension. Records with an empty dimension value fall into the
// "unassigned" bucket rather than being dropped.
func (s *ClientService) GroupedClients(ctx context.Context, empID, dimension, category string) (map[string][]clientmodels.Client, error) {
	clients, err := s.ClientsForEmployee(ctx, empID, category)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]clientmodels.Client)
	for _, client := range clients {
		var key string
		switch dimension {
		case GroupByMaterial:
			key = client.UsingMaterial
		default:
			key = client.DivisionName
		}
		if strings.TrimSpace(key) == "" {
			key = UnassignedBucket
		}
		grouped[key] = append(grouped[key], client)
	}

	return grouped, nil
}

// List returns clients with optional filters, paginated.
func (s *ClientService) List(ctx context.Context, category, area, visibleTo string, limit, skip int64) (*basemodels.PaginateResult[clientmodels.Client], error) {
	filter := bson.M{}
	if category != "" && !strings.EqualFold(category, "Both") {
		filter["clientCategory"] = category
	}
	if area != "" {
		filter["divisionName"] = area
	}
	if visibleTo != "" {
		filter["visibleTo"] = visibleTo
	}

	return s.FindWithPagination(ctx, filter, limit, skip, options.Find().SetSort(bson.D{{Key: "clientName", Value: 1}}))
}
