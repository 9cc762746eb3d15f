package clientsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestNormalizeSheetRowMatchesByID(t *testing.T) {
	filter, doc, err := NormalizeSheetRow(map[string]interface{}{
		"ID":                  float64(101),
		"Client Name (*)":     "Sunrise Public School",
		"Visible To (*)":      "E12",
		"Client Catagory (*)": "School",
	})
	if err != nil {
		t.Fatalf("NormalizeSheetRow: %v", err)
	}

	want := bson.M{"unoloClientID": "101"}
	if filter["unoloClientID"] != want["unoloClientID"] {
		t.Errorf("filter = %v, want match on unoloClientID 101", filter)
	}
	if doc["clientName"] != "Sunrise Public School" {
		t.Errorf("clientName = %v", doc["clientName"])
	}
	if doc["visibleTo"] != "E12" {
		t.Errorf("visibleTo = %v", doc["visibleTo"])
	}
	// The misspelled sheet header still lands on the canonical field.
	if doc["clientCategory"] != "School" {
		t.Errorf("clientCategory = %v", doc["clientCategory"])
	}
}

func TestNormalizeSheetRowFallsBackToName(t *testing.T) {
	filter, _, err := NormalizeSheetRow(map[string]interface{}{
		"Client Name (*)": "Greenfield Academy",
	})
	if err != nil {
		t.Fatalf("NormalizeSheetRow: %v", err)
	}
	if filter["clientName"] != "Greenfield Academy" {
		t.Errorf("filter = %v, want match on clientName", filter)
	}
}

func TestNormalizeSheetRowUnrecognizedColumns(t *testing.T) {
	_, doc, err := NormalizeSheetRow(map[string]interface{}{
		"Client Name (*)": "Greenfield Academy",
		"Fresh Column":    "survives",
	})
	if err != nil {
		t.Fatalf("NormalizeSheetRow: %v", err)
	}

	extra, ok := doc["extra"].(bson.M)
	if !ok {
		t.Fatalf("extra missing: %T", doc["extra"])
	}
	if extra["Fresh Column"] != "survives" {
		t.Errorf("unrecognized column dropped: %v", extra)
	}
}

func TestNormalizeSheetRowRejectsKeyless(t *testing.T) {
	if _, _, err := NormalizeSheetRow(map[string]interface{}{
		"Address (*)": "12 Hill Road",
	}); err == nil {
		t.Error("NormalizeSheetRow accepted a row with no key")
	}
}

func TestNormalizeAPIClient(t *testing.T) {
	clientID, doc, err := normalizeAPIClient(map[string]interface{}{
		"clientID":        float64(7),
		"clientName":      "Lakeview School",
		"proprietorName":  "R. Nair",
		"phoneNumber":     "9900112233",
		"clientCatagory":  "School",
		"divisionNameNew": "North Zone",
		"lat":             12.9,
		"lng":             77.6,
		"newField":        "kept",
	})
	if err != nil {
		t.Fatalf("normalizeAPIClient: %v", err)
	}
	if clientID != "7" {
		t.Errorf("clientID = %q, want 7", clientID)
	}
	if doc["contactName"] != "R. Nair" {
		t.Errorf("contactName = %v", doc["contactName"])
	}
	if doc["contactNumber"] != "9900112233" {
		t.Errorf("contactNumber = %v", doc["contactNumber"])
	}
	if doc["clientCategory"] != "School" {
		t.Errorf("clientCategory = %v", doc["clientCategory"])
	}
	if doc["divisionName"] != "North Zone" {
		t.Errorf("divisionName = %v", doc["divisionName"])
	}
	if doc["latitude"] != 12.9 || doc["longitude"] != 77.6 {
		t.Errorf("coordinates = %v / %v", doc["latitude"], doc["longitude"])
	}

	extra, ok := doc["extra"].(bson.M)
	if !ok || extra["newField"] != "kept" {
		t.Errorf("unrecognized field dropped: %v", doc["extra"])
	}
}

func TestNormalizeAPIClientRejectsKeyless(t *testing.T) {
	if _, _, err := normalizeAPIClient(map[string]interface{}{
		"address": "somewhere",
	}); err == nil {
		t.Error("normalizeAPIClient accepted a record with no key")
	}
}
