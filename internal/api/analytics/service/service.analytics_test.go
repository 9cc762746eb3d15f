package analyticssvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	clientmodels "fieldpulse/internal/api/client/models"
	employeemodels "fieldpulse/internal/api/employee/models"
	taskmodels "fieldpulse/internal/api/task/models"
)

func TestEmployeeMatchBothIdentities(t *testing.T) {
	emp := &employeemodels.Employee{EmpID: "E12", EmployeeID: 12}
	match := employeeMatch(emp)

	or, ok := match["$or"].([]bson.M)
	if !ok {
		t.Fatalf("match = %v", match)
	}
	if len(or) != 2 {
		t.Fatalf("branches = %d, want 2", len(or))
	}
	if or[0]["internalEmpID"] != "E12" {
		t.Errorf("internalEmpID branch = %v", or[0])
	}
	if or[1]["employeeID"] != int64(12) {
		t.Errorf("employeeID branch = %v", or[1])
	}
}

func TestEmployeeMatchWithoutNumericID(t *testing.T) {
	emp := &employeemodels.Employee{EmpID: "E9"}
	match := employeeMatch(emp)

	or := match["$or"].([]bson.M)
	if len(or) != 1 {
		t.Errorf("branches = %d, want 1 when numeric ID is unknown", len(or))
	}
}

func TestClientJoinStageTriesEveryRepresentation(t *testing.T) {
	stages := clientJoinStage()
	if len(stages) != 2 {
		t.Fatalf("stages = %d, want lookup + unwind", len(stages))
	}

	lookup := stages[0]["$lookup"].(bson.M)
	if lookup["from"] != "clients" {
		t.Errorf("lookup from = %v", lookup["from"])
	}

	pipeline := lookup["pipeline"].([]bson.M)
	expr := pipeline[0]["$match"].(bson.M)["$expr"].(bson.M)
	branches := expr["$or"].([]bson.M)
	if len(branches) != 5 {
		t.Errorf("join strategies = %d, want 5", len(branches))
	}

	unwind := stages[1]["$unwind"].(bson.M)
	if unwind["preserveNullAndEmptyArrays"] != true {
		t.Error("unwind drops tasks with no client match")
	}
}

func categoryVisit(client *clientmodels.Client, category string) Visit {
	return Visit{
		Task:   taskmodels.Task{Metadata: map[string]interface{}{"schoolCategory": category}},
		Client: client,
	}
}

func TestBucketizeKeepsSameNameSchoolsDistinct(t *testing.T) {
	// Two schools share a display name but carry different external IDs;
	// each keeps its own bucket row.
	a := &clientmodels.Client{UnoloClientID: "100", ClientName: "St. Mary School"}
	b := &clientmodels.Client{UnoloClientID: "200", ClientName: "St. Mary School"}

	buckets := bucketize([]Visit{
		categoryVisit(a, BucketHot),
		categoryVisit(b, BucketCold),
	})

	if buckets.HotCount != 1 || buckets.ColdCount != 1 {
		t.Errorf("counts hot=%d cold=%d, want 1 and 1", buckets.HotCount, buckets.ColdCount)
	}
}

func TestBucketizeLatestVisitWins(t *testing.T) {
	school := &clientmodels.Client{UnoloClientID: "100", ClientName: "DAV School"}

	buckets := bucketize([]Visit{
		categoryVisit(school, BucketCold),
		categoryVisit(school, BucketHot),
	})

	if buckets.HotCount != 1 || buckets.ColdCount != 0 {
		t.Errorf("counts hot=%d cold=%d, want the later visit's category", buckets.HotCount, buckets.ColdCount)
	}
	if len(buckets.Hot) != 1 || buckets.Hot[0] != "DAV School" {
		t.Errorf("Hot = %v", buckets.Hot)
	}
}

func TestBucketizeSkipsUnknownClients(t *testing.T) {
	buckets := bucketize([]Visit{
		categoryVisit(clientmodels.UnknownClient("77"), BucketHot),
	})
	if buckets.HotCount != 0 || buckets.NoInfoCount != 0 {
		t.Errorf("unknown client bucketed: %+v", buckets)
	}
}
