// Package analyticssvc implements the visit analytics: the task-client
// join, area-wise coverage, school category buckets and the admin
// overview.
package analyticssvc

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	clientmodels "fieldpulse/internal/api/client/models"
	clientsvc "fieldpulse/internal/api/client/service"
	employeemodels "fieldpulse/internal/api/employee/models"
	employeesvc "fieldpulse/internal/api/employee/service"
	taskmodels "fieldpulse/internal/api/task/models"
	"fieldpulse/internal/common"
	"fieldpulse/internal/logger"
	"fieldpulse/internal/registry"
	"fieldpulse/internal/utility"
)

// School category buckets. Visits with no recognizable category land in
// the no-info bucket.
const (
	BucketHot    = "Hot"
	BucketWarm   = "Warm"
	BucketCold   = "Cold"
	BucketNoInfo = "No Info"
)

// Drilldown filters for the admin views.
const (
	FilterSpecimens  = "specimens"
	FilterHotSchools = "hot_schools"
)

// Visit is one task joined with its client. Client is never nil: an
// unresolvable reference gets the unknown placeholder.
type Visit struct {
	Task   taskmodels.Task      `json:"task"`
	Client *clientmodels.Client `json:"client"`
}

// AreaCoverage is the per-area rollup for one employee.
type AreaCoverage struct {
	Area         string   `json:"area"`
	TotalClients int      `json:"total_clients"`
	VisitedCount int      `json:"visited_count"`
	TaskCount    int      `json:"task_count"`
	Visited      []string `json:"visited"`
	Unvisited    []string `json:"unvisited"`
	Summary      string   `json:"summary"` // "X of Y visited"
}

// SchoolBuckets groups one employee's visited schools by the latest
// recorded category per school.
type SchoolBuckets struct {
	Hot    []string `json:"hot"`
	Warm   []string `json:"warm"`
	Cold   []string `json:"cold"`
	NoInfo []string `json:"no_info"`

	HotCount    int `json:"hot_count"`
	WarmCount   int `json:"warm_count"`
	ColdCount   int `json:"cold_count"`
	NoInfoCount int `json:"no_info_count"`
}

// EmployeeOverview is one row of the admin overview. Specimens is the
// summed specimensGiven count over the window, not a visit count.
type EmployeeOverview struct {
	EmpID         string `json:"empID"`
	EmpName       string `json:"empName"`
	TotalVisits   int    `json:"total_visits"`
	UniqueClients int    `json:"unique_clients"`
	Specimens     int    `json:"specimens"`
	HotSchools    int    `json:"hot_schools"`
}

// joinedTask is the aggregation decode target: the task document with
// the joined client embedded.
type joinedTask struct {
	taskmodels.Task `bson:",inline"`
	Client          *clientmodels.Client `bson:"client,omitempty"`
}

// AnalyticsService computes visit analytics over tasks and clients.
type AnalyticsService struct {
	tasks     *mongo.Collection
	employees *employeesvc.EmployeeService
	clients   *clientsvc.ClientService
}

// NewAnalyticsService creates the service.
func NewAnalyticsService(collections *registry.Registry[*mongo.Collection], employees *employeesvc.EmployeeService, clients *clientsvc.ClientService) (*AnalyticsService, error) {
	tasks, exists := collections.Get("tasks")
	if !exists {
		return nil, fmt.Errorf("failed to get tasks collection: %v", common.ErrNotFound)
	}

	return &AnalyticsService{
		tasks:     tasks,
		employees: employees,
		clients:   clients,
	}, nil
}

// employeeMatch builds the task identity filter for one employee. Tasks
// carry the numeric ID, the string ID or both, so it matches either.
func employeeMatch(emp *employeemodels.Employee) bson.M {
	or := []bson.M{{"internalEmpID": emp.EmpID}}
	if emp.EmployeeID != 0 {
		or = append(or, bson.M{"employeeID": emp.EmployeeID})
	}
	return bson.M{"$or": or}
}

// clientJoinStage is the $lookup joining tasks to clients. The task's
// clientID may correspond to the client's external ID, the sheet ID or
// the Mongo _id, with numeric/string drift on all of them, so the join
// tries every representation.
func clientJoinStage() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from": "clients",
			"let":  bson.M{"cid": "$clientID"},
			"pipeline": []bson.M{
				{"$match": bson.M{
					"$expr": bson.M{"$or": []bson.M{
						{"$eq": []interface{}{"$unoloClientID", "$$cid"}},
						{"$eq": []interface{}{bson.M{"$toString": "$unoloClientID"}, "$$cid"}},
						{"$eq": []interface{}{"$ID", "$$cid"}},
						{"$eq": []interface{}{bson.M{"$toString": "$ID"}, "$$cid"}},
						{"$eq": []interface{}{bson.M{"$toString": "$_id"}, "$$cid"}},
					}},
				}},
				{"$limit": 1},
			},
			"as": "client",
		}},
		{"$unwind": bson.M{"path": "$client", "preserveNullAndEmptyArrays": true}},
	}
}

// resolveEmployee maps an empID to its full record.
func (s *AnalyticsService) resolveEmployee(ctx context.Context, empID string) (*employeemodels.Employee, error) {
	emp, err := s.employees.FindOne(ctx, bson.M{"empID": empID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeDatabaseQuery,
				fmt.Sprintf("unknown employee %s", empID), common.StatusNotFound, nil)
		}
		return nil, err
	}
	return &emp, nil
}

// visitsPipeline runs the joined visit query for one employee and date
// window. category filters the joined client unless empty or "Both".
func (s *AnalyticsService) visitsPipeline(ctx context.Context, emp *employeemodels.Employee, start, end, category string) ([]Visit, error) {
	from, err := utility.ParseDateParam(start)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil)
	}
	to, err := utility.ParseDateParam(end)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil)
	}
	lo, hi := utility.DayBounds(from, to)

	pipeline := []bson.M{
		{"$match": bson.M{
			"$and": []bson.M{
				employeeMatch(emp),
				{"checkinTime": bson.M{"$gte": lo, "$lte": hi}},
			},
		}},
	}
	pipeline = append(pipeline, clientJoinStage()...)
	if category != "" && !strings.EqualFold(category, "Both") {
		pipeline = append(pipeline, bson.M{"$match": bson.M{"client.clientCategory": category}})
	}
	pipeline = append(pipeline, bson.M{"$sort": bson.M{"checkinTime": 1}})

	cursor, err := s.tasks.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []joinedTask
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	visits := make([]Visit, 0, len(rows))
	for _, row := range rows {
		client := row.Client
		if client == nil {
			client = clientmodels.UnknownClient(row.ClientID)
			logger.GetAppLogger().WithFields(map[string]interface{}{
				"taskID":   row.TaskID,
				"clientID": row.ClientID,
			}).Debug("Task client reference unresolved")
		}
		visits = append(visits, Visit{Task: row.Task, Client: client})
	}

	return visits, nil
}

// EmployeeVisits returns one employee's joined visits in the window.
func (s *AnalyticsService) EmployeeVisits(ctx context.Context, empID, start, end, category string) ([]Visit, error) {
	emp, err := s.resolveEmployee(ctx, empID)
	if err != nil {
		return nil, err
	}
	return s.visitsPipeline(ctx, emp, start, end, category)
}

// AreaWise computes per-area coverage for one employee: how many of the
// clients assigned to them in each area they actually visited.
func (s *AnalyticsService) AreaWise(ctx context.Context, empID, start, end, category string) ([]AreaCoverage, error) {
	emp, err := s.resolveEmployee(ctx, empID)
	if err != nil {
		return nil, err
	}

	visits, err := s.visitsPipeline(ctx, emp, start, end, category)
	if err != nil {
		return nil, err
	}
	assigned, err := s.clients.GroupedClients(ctx, emp.EmpID, clientsvc.GroupByArea, category)
	if err != nil {
		return nil, err
	}

	visitCounts := make(map[string]int)
	for _, v := range visits {
		if !v.Client.Unknown {
			visitCounts[v.Client.Key()]++
		}
	}

	areas := make([]string, 0, len(assigned))
	for area := range assigned {
		areas = append(areas, area)
	}
	sort.Strings(areas)

	coverage := make([]AreaCoverage, 0, len(areas))
	for _, area := range areas {
		row := AreaCoverage{Area: area, TotalClients: len(assigned[area])}
		for _, client := range assigned[area] {
			if n := visitCounts[client.Key()]; n > 0 {
				row.Visited = append(row.Visited, client.ClientName)
				row.TaskCount += n
			} else {
				row.Unvisited = append(row.Unvisited, client.ClientName)
			}
		}
		row.VisitedCount = len(row.Visited)
		row.Summary = fmt.Sprintf("%d of %d visited", row.VisitedCount, row.TotalClients)
		coverage = append(coverage, row)
	}

	return coverage, nil
}

// bucketize groups visited schools by category. Schools are identified
// by the client key, not the display name, so two schools sharing a
// name stay separate rows. Visits arrive sorted by check-in; the last
// visit per school decides its category.
func bucketize(visits []Visit) SchoolBuckets {
	buckets := SchoolBuckets{
		Hot:    []string{},
		Warm:   []string{},
		Cold:   []string{},
		NoInfo: []string{},
	}

	latest := make(map[string]string)
	displayName := make(map[string]string)
	for _, v := range visits {
		if v.Client.Unknown {
			continue
		}
		key := v.Client.Key()
		latest[key] = v.Task.SchoolCategory()
		displayName[key] = v.Client.ClientName
	}

	keys := make([]string, 0, len(latest))
	for key := range latest {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if displayName[keys[i]] != displayName[keys[j]] {
			return displayName[keys[i]] < displayName[keys[j]]
		}
		return keys[i] < keys[j]
	})

	for _, key := range keys {
		name := displayName[key]
		switch latest[key] {
		case BucketHot:
			buckets.Hot = append(buckets.Hot, name)
		case BucketWarm:
			buckets.Warm = append(buckets.Warm, name)
		case BucketCold:
			buckets.Cold = append(buckets.Cold, name)
		default:
			buckets.NoInfo = append(buckets.NoInfo, name)
		}
	}
	buckets.HotCount = len(buckets.Hot)
	buckets.WarmCount = len(buckets.Warm)
	buckets.ColdCount = len(buckets.Cold)
	buckets.NoInfoCount = len(buckets.NoInfo)

	return buckets
}

// Buckets groups one employee's visited schools by category. When a
// school was visited more than once the latest visit's category wins.
func (s *AnalyticsService) Buckets(ctx context.Context, empID, start, end string) (SchoolBuckets, error) {
	emp, err := s.resolveEmployee(ctx, empID)
	if err != nil {
		return SchoolBuckets{Hot: []string{}, Warm: []string{}, Cold: []string{}, NoInfo: []string{}}, err
	}
	visits, err := s.visitsPipeline(ctx, emp, start, end, "School")
	if err != nil {
		return SchoolBuckets{Hot: []string{}, Warm: []string{}, Cold: []string{}, NoInfo: []string{}}, err
	}

	return bucketize(visits), nil
}

// Overview computes the per-employee admin rollup across the whole
// team for a date window.
func (s *AnalyticsService) Overview(ctx context.Context, start, end string) ([]EmployeeOverview, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]EmployeeOverview, 0, len(employees))
	for i := range employees {
		emp := &employees[i]
		visits, err := s.visitsPipeline(ctx, emp, start, end, "")
		if err != nil {
			return nil, err
		}

		row := EmployeeOverview{EmpID: emp.EmpID, EmpName: emp.EmpName, TotalVisits: len(visits)}
		unique := make(map[string]bool)
		latest := make(map[string]string)
		for _, v := range visits {
			if !v.Client.Unknown {
				unique[v.Client.Key()] = true
				latest[v.Client.Key()] = v.Task.SchoolCategory()
			}
			row.Specimens += v.Task.SpecimenCount()
		}
		for _, category := range latest {
			if category == BucketHot {
				row.HotSchools++
			}
		}
		row.UniqueClients = len(unique)
		rows = append(rows, row)
	}

	return rows, nil
}

// Drilldown returns visits narrowed by an overview filter: visits that
// gave specimens, or visits to schools whose latest category is Hot.
// empID narrows to one employee; empty covers the whole team.
func (s *AnalyticsService) Drilldown(ctx context.Context, empID, start, end, filter string) ([]Visit, error) {
	if filter != "" && filter != FilterSpecimens && filter != FilterHotSchools {
		return nil, common.NewError(common.ErrCodeValidationInput,
			"filter must be specimens or hot_schools", common.StatusBadRequest, nil)
	}

	var visits []Visit
	if empID != "" {
		v, err := s.EmployeeVisits(ctx, empID, start, end, "")
		if err != nil {
			return nil, err
		}
		visits = v
	} else {
		employees, err := s.employees.List(ctx)
		if err != nil {
			return nil, err
		}
		for i := range employees {
			v, err := s.visitsPipeline(ctx, &employees[i], start, end, "")
			if err != nil {
				return nil, err
			}
			visits = append(visits, v...)
		}
	}

	switch filter {
	case FilterSpecimens:
		out := make([]Visit, 0, len(visits))
		for _, v := range visits {
			if v.Task.HasSpecimens() {
				out = append(out, v)
			}
		}
		return out, nil
	case FilterHotSchools:
		latest := make(map[string]string)
		for _, v := range visits {
			if !v.Client.Unknown {
				latest[v.Client.Key()] = v.Task.SchoolCategory()
			}
		}
		out := make([]Visit, 0, len(visits))
		for _, v := range visits {
			if !v.Client.Unknown && latest[v.Client.Key()] == BucketHot {
				out = append(out, v)
			}
		}
		return out, nil
	default:
		return visits, nil
	}
}
