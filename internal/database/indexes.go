package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the natural-key unique indexes and the secondary
// indexes the aggregation pipelines depend on. Safe to call on every
// startup; existing indexes are left untouched.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	// employees: empID is the stable external key
	employees := db.Collection(ColNames.Employees)
	if err := createIndexes(ctx, employees, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "empID", Value: 1}},
			Options: options.Index().SetName("employee_emp_id").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "employeeID", Value: 1}},
			Options: options.Index().SetName("employee_numeric_id"),
		},
		{
			Keys:    bson.D{{Key: "empName", Value: 1}},
			Options: options.Index().SetName("employee_name"),
		},
	}); err != nil {
		return err
	}

	// clients: at most one record per external client ID
	clients := db.Collection(ColNames.Clients)
	if err := createIndexes(ctx, clients, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "unoloClientID", Value: 1}},
			Options: options.Index().SetName("client_unolo_id").SetUnique(true).SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "visibleTo", Value: 1}},
			Options: options.Index().SetName("client_visible_to"),
		},
		{
			Keys:    bson.D{{Key: "divisionName", Value: 1}},
			Options: options.Index().SetName("client_division"),
		},
		{
			Keys:    bson.D{{Key: "clientCategory", Value: 1}},
			Options: options.Index().SetName("client_category"),
		},
	}); err != nil {
		return err
	}

	// tasks: taskID unique; checkinTime is authoritative for range filters
	tasks := db.Collection(ColNames.Tasks)
	if err := createIndexes(ctx, tasks, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "taskID", Value: 1}},
			Options: options.Index().SetName("task_task_id").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "checkinTime", Value: 1}},
			Options: options.Index().SetName("task_checkin_time"),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetName("task_date"),
		},
		{
			Keys:    bson.D{{Key: "employeeID", Value: 1}},
			Options: options.Index().SetName("task_employee_id"),
		},
		{
			Keys:    bson.D{{Key: "internalEmpID", Value: 1}},
			Options: options.Index().SetName("task_internal_emp_id"),
		},
	}); err != nil {
		return err
	}

	// eod_summaries: one per (employeeID, date)
	eod := db.Collection(ColNames.EodSummaries)
	if err := createIndexes(ctx, eod, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "employeeID", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().SetName("eod_employee_date").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetName("eod_date"),
		},
	}); err != nil {
		return err
	}

	// attendance: one per (userID, date)
	attendance := db.Collection(ColNames.Attendance)
	if err := createIndexes(ctx, attendance, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userID", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().SetName("attendance_user_date").SetUnique(true),
		},
	}); err != nil {
		return err
	}

	// users: login identity
	users := db.Collection(ColNames.Users)
	if err := createIndexes(ctx, users, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("user_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "empID", Value: 1}},
			Options: options.Index().SetName("user_emp_id").SetSparse(true),
		},
	}); err != nil {
		return err
	}

	return nil
}

func createIndexes(ctx context.Context, col *mongo.Collection, models []mongo.IndexModel) error {
	for _, model := range models {
		if _, err := col.Indexes().CreateOne(ctx, model); err != nil && !isIndexExistsError(err) {
			return err
		}
	}
	return nil
}

// isIndexExistsError reports whether err is the "index already exists with
// a different name/options" class of error, which is ignorable on startup.
func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "IndexOptionsConflict") ||
		strings.Contains(msg, "IndexKeySpecsConflict") ||
		strings.Contains(msg, "already exists")
}
