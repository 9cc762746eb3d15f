// Package basesvc provides the generic MongoDB service embedded by every
// entity service.
package basesvc

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "fieldpulse/internal/api/base/models"
	"fieldpulse/internal/common"
	"fieldpulse/internal/utility"
)

// UpdateData is the partial-update document passed to update/upsert
// operations.
type UpdateData struct {
	Set         map[string]interface{} `bson:"$set,omitempty"`         // Fields to set
	SetOnInsert map[string]interface{} `bson:"$setOnInsert,omitempty"` // Fields set only when the upsert inserts
	Unset       map[string]interface{} `bson:"$unset,omitempty"`       // Fields to remove
}

// ToUpdateData converts arbitrary data into an UpdateData. Maps and
// structs without operators are wrapped in $set.
func ToUpdateData(data interface{}) (*UpdateData, error) {
	if update, ok := data.(*UpdateData); ok {
		return update, nil
	}
	if update, ok := data.(UpdateData); ok {
		return &update, nil
	}

	dataMap, err := utility.ToMap(data)
	if err != nil {
		return nil, err
	}

	if _, hasSet := dataMap["$set"]; hasSet {
		update := &UpdateData{}
		if setVal, ok := dataMap["$set"].(map[string]interface{}); ok {
			update.Set = setVal
		}
		if setOnInsertVal, ok := dataMap["$setOnInsert"].(map[string]interface{}); ok {
			update.SetOnInsert = setOnInsertVal
		}
		if unsetVal, ok := dataMap["$unset"].(map[string]interface{}); ok {
			update.Unset = unsetVal
		}
		return update, nil
	}

	return &UpdateData{Set: dataMap}, nil
}

// BaseServiceMongo is the interface of the generic MongoDB service.
type BaseServiceMongo[Model any] interface {
	InsertOne(ctx context.Context, data Model) (Model, error)

	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (Model, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (Model, error)
	FindWithPagination(ctx context.Context, filter interface{}, limit, skip int64, opts *options.FindOptions) (*basemodels.PaginateResult[Model], error)

	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (Model, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (Model, error)

	DeleteOne(ctx context.Context, filter interface{}) error
	DeleteById(ctx context.Context, id primitive.ObjectID) error

	// Upsert writes data under the natural-key filter. createdAt is set
	// only when the upsert inserts; updatedAt is refreshed on every call.
	// The created flag reports insert vs update for sync statistics.
	Upsert(ctx context.Context, filter interface{}, data interface{}) (result Model, created bool, err error)

	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// BaseServiceMongoImpl implements BaseServiceMongo for one collection.
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection
}

// NewBaseServiceMongo creates the generic service for a collection.
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection: collection,
	}
}

// Collection exposes the underlying collection for aggregation pipelines.
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// InsertOne creates a document with audit timestamps.
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	dataMap, err := utility.ToMap(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	now := time.Now().UnixMilli()
	dataMap["createdAt"] = now
	dataMap["updatedAt"] = now

	result, err := s.collection.InsertOne(ctx, dataMap)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	var created T
	if err := s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return zero, common.ConvertMongoError(err)
	}

	return created, nil
}

// FindOne returns the first document matching the filter.
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T
	var result T

	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.FindOne()
	}

	findResult := s.collection.FindOne(ctx, filter, opts)
	if err := findResult.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	if err := findResult.Decode(&result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.NewError(
			common.ErrCodeValidationFormat,
			"Failed to decode document",
			common.StatusBadRequest,
			err,
		)
	}

	return result, nil
}

// Find returns every document matching the filter.
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.Find()
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return results, nil
}

// FindOneById returns the document with the given surrogate id.
func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// FindWithPagination returns one page of results plus the total count.
func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, limit, skip int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.Find()
	}
	if limit <= 0 {
		limit = 50
	}
	if skip < 0 {
		skip = 0
	}
	opts.SetLimit(limit).SetSkip(skip)

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	items, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	return &basemodels.PaginateResult[T]{
		Data:  items,
		Total: total,
		Limit: limit,
		Skip:  skip,
	}, nil
}

// UpdateOne applies a partial update and returns the updated document.
func (s *BaseServiceMongoImpl[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (T, error) {
	var zero T

	updateData, err := ToUpdateData(update)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	if updateData.Set == nil {
		updateData.Set = make(map[string]interface{})
	}
	updateData.Set["updatedAt"] = time.Now().UnixMilli()

	findOpts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if opts != nil && opts.Upsert != nil {
		findOpts.SetUpsert(*opts.Upsert)
	}

	var updated T
	if err := s.collection.FindOneAndUpdate(ctx, filter, updateData, findOpts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	return updated, nil
}

// UpdateById applies a partial update by surrogate id.
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (T, error) {
	return s.UpdateOne(ctx, bson.M{"_id": id}, data, nil)
}

// DeleteOne removes the first document matching the filter.
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// DeleteById removes a document by surrogate id.
func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": id})
}

// stampUpsertTimes routes the audit timestamps for an upsert: updatedAt
// refreshes on every write, createdAt rides $setOnInsert so it survives
// updates untouched.
func stampUpsertTimes(update *UpdateData, now int64) {
	if update.Set == nil {
		update.Set = make(map[string]interface{})
	}
	delete(update.Set, "createdAt")
	update.Set["updatedAt"] = now
	if update.SetOnInsert == nil {
		update.SetOnInsert = make(map[string]interface{})
	}
	update.SetOnInsert["createdAt"] = now
}

// Upsert writes data under the natural-key filter. The created flag is
// true when a new document was inserted.
func (s *BaseServiceMongoImpl[T]) Upsert(ctx context.Context, filter interface{}, data interface{}) (T, bool, error) {
	var zero T

	logrus.WithFields(logrus.Fields{
		"collection": s.collection.Name(),
		"filter":     filter,
	}).Debug("Upsert: starting")

	updateData, err := ToUpdateData(data)
	if err != nil {
		logrus.WithError(err).Error("Upsert: could not convert data to UpdateData")
		return zero, false, common.ErrInvalidFormat
	}
	stampUpsertTimes(updateData, time.Now().UnixMilli())

	// UpsertedCount comes from the write itself, so two racing upserts on
	// the same key cannot both report created.
	result, err := s.collection.UpdateOne(ctx, filter, updateData, options.Update().SetUpsert(true))
	if err != nil {
		return zero, false, common.ConvertMongoError(err)
	}
	created := result.UpsertedCount > 0

	readFilter := filter
	if created {
		readFilter = bson.M{"_id": result.UpsertedID}
	}

	var upserted T
	if err := s.collection.FindOne(ctx, readFilter).Decode(&upserted); err != nil {
		return zero, false, common.ConvertMongoError(err)
	}

	return upserted, created, nil
}

// CountDocuments counts documents matching the filter.
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// Distinct returns the distinct values of a field.
func (s *BaseServiceMongoImpl[T]) Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error) {
	if filter == nil {
		filter = bson.D{}
	}
	values, err := s.collection.Distinct(ctx, fieldName, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return values, nil
}

// DocumentExists reports whether any document matches the filter.
func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	err := s.collection.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, common.ConvertMongoError(err)
	}
	return true, nil
}
