// Package basemodels holds shared model helpers for the API layer.
package basemodels

// PaginateResult is the generic paginated query result.
type PaginateResult[T any] struct {
	Data  []T   `json:"data"`  // Page items
	Total int64 `json:"total"` // Total matching documents
	Limit int64 `json:"limit"` // Page size
	Skip  int64 `json:"skip"`  // Offset
}
