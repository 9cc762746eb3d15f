// Package dto defines the webhook ingestion payloads and results.
package dto

// ItemResult is the per-item outcome of a webhook batch. Key is the
// record's natural key when the item got far enough to have one.
type ItemResult struct {
	Index  int    `json:"index"`
	Key    string `json:"key,omitempty"`
	Status string `json:"status"` // created | updated | failed
	Error  string `json:"error,omitempty"`
}

// Item statuses.
const (
	StatusCreated = "created"
	StatusUpdated = "updated"
	StatusFailed  = "failed"
)

// BatchResult is the webhook response body. Every item is reported even
// when it failed, so the producer can retry selectively.
type BatchResult struct {
	Processed    int          `json:"processed"`
	SuccessCount int          `json:"success_count"`
	FailureCount int          `json:"failure_count"`
	Details      []ItemResult `json:"details"`
}

// Fold aggregates per-item results into a batch result.
func Fold(results []ItemResult) BatchResult {
	batch := BatchResult{
		Processed: len(results),
		Details:   results,
	}
	for _, r := range results {
		if r.Status == StatusFailed {
			batch.FailureCount++
		} else {
			batch.SuccessCount++
		}
	}
	return batch
}

// AllFailed reports whether the batch had items and none succeeded.
func (b BatchResult) AllFailed() bool {
	return b.Processed > 0 && b.SuccessCount == 0
}

// TaskKeys is the validated projection of a task webhook item. The rest
// of the payload is schema-free.
type TaskKeys struct {
	TaskID string `validate:"required"`
}

// ClientKeys is the validated projection of a client sheet row. Either
// key may be present; at least one must be.
type ClientKeys struct {
	ID         string `validate:"required_without=ClientName"`
	ClientName string `validate:"required_without=ID"`
}
