package basemodels

// SyncStats is the outcome summary of one sync run for one entity.
// Item-level failures only increment Errors; they never abort the batch.
type SyncStats struct {
	TotalFetched int `json:"total_fetched"`
	Created      int `json:"created"`
	Updated      int `json:"updated"`
	Errors       int `json:"errors"`
}
