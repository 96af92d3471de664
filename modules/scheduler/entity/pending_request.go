package entity

import "time"

// PendingRequestInfo correlates a solver callback to the user who started the
// scheduling round. It is keyed by fileKey in Redis and serialized as JSON.
type PendingRequestInfo struct {
	FileKey       string    `json:"fileKey"`
	UserID        string    `json:"userId"`
	SingletonID   string    `json:"singletonId,omitempty"`
	OriginalQuery string    `json:"originalQuery,omitempty"`
	SubmittedAt   time.Time `json:"submittedAt"`
}
