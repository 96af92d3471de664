package dto

import "encoding/json"

// SubmitScheduleRequest opens a scheduling round: the solver input payload is
// staged to object storage and a pending entry is recorded so the async
// callback can be correlated back to the submitting user.
type SubmitScheduleRequest struct {
	HostID        string          `json:"hostId"`
	SingletonID   string          `json:"singletonId,omitempty"`
	OriginalQuery string          `json:"originalQuery,omitempty"`
	SolverPayload json.RawMessage `json:"solverPayload,omitempty"`
}

type SubmitScheduleResponse struct {
	FileKey     string `json:"fileKey"`
	SingletonID string `json:"singletonId"`
}
