package dto

import "encoding/json"

// OptaPlanSolution is the admin-side solution callback. Only score, fileKey
// and hostId are interpreted; the list fields are carried through untouched
// into the worker payload.
type OptaPlanSolution struct {
	TimeslotList  json.RawMessage `json:"timeslotList,omitempty"`
	UserList      json.RawMessage `json:"userList,omitempty"`
	EventPartList json.RawMessage `json:"eventPartList,omitempty"`
	Score         string          `json:"score,omitempty"`
	FileKey       string          `json:"fileKey"`
	HostID        string          `json:"hostId"`
}

// InitialStagedPayload is the object staged at submit time under the
// solution's fileKey. Everything besides singletonId and hostId is opaque
// context forwarded to the post-processing worker.
type InitialStagedPayload struct {
	SingletonID           string          `json:"singletonId"`
	HostID                string          `json:"hostId"`
	HostTimezone          string          `json:"hostTimezone,omitempty"`
	AllEvents             json.RawMessage `json:"allEvents,omitempty"`
	NewHostBufferTimes    json.RawMessage `json:"newHostBufferTimes,omitempty"`
	NewHostReminders      json.RawMessage `json:"newHostReminders,omitempty"`
	Breaks                json.RawMessage `json:"breaks,omitempty"`
	OldEvents             json.RawMessage `json:"oldEvents,omitempty"`
	OldAttendeeEvents     json.RawMessage `json:"oldAttendeeEvents,omitempty"`
	IsReplan              bool            `json:"isReplan,omitempty"`
	OriginalGoogleEventID string          `json:"originalGoogleEventId,omitempty"`
	OriginalCalendarID    string          `json:"originalCalendarId,omitempty"`
}

// WorkerS3Payload merges the initial staged context with the solver's
// solution. The solver's fileKey and hostId win over the staged values.
type WorkerS3Payload struct {
	InitialStagedPayload
	TimeslotList  json.RawMessage `json:"timeslotList,omitempty"`
	UserList      json.RawMessage `json:"userList,omitempty"`
	EventPartList json.RawMessage `json:"eventPartList,omitempty"`
	Score         string          `json:"score,omitempty"`
	FileKey       string          `json:"fileKey"`
}

// WorkerQueueMessage tells the post-processing worker which staged object to
// pick up.
type WorkerQueueMessage struct {
	FileKey string `json:"fileKey"`
}

type StagingAck struct {
	Message string `json:"message"`
}
