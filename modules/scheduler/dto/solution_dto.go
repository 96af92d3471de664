package dto

// Solution DTOs mirror the solver's callback payload. Field names follow the
// solver's JSON wire format, so they stay camelCase.

type TimeslotDto struct {
	ID        string `json:"id,omitempty"`
	HostID    string `json:"hostId,omitempty"`
	DayOfWeek string `json:"dayOfWeek,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	MonthDay  string `json:"monthDay,omitempty"`
	Date      string `json:"date,omitempty"`
}

type UserDto struct {
	ID       string `json:"id,omitempty"`
	HostID   string `json:"hostId,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

type EventDto struct {
	ID      string `json:"id,omitempty"`
	UserID  string `json:"userId,omitempty"`
	HostID  string `json:"hostId,omitempty"`
	Summary string `json:"summary,omitempty"`
	Title   string `json:"title,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

type EventPartDto struct {
	ID       string       `json:"id,omitempty"`
	GroupID  string       `json:"groupId,omitempty"`
	EventID  string       `json:"eventId,omitempty"`
	Part     int          `json:"part,omitempty"`
	LastPart int          `json:"lastPart,omitempty"`
	UserID   string       `json:"userId,omitempty"`
	HostID   string       `json:"hostId,omitempty"`
	Event    *EventDto    `json:"event,omitempty"`
	Timeslot *TimeslotDto `json:"timeslot,omitempty"`
	User     *UserDto     `json:"user,omitempty"`
}

// TimeTableSolutionDto is the body the solver posts back when a scheduling
// run finishes. EventPartList must be present even when empty; a nil slice
// after decoding means the field was absent.
type TimeTableSolutionDto struct {
	FileKey       string         `json:"fileKey"`
	HostID        string         `json:"hostId"`
	EventPartList []EventPartDto `json:"eventPartList"`
	TimeslotList  []TimeslotDto  `json:"timeslotList,omitempty"`
	UserList      []UserDto      `json:"userList,omitempty"`
	Score         string         `json:"score,omitempty"`
}

type CallbackAck struct {
	Message string `json:"message"`
}

type CallbackError struct {
	Error string `json:"error"`
}
