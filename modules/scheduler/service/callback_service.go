package service

import (
	"context"
	"fmt"
	"strings"

	"scheduler-callback-api/core/constants"
	"scheduler-callback-api/core/errors"
	"scheduler-callback-api/core/logger"
	"scheduler-callback-api/modules/notification/dto"
	schedulerdto "scheduler-callback-api/modules/scheduler/dto"
	"scheduler-callback-api/modules/scheduler/entity"
	"scheduler-callback-api/modules/scheduler/repository"
)

// NotificationRecorder persists the outcome message for in-app retrieval.
// Persistence failures never fail the callback.
type NotificationRecorder interface {
	Create(ctx context.Context, req *dto.CreateNotificationRequest) error
}

type CallbackService struct {
	store         repository.PendingRequestStore
	notifier      Notifier
	notifications NotificationRecorder
}

func NewCallbackService(store repository.PendingRequestStore, notifier Notifier, notifications NotificationRecorder) *CallbackService {
	return &CallbackService{
		store:         store,
		notifier:      notifier,
		notifications: notifications,
	}
}

// ProcessSolution correlates a solver solution with its pending request,
// notifies the user, and retires the pending entry. matched is false when no
// pending entry exists for the fileKey, which callers treat as an
// acknowledged no-op. The claim is atomic, so concurrent duplicate
// deliveries resolve to exactly one dispatch; a failed claim leaves the
// entry in place for redelivery. Everything after the claim either succeeds
// or is swallowed as a warning, so a claimed entry is never stranded.
func (s *CallbackService) ProcessSolution(ctx context.Context, solution *schedulerdto.TimeTableSolutionDto) (matched bool, err error) {
	info, err := s.store.Claim(ctx, solution.FileKey)
	if err != nil {
		return false, errors.NewAppError(errors.ErrInternalServer, "failed to claim pending request", err)
	}
	if info == nil {
		logger.Info("CallbackService:ProcessSolution:NoPendingRequest", "fileKey", solution.FileKey)
		return false, nil
	}

	message := ComposeNotification(info, solution)

	if sendErr := s.notifier.Send(ctx, info.UserID, message); sendErr != nil {
		// A failed dispatch must not fail the callback.
		logger.Warn("CallbackService:ProcessSolution:NotifyFailed",
			"fileKey", solution.FileKey,
			"userId", info.UserID,
			"error", sendErr.Error(),
		)
	}

	if s.notifications != nil {
		createErr := s.notifications.Create(ctx, &dto.CreateNotificationRequest{
			UserID:  info.UserID,
			Title:   "Scheduling update",
			Message: message,
			Type:    constants.NotificationTypeSchedulingOutcome,
			Data: map[string]interface{}{
				"fileKey":     solution.FileKey,
				"singletonId": info.SingletonID,
				"score":       solution.Score,
			},
		})
		if createErr != nil {
			logger.Warn("CallbackService:ProcessSolution:PersistFailed",
				"fileKey", solution.FileKey,
				"userId", info.UserID,
				"error", createErr.Error(),
			)
		}
	}

	return true, nil
}

// ComposeNotification renders the human-readable outcome summary for a
// finished scheduling round.
func ComposeNotification(info *entity.PendingRequestInfo, solution *schedulerdto.TimeTableSolutionDto) string {
	var b strings.Builder

	b.WriteString("Update for your scheduling request")
	if info.OriginalQuery != "" {
		b.WriteString(" (\"" + info.OriginalQuery + "\")")
	}
	b.WriteString(":\n")

	var scheduled, unscheduled []string
	for _, part := range solution.EventPartList {
		label := eventPartLabel(part)
		if part.Timeslot != nil {
			scheduled = append(scheduled, fmt.Sprintf("- '%s' scheduled %s", label, timeslotDescription(part.Timeslot)))
		} else {
			unscheduled = append(unscheduled, fmt.Sprintf("- '%s' could not be scheduled.", label))
		}
	}

	if len(scheduled) > 0 {
		b.WriteString("\nSuccessfully scheduled items:\n")
		b.WriteString(strings.Join(scheduled, "\n"))
		b.WriteString("\n")
	}
	if len(unscheduled) > 0 {
		b.WriteString("\nItems that could not be scheduled:\n")
		b.WriteString(strings.Join(unscheduled, "\n"))
		b.WriteString("\n")
	}

	if len(scheduled) == 0 && len(unscheduled) == 0 {
		if len(solution.EventPartList) > 0 {
			b.WriteString("The scheduling process completed, but detailed outcomes for some items were not clear.\n")
		} else {
			b.WriteString("The scheduling process completed, but no events were processed.\n")
		}
	}

	if solution.Score != "" {
		fmt.Fprintf(&b, "\nOverall schedule score: %s", solution.Score)
	}

	return strings.TrimSpace(b.String())
}

func eventPartLabel(part schedulerdto.EventPartDto) string {
	if part.Event != nil {
		if part.Event.Summary != "" {
			return part.Event.Summary
		}
		if part.Event.Title != "" {
			return part.Event.Title
		}
		if part.Event.ID != "" {
			return part.Event.ID
		}
	}
	if part.ID != "" {
		return part.ID
	}
	return "Unnamed Event Part"
}

func timeslotDescription(slot *schedulerdto.TimeslotDto) string {
	if slot.StartTime == "" || slot.EndTime == "" {
		return "at an unspecified time"
	}

	// "on" belongs to the date; a bare day of week is appended without it.
	desc := fmt.Sprintf("from %s to %s", slot.StartTime, slot.EndTime)
	switch {
	case slot.MonthDay != "" && slot.DayOfWeek != "":
		desc += fmt.Sprintf(" on %s (%s)", slot.MonthDay, slot.DayOfWeek)
	case slot.MonthDay != "":
		desc += fmt.Sprintf(" on %s", slot.MonthDay)
	case slot.DayOfWeek != "":
		desc += " " + slot.DayOfWeek
	}
	return desc
}
