package service

import (
	"context"
	"fmt"
	"time"

	"scheduler-callback-api/core/errors"
	"scheduler-callback-api/core/logger"
	"scheduler-callback-api/core/storage"
	"scheduler-callback-api/core/utils"
	"scheduler-callback-api/modules/scheduler/dto"
	"scheduler-callback-api/modules/scheduler/entity"
	"scheduler-callback-api/modules/scheduler/repository"
)

type ScheduleService struct {
	store   repository.PendingRequestStore
	objects storage.ObjectStore
}

func NewScheduleService(store repository.PendingRequestStore, objects storage.ObjectStore) *ScheduleService {
	return &ScheduleService{store: store, objects: objects}
}

// Submit stages the solver input payload and records the pending request so
// the asynchronous callback can be matched back to the caller. The fileKey
// doubles as both the object key and the correlation key.
func (s *ScheduleService) Submit(ctx context.Context, userID string, req *dto.SubmitScheduleRequest) (*dto.SubmitScheduleResponse, error) {
	if req.HostID == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "hostId is required", nil)
	}

	singletonID := req.SingletonID
	if singletonID == "" {
		singletonID = utils.GenerateID()
	}

	fileKey := fmt.Sprintf("%s/%s.json", req.HostID, singletonID)

	payload := req.SolverPayload
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	if err := s.objects.PutObject(ctx, fileKey, payload, "application/json"); err != nil {
		logger.Error("ScheduleService:Submit:PutObject:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to stage solver payload", err)
	}

	info := &entity.PendingRequestInfo{
		FileKey:       fileKey,
		UserID:        userID,
		SingletonID:   singletonID,
		OriginalQuery: req.OriginalQuery,
		SubmittedAt:   time.Now().UTC(),
	}
	if err := s.store.Save(ctx, info); err != nil {
		logger.Error("ScheduleService:Submit:Save:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to record pending request", err)
	}

	return &dto.SubmitScheduleResponse{FileKey: fileKey, SingletonID: singletonID}, nil
}
