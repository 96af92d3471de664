package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"scheduler-callback-api/core/constants"
	"scheduler-callback-api/core/errors"
	"scheduler-callback-api/core/logger"
	"scheduler-callback-api/core/queue"
	"scheduler-callback-api/core/storage"
	"scheduler-callback-api/modules/optaplan/dto"
)

// StagingResult reports how an admin solution callback was handled.
type StagingResult int

const (
	// StagingAccepted means the merged payload was staged and the worker
	// task enqueued.
	StagingAccepted StagingResult = iota
	// StagingRejectedScore means the solution carried a negative hard score
	// and was dropped without staging.
	StagingRejectedScore
)

var hardScoreRe = regexp.MustCompile(`(-?\d+)hard`)

type StagingService struct {
	objects storage.ObjectStore
	queue   queue.TaskQueue
}

func NewStagingService(objects storage.ObjectStore, q queue.TaskQueue) *StagingService {
	return &StagingService{objects: objects, queue: q}
}

// parseHardScore extracts the hard component from a solver score such as
// "0hard/-5soft". The hard component is read from the segment before the
// first "/". ok is false when the score cannot be parsed.
func parseHardScore(score string) (int, bool) {
	if score == "" {
		return 0, false
	}
	head, _, _ := strings.Cut(score, "/")
	m := hardScoreRe.FindStringSubmatch(head)
	if m == nil {
		return 0, false
	}
	hard, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return hard, true
}

// ProcessSolution stages the merged worker payload and enqueues the
// post-processing task. The initial staged object is deleted as soon as it
// is read; an infeasible solution (negative hard score) is dropped and its
// initial object deleted best-effort.
func (s *StagingService) ProcessSolution(ctx context.Context, solution *dto.OptaPlanSolution) (StagingResult, *errors.AppError) {
	hard, ok := parseHardScore(solution.Score)
	if !ok {
		logger.Warn("StagingService:ProcessSolution:UnparseableScore", "score", solution.Score)
	} else if hard < 0 {
		logger.Info("StagingService:ProcessSolution:NegativeHardScore",
			"score", solution.Score,
			"fileKey", solution.FileKey,
		)
		if solution.FileKey != "" {
			if err := s.objects.DeleteObject(ctx, solution.FileKey); err != nil {
				logger.Warn("StagingService:ProcessSolution:DeleteRejected:", err)
			}
		}
		return StagingRejectedScore, nil
	}

	if solution.HostID == "" {
		return 0, errors.NewAppError(errors.ErrInvalidInput, "hostId from solver solution is not provided", nil)
	}
	if solution.FileKey == "" {
		return 0, errors.NewAppError(errors.ErrInvalidInput, "no fileKey found in solver solution", nil)
	}

	raw, err := s.objects.GetObject(ctx, solution.FileKey)
	if err != nil {
		logger.Error("StagingService:ProcessSolution:GetObject:Error:", err)
		return 0, errors.NewAppError(errors.ErrInternalServer, "failed to read initial staged payload", err)
	}

	var initial dto.InitialStagedPayload
	if err := json.Unmarshal(raw, &initial); err != nil {
		return 0, errors.NewAppError(errors.ErrInvalidRequestData, "initial staged payload is not valid JSON", err)
	}

	// The initial object is single-use and is deleted before the worker
	// payload is staged. A failure between the two loses the round.
	if err := s.objects.DeleteObject(ctx, solution.FileKey); err != nil {
		logger.Error("StagingService:ProcessSolution:DeleteObject:Error:", err)
		return 0, errors.NewAppError(errors.ErrInternalServer, "failed to delete initial staged payload", err)
	}

	if initial.HostID == "" {
		return 0, errors.NewAppError(errors.ErrInvalidRequestData, "hostId is required in the initial staged payload", nil)
	}
	if initial.SingletonID == "" {
		return 0, errors.NewAppError(errors.ErrInvalidRequestData, "singletonId is required in the initial staged payload", nil)
	}

	merged := dto.WorkerS3Payload{
		InitialStagedPayload: initial,
		TimeslotList:         solution.TimeslotList,
		UserList:             solution.UserList,
		EventPartList:        solution.EventPartList,
		Score:                solution.Score,
		FileKey:              solution.FileKey,
	}
	merged.HostID = solution.HostID

	body, err := json.Marshal(merged)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrInternalServer, "failed to serialize worker payload", err)
	}

	workerKey := fmt.Sprintf("%s/%s_processed.json", solution.HostID, initial.SingletonID)
	if err := s.objects.PutObject(ctx, workerKey, body, "application/json"); err != nil {
		logger.Error("StagingService:ProcessSolution:PutObject:Error:", err)
		return 0, errors.NewAppError(errors.ErrInternalServer, "failed to stage worker payload", err)
	}

	// Enqueue only after the object write succeeded so the worker never
	// dequeues a key that does not exist yet.
	if err := s.queue.Enqueue(ctx, constants.SolutionWorkerTask, dto.WorkerQueueMessage{FileKey: workerKey}); err != nil {
		logger.Error("StagingService:ProcessSolution:Enqueue:Error:", err)
		return 0, errors.NewAppError(errors.ErrInternalServer, "failed to enqueue worker task", err)
	}

	return StagingAccepted, nil
}
