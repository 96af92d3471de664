package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"

	"scheduler-callback-api/core/config"
	"scheduler-callback-api/core/constants"
	"scheduler-callback-api/core/logger"
)

// TaskQueue hands staged solutions to the downstream calendar-writer worker.
// Enqueue must only be called after the staged object is durable: the enqueue
// itself is a single atomic operation, so the pointer to a solution never
// becomes visible to consumers before the payload it points at exists.
type TaskQueue interface {
	Enqueue(ctx context.Context, taskType string, payload any) error
	Close() error
}

type asynqQueue struct {
	client *asynq.Client
	queue  string
}

func NewAsynqQueue(cfg config.RedisConfig, queueName string) TaskQueue {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &asynqQueue{client: client, queue: queueName}
}

func (q *asynqQueue) Enqueue(ctx context.Context, taskType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("TaskQueue:Enqueue:Marshal:Error:", err)
		return err
	}

	task := asynq.NewTask(taskType, data)
	info, err := q.client.EnqueueContext(ctx, task,
		asynq.Queue(q.queue),
		asynq.MaxRetry(5),
		asynq.Timeout(constants.DefaultTimeout),
	)
	if err != nil {
		logger.Error("TaskQueue:Enqueue:Error", "error", err, "task_type", taskType)
		return err
	}

	logger.Info("TaskQueue:Enqueue:Queued", "task_id", info.ID, "queue", info.Queue, "task_type", taskType)
	return nil
}

func (q *asynqQueue) Close() error {
	return q.client.Close()
}
