package repository

import (
	"context"

	"scheduler-callback-api/core/cache"
	"scheduler-callback-api/core/constants"
	"scheduler-callback-api/core/logger"
	"scheduler-callback-api/modules/scheduler/entity"
)

// PendingRequestStore tracks in-flight scheduling rounds keyed by fileKey.
// Claim atomically retrieves and retires the entry (Redis GETDEL), so of any
// number of racing duplicate callbacks exactly one observes the entry and
// every other caller observes absence. Retrieve is a non-consuming read.
type PendingRequestStore interface {
	Save(ctx context.Context, info *entity.PendingRequestInfo) error
	Retrieve(ctx context.Context, fileKey string) (*entity.PendingRequestInfo, error)
	Claim(ctx context.Context, fileKey string) (*entity.PendingRequestInfo, error)
}

type redisPendingStore struct {
	cache cache.Cache
}

func NewPendingRequestStore(c cache.Cache) PendingRequestStore {
	return &redisPendingStore{cache: c}
}

func pendingKey(fileKey string) string {
	return constants.RedisKeyPendingRequest + fileKey
}

func (r *redisPendingStore) Save(ctx context.Context, info *entity.PendingRequestInfo) error {
	err := r.cache.Set(ctx, pendingKey(info.FileKey), info, constants.PendingRequestTTL)
	if err != nil {
		logger.Error("PendingRequestStore:Save:Error:", err)
		return err
	}
	return nil
}

func (r *redisPendingStore) Retrieve(ctx context.Context, fileKey string) (*entity.PendingRequestInfo, error) {
	var info entity.PendingRequestInfo
	found, err := r.cache.Get(ctx, pendingKey(fileKey), &info)
	if err != nil {
		logger.Error("PendingRequestStore:Retrieve:Error:", err)
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &info, nil
}

func (r *redisPendingStore) Claim(ctx context.Context, fileKey string) (*entity.PendingRequestInfo, error) {
	var info entity.PendingRequestInfo
	found, err := r.cache.GetDel(ctx, pendingKey(fileKey), &info)
	if err != nil {
		logger.Error("PendingRequestStore:Claim:Error:", err)
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &info, nil
}
