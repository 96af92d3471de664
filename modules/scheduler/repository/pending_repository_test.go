package repository

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"scheduler-callback-api/modules/scheduler/entity"
)

// memCache mimics Redis command atomicity: every operation holds the lock
// for its full read-modify-write, so GetDel is first-reader-wins.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (m *memCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = b
	return nil
}

func (m *memCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (m *memCache) GetDel(ctx context.Context, key string, dest any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	delete(m.data, key)
	return true, json.Unmarshal(b, dest)
}

func (m *memCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memCache) Ping(ctx context.Context) error { return nil }

func (m *memCache) Client() *redis.Client { return nil }

func TestClaimConsumesEntry(t *testing.T) {
	store := NewPendingRequestStore(newMemCache())
	ctx := context.Background()

	info := &entity.PendingRequestInfo{FileKey: "h/s.json", UserID: "U1"}
	if err := store.Save(ctx, info); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Claim(ctx, "h/s.json")
	if err != nil || got == nil {
		t.Fatalf("first claim: got=%v err=%v", got, err)
	}
	if got.UserID != "U1" {
		t.Fatalf("claimed UserID = %q", got.UserID)
	}

	got, err = store.Claim(ctx, "h/s.json")
	if err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if got != nil {
		t.Fatal("second claim must observe absence")
	}

	got, err = store.Retrieve(ctx, "h/s.json")
	if err != nil || got != nil {
		t.Fatalf("entry must be gone after claim: got=%v err=%v", got, err)
	}
}

func TestClaimRacingCallersObserveAbsence(t *testing.T) {
	store := NewPendingRequestStore(newMemCache())
	ctx := context.Background()

	if err := store.Save(ctx, &entity.PendingRequestInfo{FileKey: "h/s.json", UserID: "U1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	const callers = 16
	var wg sync.WaitGroup
	results := make([]*entity.PendingRequestInfo, callers)
	errs := make([]error, callers)

	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.Claim(ctx, "h/s.json")
		}(i)
	}
	wg.Wait()

	winners := 0
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d errored: %v", i, errs[i])
		}
		if results[i] != nil {
			winners++
		}
	}
	if winners != 1 {
		t.Fatalf("exactly one racing caller may claim the entry, got %d", winners)
	}
}
