package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"scheduler-callback-api/modules/optaplan/dto"
)

type fakeObjectStore struct {
	objects map[string][]byte
	getErr  error
	putErr  error
	deleted []string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: map[string][]byte{}}
}

func (f *fakeObjectStore) GetObject(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	body, ok := f.objects[key]
	if !ok {
		return nil, errors.New("no such key: " + key)
	}
	return body, nil
}

func (f *fakeObjectStore) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[key] = body
	return nil
}

func (f *fakeObjectStore) DeleteObject(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	delete(f.objects, key)
	return nil
}

type fakeTaskQueue struct {
	tasks    []string
	payloads []any
	err      error
}

func (f *fakeTaskQueue) Enqueue(ctx context.Context, taskType string, payload any) error {
	if f.err != nil {
		return f.err
	}
	f.tasks = append(f.tasks, taskType)
	f.payloads = append(f.payloads, payload)
	return nil
}

func (f *fakeTaskQueue) Close() error { return nil }

func stageInitial(store *fakeObjectStore, key string) {
	initial := dto.InitialStagedPayload{
		SingletonID:  "sing-1",
		HostID:       "staged-host",
		HostTimezone: "America/Los_Angeles",
		AllEvents:    json.RawMessage(`[{"id":"e1"}]`),
	}
	body, _ := json.Marshal(initial)
	store.objects[key] = body
}

func TestParseHardScore(t *testing.T) {
	cases := []struct {
		score    string
		wantHard int
		wantOK   bool
	}{
		{"0hard/-5soft", 0, true},
		{"-1hard/0soft", -1, true},
		{"-250hard/-3soft", -250, true},
		{"3hard/10soft", 3, true},
		{"", 0, false},
		{"garbage", 0, false},
		{"soft only/-5soft", 0, false},
	}
	for _, tc := range cases {
		hard, ok := parseHardScore(tc.score)
		if ok != tc.wantOK || hard != tc.wantHard {
			t.Errorf("parseHardScore(%q) = (%d, %v), want (%d, %v)", tc.score, hard, ok, tc.wantHard, tc.wantOK)
		}
	}
}

func TestProcessSolutionNegativeHardScore(t *testing.T) {
	store := newFakeObjectStore()
	stageInitial(store, "host/sing-1.json")
	q := &fakeTaskQueue{}
	svc := NewStagingService(store, q)

	result, appErr := svc.ProcessSolution(context.Background(), &dto.OptaPlanSolution{
		FileKey: "host/sing-1.json",
		HostID:  "host",
		Score:   "-1hard/0soft",
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if result != StagingRejectedScore {
		t.Fatalf("result = %v, want StagingRejectedScore", result)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "host/sing-1.json" {
		t.Fatalf("initial object must be deleted, got %v", store.deleted)
	}
	if len(q.tasks) != 0 {
		t.Fatal("nothing may be enqueued for a rejected solution")
	}
	if len(store.objects) != 0 {
		t.Fatal("no worker payload may be staged for a rejected solution")
	}
}

func TestProcessSolutionUnparseableScoreProceeds(t *testing.T) {
	store := newFakeObjectStore()
	stageInitial(store, "host/sing-1.json")
	q := &fakeTaskQueue{}
	svc := NewStagingService(store, q)

	result, appErr := svc.ProcessSolution(context.Background(), &dto.OptaPlanSolution{
		FileKey: "host/sing-1.json",
		HostID:  "solver-host",
		Score:   "not-a-score",
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if result != StagingAccepted {
		t.Fatalf("result = %v, want StagingAccepted", result)
	}
	if len(q.tasks) != 1 {
		t.Fatalf("expected one enqueued task, got %d", len(q.tasks))
	}
}

func TestProcessSolutionValidation(t *testing.T) {
	svc := NewStagingService(newFakeObjectStore(), &fakeTaskQueue{})

	_, appErr := svc.ProcessSolution(context.Background(), &dto.OptaPlanSolution{
		FileKey: "k", Score: "0hard/0soft",
	})
	if appErr == nil || appErr.Message != "hostId from solver solution is not provided" {
		t.Fatalf("missing hostId: got %v", appErr)
	}

	_, appErr = svc.ProcessSolution(context.Background(), &dto.OptaPlanSolution{
		HostID: "h", Score: "0hard/0soft",
	})
	if appErr == nil || appErr.Message != "no fileKey found in solver solution" {
		t.Fatalf("missing fileKey: got %v", appErr)
	}
}

func TestProcessSolutionInitialPayloadValidation(t *testing.T) {
	cases := []struct {
		name    string
		initial dto.InitialStagedPayload
		wantMsg string
	}{
		{"missing hostId", dto.InitialStagedPayload{SingletonID: "s"}, "hostId is required in the initial staged payload"},
		{"missing singletonId", dto.InitialStagedPayload{HostID: "h"}, "singletonId is required in the initial staged payload"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeObjectStore()
			body, _ := json.Marshal(tc.initial)
			store.objects["k"] = body
			svc := NewStagingService(store, &fakeTaskQueue{})

			_, appErr := svc.ProcessSolution(context.Background(), &dto.OptaPlanSolution{
				FileKey: "k", HostID: "h", Score: "0hard/0soft",
			})
			if appErr == nil || appErr.Message != tc.wantMsg {
				t.Fatalf("got %v, want message %q", appErr, tc.wantMsg)
			}
		})
	}
}

func TestProcessSolutionMergeAndHandoff(t *testing.T) {
	store := newFakeObjectStore()
	stageInitial(store, "solver-host/sing-1.json")
	q := &fakeTaskQueue{}
	svc := NewStagingService(store, q)

	result, appErr := svc.ProcessSolution(context.Background(), &dto.OptaPlanSolution{
		FileKey:       "solver-host/sing-1.json",
		HostID:        "solver-host",
		Score:         "0hard/-7soft",
		EventPartList: json.RawMessage(`[{"id":"p1"}]`),
		UserList:      json.RawMessage(`[{"id":"u1"}]`),
		TimeslotList:  json.RawMessage(`[{"id":"t1"}]`),
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if result != StagingAccepted {
		t.Fatalf("result = %v, want StagingAccepted", result)
	}

	// Initial object deleted, worker payload staged under the derived key.
	workerKey := "solver-host/sing-1_processed.json"
	body, ok := store.objects[workerKey]
	if !ok {
		t.Fatalf("worker payload not staged at %q; objects: %v", workerKey, store.objects)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "solver-host/sing-1.json" {
		t.Fatalf("initial object not deleted, got %v", store.deleted)
	}

	var merged dto.WorkerS3Payload
	if err := json.Unmarshal(body, &merged); err != nil {
		t.Fatalf("worker payload is not valid JSON: %v", err)
	}
	// Solver's identity wins over the staged payload's.
	if merged.HostID != "solver-host" {
		t.Fatalf("merged hostId = %q, want solver's", merged.HostID)
	}
	if merged.FileKey != "solver-host/sing-1.json" {
		t.Fatalf("merged fileKey = %q, want solver's", merged.FileKey)
	}
	// Staged context survives.
	if merged.SingletonID != "sing-1" || merged.HostTimezone != "America/Los_Angeles" {
		t.Fatalf("staged context lost: %+v", merged)
	}
	if string(merged.EventPartList) != `[{"id":"p1"}]` {
		t.Fatalf("eventPartList not carried: %s", merged.EventPartList)
	}
	if merged.Score != "0hard/-7soft" {
		t.Fatalf("score not carried: %q", merged.Score)
	}

	if len(q.tasks) != 1 {
		t.Fatalf("expected one enqueued task, got %d", len(q.tasks))
	}
	msg, ok := q.payloads[0].(dto.WorkerQueueMessage)
	if !ok {
		t.Fatalf("payload type %T", q.payloads[0])
	}
	if msg.FileKey != workerKey {
		t.Fatalf("queue message fileKey = %q, want %q", msg.FileKey, workerKey)
	}
}

func TestProcessSolutionEnqueueAfterWrite(t *testing.T) {
	store := newFakeObjectStore()
	stageInitial(store, "h/s.json")
	q := &fakeTaskQueue{err: errors.New("broker down")}
	svc := NewStagingService(store, q)

	_, appErr := svc.ProcessSolution(context.Background(), &dto.OptaPlanSolution{
		FileKey: "h/s.json", HostID: "h", Score: "0hard/0soft",
	})
	if appErr == nil {
		t.Fatal("expected error when enqueue fails")
	}
	// The worker payload was written before the enqueue was attempted, so
	// the object is still there for a redelivery or manual requeue.
	if _, ok := store.objects["h/sing-1_processed.json"]; !ok {
		t.Fatalf("worker payload missing after failed enqueue; objects: %v", store.objects)
	}
}
