package constants

import "time"

const (
	DefaultTimeout = 10 * time.Second

	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes

	// CallbackTokenHeader carries the shared secret on scheduler callbacks.
	CallbackTokenHeader = "X-Callback-Token"

	// RedisKeyPendingRequest prefixes correlation-store entries keyed by fileKey.
	RedisKeyPendingRequest = "pending_schedule:"

	// PendingRequestTTL bounds how long an unanswered scheduling request is
	// correlatable. A callback arriving later is treated as a benign no-op.
	PendingRequestTTL = 24 * time.Hour

	// SolutionWorkerQueue / SolutionWorkerTask identify the handoff to the
	// downstream calendar-writer worker.
	SolutionWorkerQueue = "post-process-calendar"
	SolutionWorkerTask  = "calendar:solution-ready"

	NotificationTypeSchedulingOutcome = "scheduling_outcome"

	ScopeTokenAccess = "access"
)
