package domain

import (
	"context"
	"time"
)

// TransitionEvent describes a successfully applied transition.
type TransitionEvent struct {
	Timestamp   time.Time `json:"timestamp"`
	UserID      string    `json:"user_id"`
	Event       EventType `json:"event"`
	From        Phase     `json:"from"`
	To          Phase     `json:"to"`
	ChecklistID string    `json:"checklist_id,omitempty"`
}

// RejectEvent describes an event the engine refused without mutating state.
type RejectEvent struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	Event     EventType `json:"event"`
	Kind      ErrorKind `json:"kind"`
}

// LifecycleHooks defines callbacks for engine observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnTransition func(context.Context, *TransitionEvent)
	OnReject     func(context.Context, *RejectEvent)
}
