package domain

import "time"

// InteractionType classifies a user's response to a recommendation set.
type InteractionType string

const (
	InteractionImplement InteractionType = "IMPLEMENT"
	InteractionDismiss   InteractionType = "DISMISS"
	InteractionFeedback  InteractionType = "FEEDBACK"
)

// Valid reports whether the type is one of the known values.
func (t InteractionType) Valid() bool {
	switch t {
	case InteractionImplement, InteractionDismiss, InteractionFeedback:
		return true
	}
	return false
}

// UserInteraction links a user to a recommendation set. Interactions
// are append-only history: dismissing or implementing never deletes or
// mutates the set, and repeated interactions for the same set are all
// recorded. Consumers interpret the latest state themselves.
type UserInteraction struct {
	ID        int64
	SetID     int64
	UserID    string
	Type      InteractionType
	Feedback  *string
	CreatedAt time.Time
}
