package domain

import "time"

// Phase identifies where a session is in the conversation.
type Phase string

const (
	// PhaseSelecting means no checklist has been chosen yet.
	PhaseSelecting Phase = "selecting"
	// PhaseAsking means the engine is sequentially prompting for item Cursor.
	PhaseAsking Phase = "asking"
	// PhaseReviewing means all items are answered and the summary is shown.
	PhaseReviewing Phase = "reviewing"
	// PhaseEditing means one answered item was picked for a point overwrite.
	// It always returns to PhaseReviewing.
	PhaseEditing Phase = "editing"
)

// Session is the per-user conversation state.
//
// Invariants maintained by the engine:
//   - Responses keys are a subset of the active checklist's item names.
//   - Phase == PhaseAsking implies Cursor < len(items).
//   - Phase == PhaseReviewing implies Cursor == len(items).
type Session struct {
	// UserID identifies the owner. Sessions are keyed by it in the store.
	UserID string `json:"user_id"`

	// ActiveChecklistID references a catalog checklist, or "" before selection.
	ActiveChecklistID string `json:"active_checklist_id,omitempty"`

	// Cursor is the zero-based index of the next unanswered item.
	// Cursor == len(items) signals "all items answered".
	Cursor int `json:"cursor"`

	// Responses maps item full names to recorded dispositions.
	Responses map[string]Disposition `json:"responses"`

	// Phase is the current conversation phase.
	Phase Phase `json:"phase"`

	// EditingItem is the item being overwritten while Phase == PhaseEditing.
	EditingItem string `json:"editing_item,omitempty"`

	// LastTouched is stamped on every successful transition. It exists to
	// support idle-eviction policies in the store layer.
	LastTouched time.Time `json:"last_touched"`
}

// NewSession creates an empty session in the selecting phase.
func NewSession(userID string) *Session {
	return &Session{
		UserID:    userID,
		Phase:     PhaseSelecting,
		Responses: make(map[string]Disposition),
	}
}

// Clone returns a deep copy so callers can mutate safely.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	next := *s
	next.Responses = make(map[string]Disposition, len(s.Responses))
	for k, v := range s.Responses {
		next.Responses[k] = v
	}
	return &next
}

// ResetProgress wipes all progress, returning the session to the state of
// a freshly created one. The user identity is kept.
func (s *Session) ResetProgress() {
	s.ActiveChecklistID = ""
	s.Cursor = 0
	s.Responses = make(map[string]Disposition)
	s.Phase = PhaseSelecting
	s.EditingItem = ""
}

// Answered reports whether the item has a recorded disposition.
func (s *Session) Answered(fullName string) bool {
	_, ok := s.Responses[fullName]
	return ok
}
