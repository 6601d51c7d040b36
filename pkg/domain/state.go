package domain

import "time"

// Cursor represents the current snapshot of a session driven through a transition table.
type Cursor struct {
	// SessionID identifies the owner of the cursor.
	SessionID string `json:"session_id"`

	// State is the current state. It only changes on a successful transition.
	State StateID `json:"state"`

	// History tracks the path taken, starting with the initial state.
	History []StateID `json:"history"`

	// Terminated indicates the cursor reached a designated terminal state.
	Terminated bool `json:"terminated,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewCursor creates a clean cursor positioned at a specific state.
func NewCursor(sessionID string, initial StateID) *Cursor {
	return &Cursor{
		SessionID: sessionID,
		State:     initial,
		History:   []StateID{initial},
		UpdatedAt: time.Now().UTC(),
	}
}

// Advance moves the cursor to the given state and records it in the history.
func (c *Cursor) Advance(to StateID) {
	c.State = to
	c.History = append(c.History, to)
	c.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy of the cursor.
func (c *Cursor) Clone() *Cursor {
	ret := *c
	ret.History = append([]StateID(nil), c.History...)
	return &ret
}
