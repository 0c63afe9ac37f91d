// Package state provides the per-user session store and FSM dispatch for the
// conversation flow. Sessions are value records: the store only ever replaces
// or clears a whole record, so concurrent readers never observe a partially
// updated session.
package state

import tele "gopkg.in/telebot.v4"

// State identifies a finite-state-machine step used in conversations.
type State string

const (
	// StateIdle indicates there is no active conversation with the user.
	StateIdle State = "idle"
	// StateWaitingURL means the bot prompted for a post URL and is waiting
	// for the next text message.
	StateWaitingURL State = "waiting_url"
	// StateProcessing means a processing run is in flight for the user.
	StateProcessing State = "processing"
)

// Session stores conversation state and the data tied to a processing run.
// URL and ProgressMessageID are set only while State is StateProcessing.
type Session struct {
	State             State
	URL               string
	ChatID            int64
	ProgressMessageID int
}

// Manager orchestrates user sessions and FSM state transitions.
type Manager interface {
	// Get returns a copy of the user's session, defaulting to idle.
	Get(userID int64) Session
	// Put replaces the user's whole session record.
	Put(userID int64, s Session)
	// SetState updates only the state tag, keeping associated data.
	SetState(userID int64, st State)
	GetState(userID int64) State
	// Clear removes the session entirely, returning the user to idle.
	Clear(userID int64)
	// InProgress reports whether the user has an active non-idle state.
	InProgress(userID int64) bool

	// RegisterHandler associates a state with the handler that consumes
	// text messages arriving in that state.
	RegisterHandler(st State, h tele.HandlerFunc)
	// ManagerHandler dispatches an update to the handler registered for
	// the user's current state. States without a handler ignore the
	// update.
	ManagerHandler(c tele.Context) error
}
