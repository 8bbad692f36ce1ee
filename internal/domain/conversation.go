package domain

import "time"

// Default identifiers substituted when the VR client omits them.
// Substitution is documented behavior, not an error.
const (
	DefaultSessionID = "vr-session-1"
	DefaultUserID    = "vr-user-1"
)

// Turn represents one user utterance and its generated reply, the atomic
// unit of conversation history. A Turn is immutable once created.
type Turn struct {
	SessionID string
	UserID    string
	Message   string
	Response  string
	Timestamp string // ISO-8601, assigned at generation time
}

// NewTurn creates a turn stamped with the current generation time.
func NewTurn(sessionID, userID, message, response string) Turn {
	return Turn{
		SessionID: sessionID,
		UserID:    userID,
		Message:   message,
		Response:  response,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// LastTurns returns the most recent n turns of the history, preserving
// chronological order. The full history is returned when it holds fewer
// than n turns.
func LastTurns(history []Turn, n int) []Turn {
	if n <= 0 {
		return []Turn{}
	}
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
