package masonry

import "github.com/google/uuid"

// Session is an opaque token identifying one render batch or generation.
// Deferred callbacks capture the session active when they were scheduled
// and become silent no-ops when the container has moved on to a newer one.
type Session struct {
	id uuid.UUID
}

// NewSession returns a fresh, unique session token.
func NewSession() Session {
	return Session{id: uuid.New()}
}

// IsZero reports whether s is the zero session (no batch yet).
func (s Session) IsZero() bool {
	return s.id == uuid.Nil
}

// String returns a short identifier for logs.
func (s Session) String() string {
	return s.id.String()[:8]
}
