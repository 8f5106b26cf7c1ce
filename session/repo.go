package session

// Repo persists a session across process restarts so a reload does not
// force re-login.
type Repo interface {
	// Save replaces the persisted session
	Save(session Session) error

	// Load retrieves the persisted session; an empty Session (no error)
	// means nothing was persisted
	Load() (Session, error)

	// Clear removes the persisted session
	Clear() error
}
