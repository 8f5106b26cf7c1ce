package repofakes

import (
	"sync"

	"github.com/apextrack/go-admin-console/session"
)

var _ session.Repo = (*FakeSessionRepo)(nil)

type FakeSessionRepo struct {
	lock      sync.RWMutex
	persisted session.Session

	SaveCalls  int
	ClearCalls int
	SaveErr    error
	LoadErr    error
}

func NewFakeSessionRepo() *FakeSessionRepo {
	return &FakeSessionRepo{}
}

func (r *FakeSessionRepo) Save(sess session.Session) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.SaveCalls++
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.persisted = sess
	return nil
}

func (r *FakeSessionRepo) Load() (session.Session, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.LoadErr != nil {
		return session.Session{}, r.LoadErr
	}
	return r.persisted, nil
}

func (r *FakeSessionRepo) Clear() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.ClearCalls++
	r.persisted = session.Session{}
	return nil
}

// Persisted returns the currently persisted session.
func (r *FakeSessionRepo) Persisted() session.Session {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.persisted
}

// Seed sets the persisted session directly, bypassing Save accounting.
func (r *FakeSessionRepo) Seed(sess session.Session) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.persisted = sess
}
