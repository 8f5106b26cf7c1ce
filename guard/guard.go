// Package guard decides whether the current session may enter a
// protected view. It is a pure predicate over the credential store;
// mutations to the store change admissibility immediately.
package guard

import (
	"github.com/pkg/errors"

	"github.com/apextrack/go-admin-console/session"
)

// Decision is the closed set of guard outcomes. Denial never routes to
// an error page: unauthenticated users go to login, under-privileged
// ones to the default authenticated view.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectDefault
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectDefault:
		return "redirect-default"
	}
	return "unknown"
}

// View is a protected destination with an optional role requirement.
type View struct {
	Name         string
	RequiredRole string
}

type Guard struct {
	store *session.Store
}

func New(store *session.Store) (*Guard, error) {
	if store == nil {
		return nil, errors.New("[guard.New] store is required")
	}
	return &Guard{store: store}, nil
}

// Admit evaluates the view against the live session.
func (g *Guard) Admit(view View) Decision {
	if !g.store.IsAuthenticated() {
		return RedirectLogin
	}
	if !g.store.HasRole(view.RequiredRole) {
		return RedirectDefault
	}
	return Allow
}
