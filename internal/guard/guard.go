// Package guard implements the admin gate for back-office views: a
// three-state machine driven by session snapshots, plus the
// access-denied controller that signs stale sessions out.
package guard

// State is the guard's view of the current session.
type State int

const (
	// StateResolving means the session subsystem has not yet produced a
	// definitive principal. Callers should render a loading indicator.
	StateResolving State = iota
	// StateUnauthorized means the principal is absent or not an admin.
	// A redirect has been dispatched; callers render nothing.
	StateUnauthorized
	// StateAuthorized means the principal's primary email passed the
	// admin classifier. Callers render the protected subtree.
	StateAuthorized
)

func (s State) String() string {
	switch s {
	case StateResolving:
		return "resolving"
	case StateUnauthorized:
		return "unauthorized"
	case StateAuthorized:
		return "authorized"
	default:
		return "unknown"
	}
}

// Principal is the authenticated identity behind a session. Emails is
// order-significant: the first entry is the primary address.
type Principal struct {
	ID     string
	Emails []string
}

// PrimaryEmail returns the principal's primary email, or empty string.
func (p *Principal) PrimaryEmail() string {
	if p == nil || len(p.Emails) == 0 {
		return ""
	}
	return p.Emails[0]
}

// Session is a snapshot of the identity subsystem's state. Loaded is
// false while resolution is still in flight.
type Session struct {
	Principal *Principal
	Loaded    bool
}

// Navigator dispatches an imperative navigation to a path.
type Navigator interface {
	Navigate(path string)
}

// Classifier decides admin status from an email address.
type Classifier interface {
	IsAdminEmail(email string) bool
}

// RouteGuard gates a protected view on the session stream. It dispatches
// at most one redirect: the dispatch is keyed on the transition into
// StateUnauthorized, not on every observation of it.
type RouteGuard struct {
	classifier Classifier
	nav        Navigator
	signInPath string
	deniedPath string

	state State
}

// NewRouteGuard creates a guard in StateResolving. signInPath receives
// anonymous visitors, deniedPath authenticated non-admins.
func NewRouteGuard(classifier Classifier, nav Navigator, signInPath, deniedPath string) *RouteGuard {
	return &RouteGuard{
		classifier: classifier,
		nav:        nav,
		signInPath: signInPath,
		deniedPath: deniedPath,
		state:      StateResolving,
	}
}

// State returns the guard's current state.
func (g *RouteGuard) State() State {
	return g.state
}

// Observe feeds a session snapshot into the guard and returns the
// resulting state. Entering StateUnauthorized navigates to the sign-in
// path when no principal is present, or to the access-denied path when
// the principal is not an admin; re-observing a terminal state does not
// navigate again.
func (g *RouteGuard) Observe(s Session) State {
	if !s.Loaded {
		g.state = StateResolving
		return g.state
	}

	if s.Principal != nil && g.classifier.IsAdminEmail(s.Principal.PrimaryEmail()) {
		g.state = StateAuthorized
		return g.state
	}

	if g.state != StateUnauthorized {
		if s.Principal == nil {
			g.nav.Navigate(g.signInPath)
		} else {
			g.nav.Navigate(g.deniedPath)
		}
	}
	g.state = StateUnauthorized
	return g.state
}
