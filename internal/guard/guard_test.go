package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeNavigator struct {
	paths []string
}

func (n *fakeNavigator) Navigate(path string) {
	n.paths = append(n.paths, path)
}

type allowlistClassifier map[string]bool

func (c allowlistClassifier) IsAdminEmail(email string) bool {
	return c[email]
}

func newTestGuard() (*RouteGuard, *fakeNavigator) {
	nav := &fakeNavigator{}
	classifier := allowlistClassifier{"editor@inkwell.press": true}
	return NewRouteGuard(classifier, nav, "/signin", "/denied"), nav
}

func TestRouteGuardResolving(t *testing.T) {
	g, nav := newTestGuard()

	assert.Equal(t, StateResolving, g.State())
	assert.Equal(t, StateResolving, g.Observe(Session{Loaded: false}))
	assert.Empty(t, nav.paths, "no redirect while session is resolving")
}

func TestRouteGuardAnonymous(t *testing.T) {
	g, nav := newTestGuard()

	state := g.Observe(Session{Loaded: true})
	assert.Equal(t, StateUnauthorized, state)
	assert.Equal(t, []string{"/signin"}, nav.paths)

	// Re-observing the same terminal state must not redirect again.
	g.Observe(Session{Loaded: true})
	g.Observe(Session{Loaded: true})
	assert.Equal(t, []string{"/signin"}, nav.paths)
}

func TestRouteGuardNonAdmin(t *testing.T) {
	g, nav := newTestGuard()

	sess := Session{
		Loaded:    true,
		Principal: &Principal{ID: "u1", Emails: []string{"reader@example.com"}},
	}

	assert.Equal(t, StateUnauthorized, g.Observe(sess))
	assert.Equal(t, []string{"/denied"}, nav.paths)

	g.Observe(sess)
	assert.Equal(t, []string{"/denied"}, nav.paths, "exactly one redirect per transition")
}

func TestRouteGuardAdmin(t *testing.T) {
	g, nav := newTestGuard()

	sess := Session{
		Loaded:    true,
		Principal: &Principal{ID: "u1", Emails: []string{"editor@inkwell.press"}},
	}

	assert.Equal(t, StateAuthorized, g.Observe(sess))
	assert.Empty(t, nav.paths)
}

func TestRouteGuardPrimaryEmailDecides(t *testing.T) {
	g, nav := newTestGuard()

	// An admin address in a secondary slot does not grant access.
	sess := Session{
		Loaded:    true,
		Principal: &Principal{ID: "u1", Emails: []string{"reader@example.com", "editor@inkwell.press"}},
	}

	assert.Equal(t, StateUnauthorized, g.Observe(sess))
	assert.Equal(t, []string{"/denied"}, nav.paths)
}

func TestRouteGuardResolvingThenAuthorized(t *testing.T) {
	g, nav := newTestGuard()

	g.Observe(Session{Loaded: false})
	state := g.Observe(Session{
		Loaded:    true,
		Principal: &Principal{ID: "u1", Emails: []string{"editor@inkwell.press"}},
	})

	assert.Equal(t, StateAuthorized, state)
	assert.Empty(t, nav.paths)
}
