package guard

import (
	"sync"
	"time"
)

// DefaultSignOutDelay is how long the access-denied view waits before
// signing the visitor out on its own.
const DefaultSignOutDelay = 5 * time.Second

// SignOuter terminates the current session.
type SignOuter interface {
	SignOut()
}

// DeniedController backs the access-denied view. Once started it arms a
// one-shot timer; when the timer fires, or when Trigger is called
// manually, it signs the session out and navigates home — exactly once.
// Stop cancels the pending timer so nothing fires after teardown.
type DeniedController struct {
	session  SignOuter
	nav      Navigator
	homePath string
	delay    time.Duration

	mu    sync.Mutex
	timer *time.Timer
	done  bool
}

// NewDeniedController creates a controller with the given sign-out delay.
// A non-positive delay falls back to DefaultSignOutDelay.
func NewDeniedController(session SignOuter, nav Navigator, homePath string, delay time.Duration) *DeniedController {
	if delay <= 0 {
		delay = DefaultSignOutDelay
	}
	return &DeniedController{
		session:  session,
		nav:      nav,
		homePath: homePath,
		delay:    delay,
	}
}

// Start arms the auto sign-out timer. Calling Start again while armed or
// after completion is a no-op.
func (d *DeniedController) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.done || d.timer != nil {
		return
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// Trigger performs the sign-out sequence immediately and cancels the
// pending timer.
func (d *DeniedController) Trigger() {
	d.fire()
}

// Stop cancels the pending timer. After Stop the sequence never fires.
func (d *DeniedController) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.done = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *DeniedController) fire() {
	d.mu.Lock()
	if d.done {
		d.mu.Unlock()
		return
	}
	d.done = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	// Side effects run outside the lock: sign out, then go home.
	d.session.SignOut()
	d.nav.Navigate(d.homePath)
}
