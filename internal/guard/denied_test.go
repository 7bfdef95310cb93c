package guard

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	mu       sync.Mutex
	signOuts int
}

func (s *fakeSession) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signOuts = s.signOuts + 1
}

func (s *fakeSession) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signOuts
}

type recordingNavigator struct {
	mu    sync.Mutex
	paths []string
	fired chan struct{}
}

func newRecordingNavigator() *recordingNavigator {
	return &recordingNavigator{fired: make(chan struct{}, 8)}
}

func (n *recordingNavigator) Navigate(path string) {
	n.mu.Lock()
	n.paths = append(n.paths, path)
	n.mu.Unlock()
	n.fired <- struct{}{}
}

func (n *recordingNavigator) recorded() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.paths...)
}

func TestDeniedControllerAutoSignOut(t *testing.T) {
	sess := &fakeSession{}
	nav := newRecordingNavigator()
	d := NewDeniedController(sess, nav, "/", 10*time.Millisecond)

	d.Start()

	select {
	case <-nav.fired:
	case <-time.After(time.Second):
		t.Fatal("auto sign-out never fired")
	}

	require.Equal(t, 1, sess.count())
	assert.Equal(t, []string{"/"}, nav.recorded())

	// Give a potential duplicate fire time to show up.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, sess.count(), "sequence must fire exactly once")
}

func TestDeniedControllerStopCancels(t *testing.T) {
	sess := &fakeSession{}
	nav := newRecordingNavigator()
	d := NewDeniedController(sess, nav, "/", 20*time.Millisecond)

	d.Start()
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, sess.count(), "nothing may fire after Stop")
	assert.Empty(t, nav.recorded())
}

func TestDeniedControllerManualTrigger(t *testing.T) {
	sess := &fakeSession{}
	nav := newRecordingNavigator()
	d := NewDeniedController(sess, nav, "/", time.Hour)

	d.Start()
	d.Trigger()

	require.Equal(t, 1, sess.count())
	assert.Equal(t, []string{"/"}, nav.recorded())

	// The armed timer was cancelled; a second trigger is a no-op too.
	d.Trigger()
	assert.Equal(t, 1, sess.count())
}

func TestDeniedControllerStartAfterStop(t *testing.T) {
	sess := &fakeSession{}
	nav := newRecordingNavigator()
	d := NewDeniedController(sess, nav, "/", 5*time.Millisecond)

	d.Stop()
	d.Start()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 0, sess.count())
}

func TestDeniedControllerDefaultDelay(t *testing.T) {
	d := NewDeniedController(&fakeSession{}, newRecordingNavigator(), "/", 0)
	assert.Equal(t, DefaultSignOutDelay, d.delay)
}
