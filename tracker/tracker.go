// Package tracker owns the per-user verification state machine: a new member
// must post a video within the configured window or be removed. All state
// lives behind one mutex; timer expiries re-enter through the same lock, so
// a timer fire and a concurrent video post for the same key race cleanly:
// whichever consumes the pending entry first wins and the loser no-ops.
package tracker

import (
	"sync"
	"time"

	"videokick_bot/settings"
)

// Key identifies one tracked member within one group.
type Key struct {
	ChatID int64
	UserID int64
}

// Welcome tells the dispatcher which greeting to send after a join.
type Welcome int

const (
	// WelcomeTimed: entry created, timer armed.
	WelcomeTimed Welcome = iota
	// WelcomePaused: bot paused, no verification required.
	WelcomePaused
	// WelcomeOffHours: outside the scheduled window, no verification.
	WelcomeOffHours
	// WelcomeAwaitInteraction: interaction mode, timer arms on first message.
	WelcomeAwaitInteraction
	// WelcomeBack: key already verified in this process, never re-timed.
	WelcomeBack
)

// Verification is the successful outcome of a pending entry.
type Verification struct {
	Key     Key
	Name    string
	Elapsed time.Duration
}

// ExpireFunc is invoked outside the tracker lock when a pending entry's
// timer fires without a video. The gateway kick happens in the callback;
// entry removal has already committed by the time it runs.
type ExpireFunc func(key Key, name string)

type entry struct {
	name  string
	start time.Time
	timer *time.Timer
}

type Tracker struct {
	st       *settings.Store
	onExpire ExpireFunc

	mu       sync.Mutex
	pending  map[Key]*entry
	verified map[Key]struct{}
}

func New(st *settings.Store) *Tracker {
	return &Tracker{
		st:       st,
		pending:  make(map[Key]*entry),
		verified: make(map[Key]struct{}),
	}
}

// SetExpireFunc installs the expiry callback. Must be called before any
// events are dispatched.
func (t *Tracker) SetExpireFunc(f ExpireFunc) {
	t.onExpire = f
}

// OnJoin decides the greeting for a new member and, in the default mode,
// arms the verification timer. A join replaces any pending entry left over
// from a prior session of the same key.
func (t *Tracker) OnJoin(chatID, userID int64, name string, now time.Time) Welcome {
	key := Key{ChatID: chatID, UserID: userID}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.verified[key]; ok {
		return WelcomeBack
	}
	if t.st.Paused() {
		return WelcomePaused
	}
	if !t.st.ActiveAt(now) {
		return WelcomeOffHours
	}
	if t.st.InteractionMode() {
		return WelcomeAwaitInteraction
	}

	if old, ok := t.pending[key]; ok {
		old.timer.Stop()
	}
	t.arm(key, name, now)
	return WelcomeTimed
}

// OnFirstInteraction arms a timer for an untracked, unverified key in
// interaction mode. Reports whether a new entry was created; duplicate
// concurrent calls arm exactly one timer.
func (t *Tracker) OnFirstInteraction(chatID, userID int64, name string, now time.Time) bool {
	key := Key{ChatID: chatID, UserID: userID}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.st.InteractionMode() || !t.st.ActiveAt(now) {
		return false
	}
	if _, ok := t.pending[key]; ok {
		return false
	}
	if _, ok := t.verified[key]; ok {
		return false
	}
	t.arm(key, name, now)
	return true
}

// OnVideoPosted consumes the pending entry for the key, if any, and marks it
// verified. The second return is false when there is nothing pending
// (already verified, already expired, or never tracked), which includes
// losing the race against a concurrently firing timer.
func (t *Tracker) OnVideoPosted(chatID, userID int64, name string, now time.Time) (Verification, bool) {
	key := Key{ChatID: chatID, UserID: userID}

	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.pending[key]
	if !ok {
		return Verification{}, false
	}
	e.timer.Stop()
	delete(t.pending, key)
	t.verified[key] = struct{}{}

	return Verification{Key: key, Name: name, Elapsed: now.Sub(e.start)}, true
}

// CancelPending drops the pending entry for the key and stops its timer.
// Used when a spam violation removes a user mid-verification, so the stale
// timer never fires on an already-kicked member.
func (t *Tracker) CancelPending(chatID, userID int64) bool {
	key := Key{ChatID: chatID, UserID: userID}

	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.pending[key]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(t.pending, key)
	return true
}

func (t *Tracker) IsVerified(chatID, userID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.verified[Key{ChatID: chatID, UserID: userID}]
	return ok
}

// Counts returns the number of pending and verified keys.
func (t *Tracker) Counts() (pending, verified int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending), len(t.verified)
}

// Shutdown stops every outstanding timer. Entries are dropped without
// expiry callbacks; the process is exiting.
func (t *Tracker) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for key, e := range t.pending {
		e.timer.Stop()
		delete(t.pending, key)
	}
}

// arm creates a pending entry and its timer. Caller holds t.mu.
func (t *Tracker) arm(key Key, name string, now time.Time) {
	e := &entry{name: name, start: now}
	e.timer = time.AfterFunc(t.st.Timeout(), func() {
		t.expire(key, e)
	})
	t.pending[key] = e
}

// expire is the timer-fire path. The identity check against the stored
// entry guards both the video/timer race and a stopped timer that fired
// anyway after its entry was replaced by a rejoin: a fire only counts when
// its own entry is still the live one.
func (t *Tracker) expire(key Key, e *entry) {
	t.mu.Lock()
	cur, ok := t.pending[key]
	if !ok || cur != e {
		t.mu.Unlock()
		return
	}
	delete(t.pending, key)
	t.mu.Unlock()

	if t.onExpire != nil {
		t.onExpire(key, e.name)
	}
}
