package rewards

import (
	"sort"
	"sync"
	"time"

	"videokick_bot/settings"
	"videokick_bot/tracker"
)

// Point tiers for verification speed.
const (
	PointsSuperFast = 100 // video within 10 seconds
	PointsFast      = 50  // within 30 seconds
	PointsRegular   = 25
)

type Entry struct {
	Key    tracker.Key
	Name   string
	Points int
}

// Ledger accumulates points per (group, user). Totals only grow; ties on
// the leaderboard keep first-award order.
type Ledger struct {
	st *settings.Store

	mu     sync.Mutex
	points map[tracker.Key]int
	names  map[tracker.Key]string
	order  []tracker.Key
}

func NewLedger(st *settings.Store) *Ledger {
	return &Ledger{
		st:     st,
		points: make(map[tracker.Key]int),
		names:  make(map[tracker.Key]string),
	}
}

// PointsFor maps verification latency to a point award.
func PointsFor(elapsed time.Duration) int {
	switch {
	case elapsed <= 10*time.Second:
		return PointsSuperFast
	case elapsed <= 30*time.Second:
		return PointsFast
	default:
		return PointsRegular
	}
}

// Award credits a verification and returns the points granted. When the
// reward system is disabled it returns 0 and leaves the ledger untouched.
func (l *Ledger) Award(v tracker.Verification) int {
	if !l.st.Rewards() {
		return 0
	}
	pts := PointsFor(v.Elapsed)

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.points[v.Key]; !ok {
		l.order = append(l.order, v.Key)
	}
	l.points[v.Key] += pts
	l.names[v.Key] = v.Name
	return pts
}

// Total returns the accumulated points for a key.
func (l *Ledger) Total(key tracker.Key) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.points[key]
}

// Leaderboard returns up to limit entries in descending point order,
// first-award order among ties. Recomputed from the ledger on every call.
func (l *Ledger) Leaderboard(limit int) []Entry {
	l.mu.Lock()
	entries := make([]Entry, 0, len(l.order))
	for _, key := range l.order {
		entries = append(entries, Entry{Key: key, Name: l.names[key], Points: l.points[key]})
	}
	l.mu.Unlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
