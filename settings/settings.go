package settings

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrTimeoutRange = errors.New("timer must be between 10 and 600 seconds")
	ErrHourRange    = errors.New("hours must be between 0 and 23")
)

const DefaultWelcome = "👋 Welcome {name}! 📹 Post a video within {timer} seconds to stay in the group!"

// Snapshot is a read-only copy of every setting, used to render /help,
// /status and /stats without holding the lock across sends.
type Snapshot struct {
	TimeoutSeconds  int
	Paused          bool
	InteractionMode bool
	AntiSpam        bool
	Rewards         bool
	Scheduled       bool
	StartHour       int
	EndHour         int
	Welcome         string
	BannedWords     []string
}

// Store holds the admin-adjustable policy. Each setter mutates a single
// logical setting; last writer wins.
type Store struct {
	mu sync.RWMutex

	timeoutSeconds  int
	paused          bool
	interactionMode bool
	antiSpam        bool
	rewards         bool
	scheduled       bool
	startHour       int
	endHour         int
	welcome         string
	bannedWords     []string
}

func New(timeoutSeconds int) *Store {
	if timeoutSeconds < 10 || timeoutSeconds > 600 {
		timeoutSeconds = 30
	}
	return &Store{
		timeoutSeconds: timeoutSeconds,
		antiSpam:       true,
		rewards:        true,
		startHour:      8,
		endHour:        22,
		welcome:        DefaultWelcome,
		bannedWords:    []string{"spam", "promotion", "advertisement", "buy now", "click here"},
	}
}

func (s *Store) Timeout() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Duration(s.timeoutSeconds) * time.Second
}

func (s *Store) TimeoutSeconds() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timeoutSeconds
}

func (s *Store) SetTimeout(seconds int) error {
	if seconds < 10 || seconds > 600 {
		return ErrTimeoutRange
	}
	s.mu.Lock()
	s.timeoutSeconds = seconds
	s.mu.Unlock()
	return nil
}

func (s *Store) Paused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paused
}

func (s *Store) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

func (s *Store) Resume() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
}

func (s *Store) InteractionMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.interactionMode
}

func (s *Store) ToggleInteraction() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interactionMode = !s.interactionMode
	return s.interactionMode
}

func (s *Store) AntiSpam() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.antiSpam
}

func (s *Store) ToggleAntiSpam() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.antiSpam = !s.antiSpam
	return s.antiSpam
}

func (s *Store) Rewards() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rewards
}

func (s *Store) ToggleRewards() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rewards = !s.rewards
	return s.rewards
}

func (s *Store) Scheduled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scheduled
}

func (s *Store) ToggleScheduled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduled = !s.scheduled
	return s.scheduled
}

func (s *Store) ActiveHours() (start, end int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.startHour, s.endHour
}

func (s *Store) SetActiveHours(start, end int) error {
	if start < 0 || start > 23 || end < 0 || end > 23 {
		return ErrHourRange
	}
	s.mu.Lock()
	s.startHour = start
	s.endHour = end
	s.mu.Unlock()
	return nil
}

// ActiveAt reports whether the bot enforces verification at t: not paused
// and, when scheduled mode is on, within the [start, end) hour window.
// The window may wrap past midnight; start == end means always active.
func (s *Store) ActiveAt(t time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.paused {
		return false
	}
	if !s.scheduled || s.startHour == s.endHour {
		return true
	}
	h := t.Hour()
	if s.startHour < s.endHour {
		return h >= s.startHour && h < s.endHour
	}
	return h >= s.startHour || h < s.endHour
}

func (s *Store) Welcome() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.welcome
}

func (s *Store) SetWelcome(template string) {
	s.mu.Lock()
	s.welcome = template
	s.mu.Unlock()
}

// BannedWords returns a copy; callers iterate it without the lock.
func (s *Store) BannedWords() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words := make([]string, len(s.bannedWords))
	copy(words, s.bannedWords)
	return words
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words := make([]string, len(s.bannedWords))
	copy(words, s.bannedWords)
	return Snapshot{
		TimeoutSeconds:  s.timeoutSeconds,
		Paused:          s.paused,
		InteractionMode: s.interactionMode,
		AntiSpam:        s.antiSpam,
		Rewards:         s.rewards,
		Scheduled:       s.scheduled,
		StartHour:       s.startHour,
		EndHour:         s.endHour,
		Welcome:         s.welcome,
		BannedWords:     words,
	}
}
