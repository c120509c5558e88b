package ui

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultRevealThreshold is the fraction of a section that must be on screen
// before its enter animation fires.
const DefaultRevealThreshold = 0.1

// VisibilityTracker latches a one-way "became visible" transition for a
// rendered section. The signal starts false and flips to true the first time
// the observed visible fraction reaches the threshold; it never flips back.
type VisibilityTracker struct {
	mu        sync.Mutex
	threshold float64
	visible   bool
	released  bool
}

// NewVisibilityTracker creates a tracker for the given threshold.
// Thresholds outside [0,1] are clamped; a zero or negative threshold uses
// DefaultRevealThreshold. A NaN threshold means the observation capability is
// absent, and the tracker fails open (reports visible immediately).
func NewVisibilityTracker(threshold float64) *VisibilityTracker {
	if math.IsNaN(threshold) {
		// Fail open: this is a cosmetic affordance, never a blocker.
		return &VisibilityTracker{visible: true, released: true}
	}
	if threshold <= 0 {
		threshold = DefaultRevealThreshold
	}
	if threshold > 1 {
		threshold = 1
	}
	return &VisibilityTracker{threshold: threshold}
}

// Observe reports a visible fraction. It returns true exactly once: on the
// call that latches the visible transition. Observation stops after the
// transition or after Release, whichever comes first.
func (t *VisibilityTracker) Observe(fraction float64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.released || t.visible {
		return false
	}
	if fraction >= t.threshold {
		t.visible = true
		t.released = true
		return true
	}
	return false
}

// Visible returns the latched state.
func (t *VisibilityTracker) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// Release stops observation. Releasing twice, or after the visible
// transition already released the tracker, is a no-op.
func (t *VisibilityTracker) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.released = true
}

// Released reports whether observation has stopped.
func (t *VisibilityTracker) Released() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.released
}

type revealSubscription struct {
	section   string
	tracker   *VisibilityTracker
	createdAt time.Time
}

// RevealRegistry hands out observation tokens for page sections and routes
// reported visible fractions to their trackers. A subscription is removed
// automatically once its tracker latches, so a token fires at most once.
type RevealRegistry struct {
	mu   sync.Mutex
	subs map[string]*revealSubscription
}

// NewRevealRegistry creates an empty registry.
func NewRevealRegistry() *RevealRegistry {
	return &RevealRegistry{subs: make(map[string]*revealSubscription)}
}

// Subscribe registers a section for observation and returns an opaque token.
func (r *RevealRegistry) Subscribe(section string, threshold float64) string {
	token := uuid.New().String()
	r.mu.Lock()
	r.subs[token] = &revealSubscription{
		section:   section,
		tracker:   NewVisibilityTracker(threshold),
		createdAt: time.Now(),
	}
	r.mu.Unlock()
	return token
}

// Report feeds an observed visible fraction to the token's tracker.
// It returns (revealed, section): revealed is true only on the call that
// latches the transition; section is empty for unknown or already-released
// tokens, which are safely ignored.
func (r *RevealRegistry) Report(token string, fraction float64) (bool, string) {
	r.mu.Lock()
	sub, ok := r.subs[token]
	r.mu.Unlock()
	if !ok {
		return false, ""
	}

	if sub.tracker.Observe(fraction) {
		r.mu.Lock()
		delete(r.subs, token)
		r.mu.Unlock()
		return true, sub.section
	}
	return false, sub.section
}

// Unsubscribe releases a token's observation without firing. Unknown tokens
// are a no-op, so double-release is harmless.
func (r *RevealRegistry) Unsubscribe(token string) {
	r.mu.Lock()
	sub, ok := r.subs[token]
	if ok {
		delete(r.subs, token)
	}
	r.mu.Unlock()
	if ok {
		sub.tracker.Release()
	}
}

// Len returns the number of live subscriptions.
func (r *RevealRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// Sweep releases subscriptions older than maxAge and returns how many were
// removed. Sections that never scrolled into view before the visitor left
// would otherwise accumulate forever.
func (r *RevealRegistry) Sweep(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for token, sub := range r.subs {
		if sub.createdAt.Before(cutoff) {
			sub.tracker.Release()
			delete(r.subs, token)
			removed++
		}
	}
	return removed
}
