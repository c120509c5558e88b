package ui

import (
	"sync"
	"time"
)

// Notification kinds
const (
	KindSuccess = "success"
	KindError   = "error"
)

// DefaultNotificationTimeout is how long a notification stays visible unless
// dismissed or replaced first.
const DefaultNotificationTimeout = 5 * time.Second

// Notification is a transient, auto-expiring user-facing status message.
type Notification struct {
	Kind      string
	Text      string
	CreatedAt time.Time
}

// Notifier owns at most one visible Notification. Showing a new one replaces
// the current one and cancels its pending auto-dismiss timer, so a stale
// timer can never clear a newer notification.
type Notifier struct {
	mu      sync.Mutex
	timeout time.Duration
	current *Notification
	timer   *time.Timer
	gen     uint64
}

// NewNotifier creates a notifier. A zero timeout uses
// DefaultNotificationTimeout.
func NewNotifier(timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = DefaultNotificationTimeout
	}
	return &Notifier{timeout: timeout}
}

// Show replaces the current notification and arms a fresh auto-dismiss timer.
func (n *Notifier) Show(kind, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.gen++
	gen := n.gen
	n.current = &Notification{
		Kind:      kind,
		Text:      text,
		CreatedAt: time.Now(),
	}
	n.timer = time.AfterFunc(n.timeout, func() {
		n.expire(gen)
	})
}

// expire clears the notification for the given generation. A timer that was
// replaced after being stopped may still fire; the generation check makes
// that firing a no-op.
func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.gen != gen {
		return
	}
	n.current = nil
	n.timer = nil
}

// Dismiss clears the current notification early.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.gen++
	n.current = nil
}

// Current returns a copy of the visible notification, or nil when none is
// showing.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	c := *n.current
	return &c
}

type toastEntry struct {
	notifier *Notifier
	lastSeen time.Time
}

// ToastCenter keys Notifiers by visitor so each browser session sees its own
// toast. Entries are evicted after sitting idle.
type ToastCenter struct {
	mu      sync.Mutex
	timeout time.Duration
	entries map[string]*toastEntry
}

// NewToastCenter creates a toast center whose notifiers use the given
// notification timeout (zero means DefaultNotificationTimeout).
func NewToastCenter(timeout time.Duration) *ToastCenter {
	return &ToastCenter{
		timeout: timeout,
		entries: make(map[string]*toastEntry),
	}
}

// Notifier returns the visitor's notifier, creating it on first use.
func (tc *ToastCenter) Notifier(visitorID string) *Notifier {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	entry, ok := tc.entries[visitorID]
	if !ok {
		entry = &toastEntry{notifier: NewNotifier(tc.timeout)}
		tc.entries[visitorID] = entry
	}
	entry.lastSeen = time.Now()
	return entry.notifier
}

// Show surfaces a notification to the visitor, replacing any current one.
func (tc *ToastCenter) Show(visitorID, kind, text string) {
	tc.Notifier(visitorID).Show(kind, text)
}

// Current returns the visitor's visible notification, or nil.
func (tc *ToastCenter) Current(visitorID string) *Notification {
	return tc.Notifier(visitorID).Current()
}

// Sweep evicts visitors idle for longer than maxIdle and returns how many
// entries were removed.
func (tc *ToastCenter) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	tc.mu.Lock()
	defer tc.mu.Unlock()

	removed := 0
	for id, entry := range tc.entries {
		if entry.lastSeen.Before(cutoff) {
			entry.notifier.Dismiss()
			delete(tc.entries, id)
			removed++
		}
	}
	return removed
}
