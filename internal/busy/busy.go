// Package busy tracks in-flight operations per user. An operation
// acquires a handle when it starts and releases it when it ends,
// success or failure alike; interested observers subscribe to the
// resulting event stream instead of sharing ambient state.
package busy

import (
	"sync"
	"time"
)

// Event describes one transition of a user's busy state.
type Event struct {
	UserID  uint      `json:"user_id"`
	Op      string    `json:"op"`
	Started bool      `json:"started"`
	Pending int       `json:"pending"` // in-flight ops for this user after the transition
	At      time.Time `json:"at"`
}

// Tracker is safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	pending map[uint]int
	subs    map[chan Event]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{
		pending: make(map[uint]int),
		subs:    make(map[chan Event]struct{}),
	}
}

// Begin marks an operation as started for userID and returns its
// release func. Release is safe to call more than once; only the first
// call publishes the finished event. Callers defer it so the handle is
// released even when the operation fails.
func (t *Tracker) Begin(userID uint, op string) (release func()) {
	t.mu.Lock()
	t.pending[userID]++
	t.publishLocked(Event{UserID: userID, Op: op, Started: true, Pending: t.pending[userID], At: time.Now()})
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			if t.pending[userID] > 0 {
				t.pending[userID]--
			}
			left := t.pending[userID]
			if left == 0 {
				delete(t.pending, userID)
			}
			t.publishLocked(Event{UserID: userID, Op: op, Started: false, Pending: left, At: time.Now()})
		})
	}
}

// Pending reports how many operations are in flight for userID.
func (t *Tracker) Pending(userID uint) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending[userID]
}

// Subscribe registers a buffered event channel. Events are dropped for
// subscribers that fall behind rather than blocking operations.
func (t *Tracker) Subscribe(buffer int) chan Event {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	t.mu.Lock()
	t.subs[ch] = struct{}{}
	t.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a channel obtained from Subscribe.
func (t *Tracker) Unsubscribe(ch chan Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.subs[ch]; ok {
		delete(t.subs, ch)
		close(ch)
	}
}

func (t *Tracker) publishLocked(ev Event) {
	for ch := range t.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
