package busy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(ch chan Event) []Event {
	var out []Event
	for {
		select {
		case ev := <-ch:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestBeginAndReleasePublishEvents(t *testing.T) {
	tr := NewTracker()
	ch := tr.Subscribe(8)
	defer tr.Unsubscribe(ch)

	done := tr.Begin(42, "POST /owner/units")
	assert.Equal(t, 1, tr.Pending(42))
	done()
	assert.Equal(t, 0, tr.Pending(42))

	evs := drain(ch)
	require.Len(t, evs, 2)
	assert.Equal(t, Event{UserID: 42, Op: "POST /owner/units", Started: true, Pending: 1, At: evs[0].At}, evs[0])
	assert.Equal(t, Event{UserID: 42, Op: "POST /owner/units", Started: false, Pending: 0, At: evs[1].At}, evs[1])
}

func TestReleaseIsIdempotent(t *testing.T) {
	tr := NewTracker()
	ch := tr.Subscribe(8)
	defer tr.Unsubscribe(ch)

	done := tr.Begin(1, "op")
	done()
	done()
	done()

	assert.Equal(t, 0, tr.Pending(1))
	assert.Len(t, drain(ch), 2)
}

func TestReleaseRunsOnFailure(t *testing.T) {
	tr := NewTracker()

	err := func() (err error) {
		done := tr.Begin(7, "op")
		defer done()
		return errors.New("gateway unavailable")
	}()

	assert.Error(t, err)
	assert.Equal(t, 0, tr.Pending(7))
}

func TestOverlappingOperations(t *testing.T) {
	tr := NewTracker()

	a := tr.Begin(5, "a")
	b := tr.Begin(5, "b")
	assert.Equal(t, 2, tr.Pending(5))

	a()
	assert.Equal(t, 1, tr.Pending(5))
	b()
	assert.Equal(t, 0, tr.Pending(5))
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	tr := NewTracker()
	ch := tr.Subscribe(1)
	defer tr.Unsubscribe(ch)

	// More events than the buffer holds; Begin must not block.
	for i := 0; i < 10; i++ {
		tr.Begin(1, "op")()
	}
	assert.Equal(t, 0, tr.Pending(1))
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	tr := NewTracker()
	ch := tr.Subscribe(1)
	tr.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open)

	// Double unsubscribe is a no-op.
	tr.Unsubscribe(ch)
}
