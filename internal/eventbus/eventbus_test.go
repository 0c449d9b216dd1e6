package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"searchpro/internal/domain"
)

type recorder struct {
	mu     sync.Mutex
	events []DomainEvent
}

func (r *recorder) handle(e DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestPublishDeliversToSubscribersOfThatType(t *testing.T) {
	b := New(zaptest.NewLogger(t))
	defer b.Close()

	var completed, cleared recorder
	b.Subscribe(domain.EventSearchCompleted, completed.handle)
	b.Subscribe(domain.EventSearchCleared, cleared.handle)

	b.Publish(domain.SearchCompletedEvent{Seq: 1, Count: 3})
	b.Publish(domain.SearchCompletedEvent{Seq: 2, Count: 0})

	require.Eventually(t, func() bool { return completed.count() == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, cleared.count())

	completed.mu.Lock()
	defer completed.mu.Unlock()
	assert.Equal(t, uint64(1), completed.events[0].(domain.SearchCompletedEvent).Seq, "events keep publish order")
	assert.Equal(t, uint64(2), completed.events[1].(domain.SearchCompletedEvent).Seq)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New(zaptest.NewLogger(t))
	defer b.Close()

	var first, second recorder
	unsubscribe := b.Subscribe(domain.EventSearchCleared, first.handle)
	b.Subscribe(domain.EventSearchCleared, second.handle)

	unsubscribe()
	b.Publish(domain.SearchClearedEvent{})

	require.Eventually(t, func() bool { return second.count() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, first.count())
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New(zaptest.NewLogger(t))
	defer b.Close()

	var rec recorder
	b.Subscribe(domain.EventSearchFailed, func(DomainEvent) { panic("boom") })
	b.Subscribe(domain.EventSearchFailed, rec.handle)

	b.Publish(domain.SearchFailedEvent{Seq: 1})
	b.Publish(domain.SearchFailedEvent{Seq: 2})

	require.Eventually(t, func() bool { return rec.count() == 2 }, time.Second, 5*time.Millisecond)
}

func TestCloseIsIdempotent(t *testing.T) {
	b := New(nil)
	b.Close()
	b.Close()
	// Publishing after close must not block or panic.
	b.Publish(domain.SearchClearedEvent{})
}
