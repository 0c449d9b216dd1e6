package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchpro/internal/domain"
)

func note(title string) domain.Notification {
	return domain.Notification{Title: title, Severity: domain.SeverityInfo}
}

func TestNotifyAddsAndSchedulesExpiry(t *testing.T) {
	q := NewQueue(10*time.Millisecond, 3)

	cmd := q.Notify(note("hello"))
	require.NotNil(t, cmd)
	require.Equal(t, 1, len(q.Visible()))

	msg := cmd()
	expire, ok := msg.(ExpireMsg)
	require.True(t, ok)
	assert.Equal(t, q.Visible()[0].ID, expire.ID)

	assert.True(t, q.Expire(expire.ID))
	assert.Zero(t, len(q.Visible()))
	assert.False(t, q.Expire(expire.ID))
}

func TestQueueKeepsNewest(t *testing.T) {
	q := NewQueue(0, 2)
	q.Notify(note("a"))
	q.Notify(note("b"))
	q.Notify(note("c"))

	visible := q.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "b", visible[0].Title)
	assert.Equal(t, "c", visible[1].Title)
}

func TestZeroTTLNeverExpires(t *testing.T) {
	q := NewQueue(0, 0)
	assert.Nil(t, q.Notify(note("sticky")))
	assert.Equal(t, 1, len(q.Visible()))
}

func TestExpireOutOfOrder(t *testing.T) {
	q := NewQueue(0, 0)
	q.Notify(note("a"))
	q.Notify(note("b"))
	q.Notify(note("c"))

	ids := []uint64{q.Visible()[0].ID, q.Visible()[1].ID, q.Visible()[2].ID}
	assert.True(t, q.Expire(ids[1]))

	visible := q.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "a", visible[0].Title)
	assert.Equal(t, "c", visible[1].Title)
}
