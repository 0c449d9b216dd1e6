package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"searchpro/internal/domain"
)

// Notifier surfaces a transient notification. It is fire-and-forget: the
// returned command only schedules expiry.
type Notifier interface {
	Notify(n domain.Notification) tea.Cmd
}

// Toast is a notification on screen
type Toast struct {
	ID uint64
	domain.Notification
	CreatedAt time.Time
}

// ExpireMsg removes the toast with the given id
type ExpireMsg struct {
	ID uint64
}

// Queue holds the visible toasts, oldest first. It is only touched from the
// Bubble Tea update loop.
type Queue struct {
	ttl    time.Duration
	max    int
	nextID uint64
	items  []Toast
	now    func() time.Time
}

// NewQueue creates a queue. A ttl of 0 keeps toasts until pushed out by
// newer ones; max <= 0 means unbounded.
func NewQueue(ttl time.Duration, max int) *Queue {
	return &Queue{
		ttl: ttl,
		max: max,
		now: time.Now,
	}
}

// Notify adds a toast and returns a command that expires it
func (q *Queue) Notify(n domain.Notification) tea.Cmd {
	q.nextID++
	id := q.nextID
	q.items = append(q.items, Toast{ID: id, Notification: n, CreatedAt: q.now()})
	if q.max > 0 && len(q.items) > q.max {
		q.items = append([]Toast(nil), q.items[len(q.items)-q.max:]...)
	}

	if q.ttl <= 0 {
		return nil
	}
	return tea.Tick(q.ttl, func(time.Time) tea.Msg {
		return ExpireMsg{ID: id}
	})
}

// Expire removes a toast by id and reports whether it was present
func (q *Queue) Expire(id uint64) bool {
	for i, t := range q.items {
		if t.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// Visible returns the toasts currently shown, oldest first
func (q *Queue) Visible() []Toast {
	return append([]Toast(nil), q.items...)
}
