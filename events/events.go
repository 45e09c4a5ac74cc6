package events

import (
	"log/slog"
	"sync"
	"time"
)

type Type string

const (
	BookingSaved   Type = "booking.saved"
	BookingDeleted Type = "booking.deleted"
	LedgerPosted   Type = "ledger.posted"
	LedgerDeleted  Type = "ledger.deleted"
	CloseCreated   Type = "close.created"
	BackupReminder Type = "backup.reminder"
	DataRestored   Type = "data.restored"
)

type Event struct {
	Type    Type      `json:"type"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload,omitempty"`
}

type Publisher interface {
	Publish(event Event)
}

// Bus fans events out to subscribers. A subscriber that falls behind loses
// events instead of blocking the writer that published them.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[int]chan Event
	next        int
	buffer      int
	logger      *slog.Logger
}

func NewBus(buffer int) *Bus {
	return &Bus{
		subscribers: map[int]chan Event{},
		buffer:      buffer,
		logger:      slog.Default().With("component", "events"),
	}
}

func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Event, b.buffer)
	b.subscribers[id] = ch

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			delete(b.subscribers, id)
			close(ch)
		})
	}
}

func (b *Bus) Publish(event Event) {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.logger.Warn("dropping event for slow subscriber", "subscriber", id, "type", event.Type)
		}
	}
}

// Discard is a Publisher that ignores everything.
type Discard struct{}

func (Discard) Publish(Event) {}
