package audit

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docuvault/authgate-go/internal/types"
)

// Event captures one authorization decision. Kept transport-agnostic so
// a later sink (file, collector) can fan out without handler changes.
type Event struct {
	ID         string       `json:"id"`
	At         time.Time    `json:"at"`
	SubjectID  int64        `json:"subject_id"`
	Action     types.Action `json:"action"`
	ResourceID int64        `json:"resource_id"`
	Allowed    bool         `json:"allowed"`
	Reason     string       `json:"reason,omitempty"`
}

// Log is a bounded in-memory decision trail. Oldest entries are evicted
// once cap is reached.
type Log struct {
	mu     sync.RWMutex
	events []Event
	cap    int
}

func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = 256
	}
	return &Log{cap: capacity}
}

func (l *Log) Record(sub types.Subject, action types.Action, resourceID int64, d bool, reason string) Event {
	ev := Event{
		ID:         uuid.NewString(),
		At:         time.Now().UTC(),
		SubjectID:  sub.ID,
		Action:     action,
		ResourceID: resourceID,
		Allowed:    d,
		Reason:     reason,
	}
	l.mu.Lock()
	l.events = append(l.events, ev)
	if len(l.events) > l.cap {
		l.events = l.events[len(l.events)-l.cap:]
	}
	l.mu.Unlock()
	return ev
}

// Recent returns up to n events, newest first.
func (l *Log) Recent(n int) []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if n <= 0 || n > len(l.events) {
		n = len(l.events)
	}
	out := make([]Event, n)
	for i := 0; i < n; i++ {
		out[i] = l.events[len(l.events)-1-i]
	}
	return out
}
