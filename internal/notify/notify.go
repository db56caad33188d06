package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"eventdesk-console-go/internal/push"
)

const (
	LevelSuccess = "success"
	LevelError   = "error"
	LevelWarning = "warning"
)

// Notice is one transient toast shown to the operator after an action.
type Notice struct {
	ID      string    `json:"id"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Center emits notices to connected websocket clients and keeps a bounded
// recent history for the history endpoint.
type Center struct {
	Hub *push.Hub[Notice]

	mu      sync.Mutex
	recent  []Notice
	maxKept int
}

func NewCenter() *Center {
	return &Center{
		Hub:     push.NewHub[Notice](),
		maxKept: 100,
	}
}

func (c *Center) Success(message string) { c.emit(LevelSuccess, message) }
func (c *Center) Error(message string)   { c.emit(LevelError, message) }
func (c *Center) Warning(message string) { c.emit(LevelWarning, message) }

func (c *Center) emit(level, message string) {
	notice := Notice{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
		At:      time.Now().UTC(),
	}
	c.mu.Lock()
	c.recent = append(c.recent, notice)
	if len(c.recent) > c.maxKept {
		c.recent = c.recent[len(c.recent)-c.maxKept:]
	}
	c.mu.Unlock()
	c.Hub.Broadcast(notice)
}

// Recent returns up to limit notices, newest last.
func (c *Center) Recent(limit int) []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	if limit <= 0 || limit > len(c.recent) {
		limit = len(c.recent)
	}
	out := make([]Notice, limit)
	copy(out, c.recent[len(c.recent)-limit:])
	return out
}
