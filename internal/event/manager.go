// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/side/internal/logger"
)

// Handler defines the function signature for event subscribers.
// Returning true marks the event as consumed and stops later handlers.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.DebugTagf("event", "handler subscribed to %v", eventType)
}

// Dispatch sends an event to all registered handlers for its type, synchronously.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	m.mu.RLock()
	handlers := make([]Handler, len(m.handlers[eventType]))
	copy(handlers, m.handlers[eventType]) // Handlers may subscribe while we iterate
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	ev := Event{Type: eventType, Data: data}
	for _, handler := range handlers {
		if handler(ev) {
			break
		}
	}
}
