package mail

import (
	"context"
	"sync"
)

// Memory is a Mail that keeps messages in memory instead of delivering them.
// Set Err to make every Send fail.
type Memory struct {
	mu       sync.Mutex
	messages []Message
	Err      error
}

// NewMemory returns an empty in-memory sender.
func NewMemory() *Memory {
	return &Memory{}
}

// Send records msg, or returns Err when it is set.
func (m *Memory) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.messages = append(m.messages, msg)
	return nil
}

// Messages returns a copy of the recorded messages in send order.
func (m *Memory) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]Message(nil), m.messages...)
}

// Close implements io.Closer.
func (m *Memory) Close() error {
	return nil
}
