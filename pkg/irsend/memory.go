package irsend

import (
	"context"
	"sync"
)

// MemoryTransmitter records messages instead of emitting them. It backs tests
// and lets the API run in dry-run mode when no blaster hardware is present.
type MemoryTransmitter struct {
	mu   sync.Mutex
	sent []Message
}

// NewMemoryTransmitter creates a new MemoryTransmitter.
func NewMemoryTransmitter() *MemoryTransmitter {
	return &MemoryTransmitter{}
}

func (m *MemoryTransmitter) Transmit(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

// Sent returns a copy of every message recorded so far.
func (m *MemoryTransmitter) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.sent))
	copy(out, m.sent)
	return out
}

// Last returns the most recently recorded message, or false when nothing has
// been sent.
func (m *MemoryTransmitter) Last() (Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return Message{}, false
	}
	return m.sent[len(m.sent)-1], true
}

// Reset discards the recorded messages.
func (m *MemoryTransmitter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
}

// IsConnected always reports false; there is no hardware behind the recorder.
func (m *MemoryTransmitter) IsConnected() bool {
	return false
}

func (m *MemoryTransmitter) Close() error {
	return nil
}
