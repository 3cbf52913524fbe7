// Package channel routes named messages between the application layer and
// host plugins. A Messenger carries raw bytes; a MethodChannel layers method
// calls and replies on top of it with a JSON envelope.
package channel

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/realmbind/pkg/types"
)

// MessageHandler handles one raw message and returns the raw reply.
type MessageHandler func(ctx context.Context, message []byte) ([]byte, error)

// Registration is one installed handler. Removing or replacing it waits for
// dispatches already running on it, so nothing reaches the handler afterward.
type Registration struct {
	m    *Messenger
	name string

	mu      sync.RWMutex
	handler MessageHandler
	closed  bool
}

// dispatch runs the handler. ok is false if the registration was closed
// before the dispatch could start.
func (r *Registration) dispatch(ctx context.Context, message []byte) (reply []byte, ok bool, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, false, nil
	}
	reply, err = r.handler(ctx, message)
	return reply, true, err
}

func (r *Registration) close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
}

// Remove uninstalls the registration. If it was shadowing an earlier one on
// the same channel, the earlier one handles messages again. Removing a
// registration that was already removed or replaced is a no-op. Like
// SetMessageHandler, Remove waits for running dispatches and must not be
// called from inside the handler.
func (r *Registration) Remove() {
	m := r.m
	m.mu.Lock()
	stack := m.handlers[r.name]
	found := false
	for i, reg := range stack {
		if reg == r {
			stack = append(stack[:i:i], stack[i+1:]...)
			found = true
			break
		}
	}
	if found {
		if len(stack) == 0 {
			delete(m.handlers, r.name)
		} else {
			m.handlers[r.name] = stack
		}
	}
	m.mu.Unlock()

	r.close()
	if found {
		m.logger.Debug("channel handler removed", zap.String("channel", r.name), zap.Int("remaining", len(stack)))
	}
}

// Messenger maps channel names to handlers. It is safe for concurrent use.
type Messenger struct {
	mu sync.RWMutex
	// handlers holds a stack per channel; the last entry receives messages.
	handlers map[string][]*Registration
	logger   *zap.Logger
}

// NewMessenger creates an empty Messenger. A nil logger disables logging.
func NewMessenger(logger *zap.Logger) *Messenger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Messenger{
		handlers: make(map[string][]*Registration),
		logger:   logger,
	}
}

// SetMessageHandler installs h for the named channel, replacing every
// previous handler. A nil h removes them all. When handlers are replaced or
// removed, SetMessageHandler returns only after every dispatch already
// running on them has finished; it must not be called from inside one.
func (m *Messenger) SetMessageHandler(name string, h MessageHandler) {
	m.mu.Lock()
	old := m.handlers[name]
	if h == nil {
		delete(m.handlers, name)
	} else {
		m.handlers[name] = []*Registration{{m: m, name: name, handler: h}}
	}
	m.mu.Unlock()

	for _, reg := range old {
		reg.close()
	}
	m.logger.Debug("channel handler updated", zap.String("channel", name), zap.Bool("attached", h != nil))
}

// AddMessageHandler installs h for the named channel on top of any handler
// already there. The returned Registration removes h again without touching
// the others.
func (m *Messenger) AddMessageHandler(name string, h MessageHandler) *Registration {
	reg := &Registration{m: m, name: name, handler: h}

	m.mu.Lock()
	m.handlers[name] = append(m.handlers[name], reg)
	depth := len(m.handlers[name])
	m.mu.Unlock()

	m.logger.Debug("channel handler added", zap.String("channel", name), zap.Int("depth", depth))
	return reg
}

func (m *Messenger) active(name string) *Registration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stack := m.handlers[name]
	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}

// HasHandler reports whether a handler is installed for name.
func (m *Messenger) HasHandler(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.handlers[name]
	return ok
}

// Channels returns the sorted names of channels with a handler.
func (m *Messenger) Channels() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.handlers))
	for name := range m.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Send delivers message to the named channel's handler and returns its reply.
// With no handler installed it returns an error wrapping types.ErrNoHandler
// and the message is not dispatched.
func (m *Messenger) Send(ctx context.Context, name string, message []byte) ([]byte, error) {
	if name == "" {
		return nil, types.ErrChannelEmpty
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for {
		reg := m.active(name)
		if reg == nil {
			m.logger.Debug("message dropped: no handler", zap.String("channel", name))
			return nil, fmt.Errorf("channel %q: %w", name, types.ErrNoHandler)
		}

		reply, ok, err := reg.dispatch(ctx, message)
		if !ok {
			// Removed between lookup and dispatch; retry on whatever is active now.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("channel %q: %w", name, err)
		}
		return reply, nil
	}
}
