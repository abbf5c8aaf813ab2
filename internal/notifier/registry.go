package notifier

import (
	"sync"

	"card-auction/utils"
)

// LiveConn is the write side of a live delivery channel. Satisfied by
// *websocket.Conn.
type LiveConn interface {
	WriteJSON(v any) error
	Close() error
}

// LiveRegistry tracks live connections keyed by user identity.
// Lifecycle: insert on connect, remove on disconnect, replace on
// reconnect (last connection wins). Injected wherever live delivery is
// needed so tests can fake it.
type LiveRegistry struct {
	mu    sync.RWMutex
	conns map[string]LiveConn
}

// NewLiveRegistry creates an empty registry.
func NewLiveRegistry() *LiveRegistry {
	return &LiveRegistry{conns: make(map[string]LiveConn)}
}

// Register attaches a connection for the given identity, replacing and
// closing any previous one.
func (r *LiveRegistry) Register(key string, conn LiveConn) {
	r.mu.Lock()
	prev := r.conns[key]
	r.conns[key] = conn
	r.mu.Unlock()

	if prev != nil {
		if err := prev.Close(); err != nil {
			utils.Warn("live registry: closing replaced connection", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
		}
	}
}

// Unregister removes the connection for the given identity, but only if
// it is still the registered one. A stale Unregister after a reconnect
// must not drop the newer connection.
func (r *LiveRegistry) Unregister(key string, conn LiveConn) {
	r.mu.Lock()
	if r.conns[key] == conn {
		delete(r.conns, key)
	}
	r.mu.Unlock()
}

// Get returns the live connection for the identity, if any.
func (r *LiveRegistry) Get(key string) (LiveConn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.conns[key]
	return conn, ok
}

// Len returns the number of registered connections.
func (r *LiveRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
