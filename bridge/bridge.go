// Package bridge reports viewer lifecycle events to the spawning host over a
// websocket. The viewer is fully functional without a host: a nil *Bridge is
// valid and every send degrades to a no-op.
package bridge

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Event is one host-bound lifecycle message.
type Event struct {
	Type    string `json:"type"`
	Session string `json:"session"`
	State   string `json:"state,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

const (
	TypeReady    = "ready"
	TypeState    = "state"
	TypeError    = "error"
	TypeDisposed = "disposed"

	// TypeDispose is the only inbound message: the host asking the viewer to
	// shut down.
	TypeDispose = "dispose"
)

type Bridge struct {
	session string
	log     zerolog.Logger

	mu   sync.Mutex
	conn *websocket.Conn
}

// Dial connects to the host's event endpoint.
func Dial(url, session string, log zerolog.Logger) (*Bridge, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("bridge: dial %s: %w", url, err)
	}
	return &Bridge{session: session, log: log, conn: conn}, nil
}

// Listen reads inbound messages until the connection drops, invoking
// onDispose when the host requests shutdown. Intended to run on its own
// goroutine.
func (b *Bridge) Listen(onDispose func()) {
	if b == nil || b.conn == nil {
		return
	}
	for {
		_, raw, err := b.conn.ReadMessage()
		if err != nil {
			return
		}
		var ev Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			b.log.Warn().Err(err).Msg("bridge: bad inbound message")
			continue
		}
		if ev.Type == TypeDispose && onDispose != nil {
			onDispose()
		}
	}
}

func (b *Bridge) send(ev Event) {
	if b == nil || b.conn == nil {
		return
	}
	ev.Session = b.session
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.conn.WriteJSON(ev); err != nil {
		b.log.Warn().Err(err).Str("type", ev.Type).Msg("bridge: send failed")
	}
}

// Ready reports that the scene is constructed and interactive.
func (b *Bridge) Ready() { b.send(Event{Type: TypeReady}) }

// StateChanged reports an animation state transition for host telemetry.
func (b *Bridge) StateChanged(state string) { b.send(Event{Type: TypeState, State: state}) }

// Error reports a non-fatal problem (bad script, missing clip).
func (b *Bridge) Error(err error) {
	if err == nil {
		return
	}
	b.send(Event{Type: TypeError, Detail: err.Error()})
}

// Disposed reports shutdown. The connection closes afterward.
func (b *Bridge) Disposed() { b.send(Event{Type: TypeDisposed}) }

func (b *Bridge) Close() error {
	if b == nil || b.conn == nil {
		return nil
	}
	return b.conn.Close()
}
