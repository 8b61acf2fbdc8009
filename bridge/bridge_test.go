package bridge

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

func TestNilBridgeIsSafe(t *testing.T) {
	var b *Bridge
	b.Ready()
	b.StateChanged("walk")
	b.Error(nil)
	b.Disposed()
	b.Listen(nil)
	if err := b.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}

func TestLifecycleEvents(t *testing.T) {
	upgrader := websocket.Upgrader{}
	received := make(chan Event, 8)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var ev Event
			if err := json.Unmarshal(raw, &ev); err != nil {
				t.Errorf("unmarshal: %v", err)
				return
			}
			received <- ev
		}
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	b, err := Dial(url, "sess-1", zerolog.Nop())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer b.Close()

	b.Ready()
	b.StateChanged("fly")
	b.Disposed()

	want := []Event{
		{Type: TypeReady, Session: "sess-1"},
		{Type: TypeState, Session: "sess-1", State: "fly"},
		{Type: TypeDisposed, Session: "sess-1"},
	}
	for i, w := range want {
		select {
		case got := <-received:
			if got != w {
				t.Fatalf("event %d = %+v, want %+v", i, got, w)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
}

func TestListenDispose(t *testing.T) {
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.WriteJSON(Event{Type: TypeDispose})
		// keep the connection open long enough for the client to read
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	b, err := Dial(url, "sess-2", zerolog.Nop())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer b.Close()

	disposed := make(chan struct{}, 1)
	go b.Listen(func() { disposed <- struct{}{} })

	select {
	case <-disposed:
	case <-time.After(2 * time.Second):
		t.Fatalf("dispose callback never fired")
	}
}
