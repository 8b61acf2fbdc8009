// bridgehost is a minimal stand-in for an embedding host: it accepts one
// viewer connection, logs every lifecycle event, and can send dispose after a
// deadline. Run it, then start the viewer with -host ws://localhost:8970/events.
package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/fennwick/groundview/bridge"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

func main() {
	addr := flag.String("addr", ":8970", "listen address")
	disposeAfter := flag.Duration("dispose-after", 0, "send dispose this long after ready (0: never)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	http.HandleFunc("/events", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn().Err(err).Msg("upgrade")
			return
		}
		defer conn.Close()
		serve(conn, *disposeAfter, log)
	})

	log.Info().Str("addr", *addr).Msg("bridgehost listening on /events")
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
}

func serve(conn *websocket.Conn, disposeAfter time.Duration, log zerolog.Logger) {
	for {
		var ev bridge.Event
		if err := conn.ReadJSON(&ev); err != nil {
			log.Info().Err(err).Msg("viewer disconnected")
			return
		}
		log.Info().
			Str("type", ev.Type).
			Str("session", ev.Session).
			Str("state", ev.State).
			Str("detail", ev.Detail).
			Msg("event")

		if ev.Type == bridge.TypeReady && disposeAfter > 0 {
			time.AfterFunc(disposeAfter, func() {
				if err := conn.WriteJSON(bridge.Event{Type: bridge.TypeDispose}); err != nil {
					log.Warn().Err(err).Msg("dispose send")
				}
			})
		}
	}
}
