package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=stream.go -destination=mock_stream.go -package=handlers

// WebSocket timeouts
const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
	wsBufferSize   = 16
)

// StateStreamer publishes state changes.
type StateStreamer interface {
	StateReader
	Subscribe(fn func(models.StateChange)) (cancel func())
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// NewStateStreamHandler streams state changes over a WebSocket.
// The first message carries the current state; every later message is one
// published change with a higher state version than the last one sent.
// Messages are dropped for a client that cannot keep up.
// @Summary Stream state
// @Description WebSocket stream of state change messages
// @Tags converter
// @Success 101 {object} models.StateChange
// @Router /ws [get]
func NewStateStreamHandler(svc StateStreamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Log.Warnw("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		changes := make(chan models.StateChange, wsBufferSize)
		cancel := svc.Subscribe(func(ch models.StateChange) {
			select {
			case changes <- ch:
			default:
				logger.Log.Warnw("websocket client is slow, dropping state change", "remote", r.RemoteAddr)
			}
		})
		defer cancel()

		// reads only to notice the client going away
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		state, _ := svc.State()
		if err := writeMessage(conn, models.StateChange{State: state, Source: models.SourceEngine}); err != nil {
			return
		}
		sent := state.Version

		ticker := time.NewTicker(wsPingInterval)
		defer ticker.Stop()

		for {
			select {
			case <-closed:
				return
			case <-r.Context().Done():
				return
			case ch := <-changes:
				// changes may arrive out of order; never go back to an older state
				if ch.State.Version <= sent {
					continue
				}
				sent = ch.State.Version
				if err := writeMessage(conn, ch); err != nil {
					logger.Log.Infow("websocket write failed", "remote", r.RemoteAddr, "error", err)
					return
				}
			case <-ticker.C:
				deadline := time.Now().Add(wsWriteTimeout)
				if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
					return
				}
			}
		}
	}
}

func writeMessage(conn *websocket.Conn, ch models.StateChange) error {
	if err := conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(ch)
}

// RegisterStateStreamHandler registers the WebSocket route.
func RegisterStateStreamHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/ws", h)
}
