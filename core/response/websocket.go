package response

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dmitrymomot/bulwark/core/handler"
)

type wsConfig struct {
	upgrader       *websocket.Upgrader
	responseHeader http.Header
	onConnect      func(context.Context, *websocket.Conn) error
	onDisconnect   func(context.Context, *websocket.Conn)
	onError        func(context.Context, error)
}

// WebSocketOption configures the upgrader and connection lifecycle hooks.
type WebSocketOption func(*wsConfig)

func WithWSReadBuffer(size int) WebSocketOption {
	return func(c *wsConfig) {
		c.upgrader.ReadBufferSize = size
	}
}

func WithWSWriteBuffer(size int) WebSocketOption {
	return func(c *wsConfig) {
		c.upgrader.WriteBufferSize = size
	}
}

func WithWSHandshakeTimeout(timeout time.Duration) WebSocketOption {
	return func(c *wsConfig) {
		c.upgrader.HandshakeTimeout = timeout
	}
}

func WithWSOriginCheck(fn func(r *http.Request) bool) WebSocketOption {
	return func(c *wsConfig) {
		c.upgrader.CheckOrigin = fn
	}
}

func WithWSAllowAnyOrigin() WebSocketOption {
	return func(c *wsConfig) {
		c.upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	}
}

func WithWSSubprotocols(protocols ...string) WebSocketOption {
	return func(c *wsConfig) {
		c.upgrader.Subprotocols = protocols
	}
}

func WithWSUpgradeHeaders(header http.Header) WebSocketOption {
	return func(c *wsConfig) {
		c.responseHeader = header
	}
}

func WithWSOnConnect(fn func(context.Context, *websocket.Conn) error) WebSocketOption {
	return func(c *wsConfig) {
		c.onConnect = fn
	}
}

func WithWSOnDisconnect(fn func(context.Context, *websocket.Conn)) WebSocketOption {
	return func(c *wsConfig) {
		c.onDisconnect = fn
	}
}

func WithWSErrorCallback(fn func(context.Context, error)) WebSocketOption {
	return func(c *wsConfig) {
		c.onError = fn
	}
}

// WebSocket creates a response that upgrades the connection and runs the
// message handler until it returns. A failed handshake surfaces as an
// HTTPError so the dispatcher can classify it; the upgrader has already
// written the handshake refusal at that point, so nothing more goes to the
// client. Errors after a successful upgrade cannot be rendered as HTTP
// responses anymore and are routed to the error callback instead.
func WebSocket(messageHandler func(context.Context, *websocket.Conn) error, opts ...WebSocketOption) handler.Response {
	cfg := &wsConfig{
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) error {
		conn, err := cfg.upgrader.Upgrade(w, r, cfg.responseHeader)
		if err != nil {
			return ErrBadRequest.WithTitle("WebSocket Upgrade Failed").WithError(err)
		}
		defer func() {
			_ = conn.Close()
			if cfg.onDisconnect != nil {
				cfg.onDisconnect(r.Context(), conn)
			}
		}()

		if cfg.onConnect != nil {
			if err := cfg.onConnect(r.Context(), conn); err != nil {
				if cfg.onError != nil {
					cfg.onError(r.Context(), err)
				}
				return nil
			}
		}

		if err := messageHandler(r.Context(), conn); err != nil {
			if cfg.onError != nil {
				cfg.onError(r.Context(), err)
			}
		}
		return nil
	}
}

// EchoWebSocket creates a response that echoes every received message back to
// the client. Intended for connectivity checks and tests.
func EchoWebSocket(opts ...WebSocketOption) handler.Response {
	return WebSocket(func(ctx context.Context, conn *websocket.Conn) error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				msgType, data, err := conn.ReadMessage()
				if err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
						return err
					}
					return nil
				}
				if err := conn.WriteMessage(msgType, data); err != nil {
					return err
				}
			}
		}
	}, opts...)
}
