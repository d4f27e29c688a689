// Package realtime opens the server's push channel for an authenticated
// session. It only connects and reads; there is no message protocol and no
// reconnection.
package realtime

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	ws "github.com/coder/websocket"
	"github.com/dmitrijs2005/learnhub/internal/logging"
)

// ErrNoCredential is returned by Dial when there is no token to connect with.
var ErrNoCredential = errors.New("realtime: no credential")

// Conn is an open push channel.
type Conn struct {
	conn *ws.Conn
	log  logging.Logger
}

// Endpoint builds {wsBase}/ws?token=<token>.
func Endpoint(wsBase, token string) (string, error) {
	u, err := url.Parse(strings.TrimRight(wsBase, "/") + "/ws")
	if err != nil {
		return "", fmt.Errorf("parse websocket base %q: %w", wsBase, err)
	}
	switch u.Scheme {
	case "ws", "wss":
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("websocket base %q: unsupported scheme %q", wsBase, u.Scheme)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Dial connects to the push channel, authenticating with token.
func Dial(ctx context.Context, wsBase, token string, log logging.Logger) (*Conn, error) {
	if log == nil {
		log = logging.Nop()
	}
	log = log.With("component", "realtime")

	if token == "" {
		return nil, ErrNoCredential
	}
	endpoint, err := Endpoint(wsBase, token)
	if err != nil {
		return nil, err
	}

	conn, _, err := ws.Dial(ctx, endpoint, nil)
	if err != nil {
		log.Error(ctx, "websocket error", "error", err)
		return nil, fmt.Errorf("dial websocket: %w", err)
	}
	log.Info(ctx, "websocket connected", "base", wsBase)
	return &Conn{conn: conn, log: log}, nil
}

// Listen hands every incoming message to fn until the server closes the
// channel, ctx is done, or reading fails. A normal close returns nil.
func (c *Conn) Listen(ctx context.Context, fn func(data []byte)) error {
	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			switch {
			case ctx.Err() != nil:
				c.log.Info(ctx, "websocket disconnected", "reason", ctx.Err())
				return ctx.Err()
			case ws.CloseStatus(err) == ws.StatusNormalClosure || ws.CloseStatus(err) == ws.StatusGoingAway:
				c.log.Info(ctx, "websocket disconnected", "status", ws.CloseStatus(err))
				return nil
			default:
				c.log.Error(ctx, "websocket error", "error", err)
				return fmt.Errorf("read websocket: %w", err)
			}
		}
		fn(data)
	}
}

// Close ends the channel with a normal closure. Closing a channel the server
// already closed is not an error.
func (c *Conn) Close() error {
	err := c.conn.Close(ws.StatusNormalClosure, "")
	c.log.Info(context.Background(), "websocket disconnected")
	if err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}
