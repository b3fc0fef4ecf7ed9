// Package realtime subscribes to the backend's shipper notification
// channel. A subscription is scoped: acquired when a shipper view starts,
// released unconditionally when it stops, so no callback can fire against
// a torn-down view.
package realtime

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// Notification is a push message from the backend; Message may be empty.
type Notification struct {
	Message string `json:"message"`
}

// Handler consumes notifications. It runs on the subscription's read
// goroutine and must not block for long.
type Handler func(Notification)

// Dialer opens shipper notification subscriptions. One connection per
// shipper session.
type Dialer struct {
	baseURL string
	logger  *log.Logger
}

func NewDialer(baseURL string, logger *log.Logger) *Dialer {
	return &Dialer{baseURL: strings.TrimSuffix(baseURL, "/"), logger: logger}
}

// Subscribe connects to the shipper's channel and delivers notifications
// to fn until the returned handle is closed or the connection drops.
// Closing the handle is always safe, including more than once.
func (d *Dialer) Subscribe(ctx context.Context, shipperID string, fn Handler) (io.Closer, error) {
	endpoint := d.baseURL + "/ws/shipper/" + url.PathEscape(shipperID)
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, fmt.Errorf("dial shipper channel: %w", err)
	}

	sub := &subscription{conn: conn, logger: d.logger}
	go sub.readLoop(fn)
	return sub, nil
}

type subscription struct {
	conn   *websocket.Conn
	logger *log.Logger
	once   sync.Once
}

func (s *subscription) readLoop(fn Handler) {
	for {
		var note Notification
		if err := s.conn.ReadJSON(&note); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Printf("shipper channel closed: %v", err)
			}
			return
		}
		fn(note)
	}
}

// Close tears the connection down; the read loop exits on the resulting
// read error and no further callbacks are delivered.
func (s *subscription) Close() error {
	s.once.Do(func() {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = s.conn.WriteMessage(websocket.CloseMessage, msg)
		_ = s.conn.Close()
	})
	return nil
}
