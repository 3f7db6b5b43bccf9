package host

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/akeil/multitouch"
	"github.com/akeil/multitouch/internal/logging"
)

// Client sends touch events to a Server and receives the replies.
type Client struct {
	url  string
	conn *websocket.Conn
	mx   sync.Mutex
}

// NewClient creates a client for the given websocket URL
// (e.g. "ws://localhost:8080/").
func NewClient(url string) *Client {
	return &Client{url: url}
}

// Connect opens the websocket connection.
func (c *Client) Connect() error {
	c.mx.Lock()
	defer c.mx.Unlock()
	if c.conn != nil {
		return fmt.Errorf("already connected to %q", c.url)
	}

	logging.Debug("Connecting to %q", c.url)
	conn, res, err := websocket.DefaultDialer.Dial(c.url, http.Header{})
	if err != nil {
		if res != nil {
			return fmt.Errorf("websocket connection failed with status %v, error %v", res.StatusCode, err)
		}
		return err
	}

	c.conn = conn
	return nil
}

// Send sends one message and waits for the reply.
func (c *Client) Send(m Message) (Reply, error) {
	c.mx.Lock()
	defer c.mx.Unlock()

	var r Reply
	if c.conn == nil {
		return r, fmt.Errorf("not connected")
	}

	err := c.conn.WriteJSON(m)
	if err != nil {
		return r, err
	}

	err = c.conn.ReadJSON(&r)
	return r, err
}

// SendEvent sends a multitouch.Event.
func (c *Client) SendEvent(e multitouch.Event) (Reply, error) {
	return c.Send(NewMessage(e))
}

// Replay sends all events in order and returns the last reply.
// It stops at the first reply that reports an error.
func (c *Client) Replay(events []multitouch.Event) (Reply, error) {
	var last Reply
	for i, e := range events {
		r, err := c.SendEvent(e)
		if err != nil {
			return last, err
		}
		if r.Error != "" {
			return r, fmt.Errorf("event %d (%v): %v", i, e.Kind, r.Error)
		}
		last = r
	}
	return last, nil
}

// Close closes the connection by sending a close message
// and waiting briefly for the server to hang up.
func (c *Client) Close() error {
	c.mx.Lock()
	defer c.mx.Unlock()
	if c.conn == nil {
		return nil
	}
	defer func() {
		c.conn.Close()
		c.conn = nil
	}()

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	err := c.conn.WriteMessage(websocket.CloseMessage, msg)
	if err != nil {
		return err
	}

	// wait for server to close the connection (or timeout)
	c.conn.SetReadDeadline(time.Now().Add(time.Second))
	for {
		_, _, err = c.conn.ReadMessage()
		if err != nil {
			return nil
		}
	}
}
