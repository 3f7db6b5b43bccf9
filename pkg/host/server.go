// Package host delivers touch events to a gesture transformer over
// websocket connections and sends back the resulting transform.
package host

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/akeil/multitouch"
	"github.com/akeil/multitouch/internal/errors"
	"github.com/akeil/multitouch/internal/logging"
	"github.com/akeil/multitouch/pkg/affine"
)

const maxMessageSize = 4096

// Server is an http.Handler that upgrades requests to websocket
// connections. Each connection gets its own gesture session.
type Server struct {
	th       multitouch.Thresholds
	upgrader websocket.Upgrader
	mx       sync.Mutex
	conns    map[string]*conn
}

// NewServer creates a server that classifies gestures with the given
// thresholds.
func NewServer(th multitouch.Thresholds) *Server {
	return &Server{
		th: th,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		conns: make(map[string]*conn),
	}
}

// ServeHTTP handles a single websocket connection until it is closed.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an error status
		logging.Warning("Websocket upgrade failed for %v: %v", r.RemoteAddr, err)
		return
	}

	c := newConn(ws, s.th)
	s.add(c)
	defer s.remove(c.id)

	logging.Info("Session %v connected from %v", c.id, r.RemoteAddr)
	c.read()
	logging.Info("Session %v disconnected", c.id)
}

// Sessions returns the number of connected sessions.
func (s *Server) Sessions() int {
	s.mx.Lock()
	defer s.mx.Unlock()
	return len(s.conns)
}

// Transform returns the current transform of the given session.
func (s *Server) Transform(id string) (affine.Matrix, error) {
	s.mx.Lock()
	c, ok := s.conns[id]
	s.mx.Unlock()
	if !ok {
		return affine.Identity(), errors.NewNotFound("session %q", id)
	}
	return c.transform(), nil
}

// Close disconnects all sessions.
func (s *Server) Close() error {
	s.mx.Lock()
	conns := make([]*conn, 0, len(s.conns))
	for _, c := range s.conns {
		conns = append(conns, c)
	}
	s.mx.Unlock()

	for _, c := range conns {
		c.close()
	}
	return nil
}

func (s *Server) add(c *conn) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.conns[c.id] = c
}

func (s *Server) remove(id string) {
	s.mx.Lock()
	defer s.mx.Unlock()
	delete(s.conns, id)
}

// conn is one websocket connection with its gesture session.
// Only the read loop touches the session; mx guards it against
// concurrent lookups from the server.
type conn struct {
	id      string
	ws      *websocket.Conn
	session *multitouch.Session
	seq     int
	mx      sync.Mutex
}

func newConn(ws *websocket.Conn, th multitouch.Thresholds) *conn {
	c := &conn{
		id: uuid.New().String(),
		ws: ws,
	}
	c.session = multitouch.NewSession(th, multitouch.SinkFunc(c.reply))
	return c
}

// read handles messages until the connection fails or is closed.
func (c *conn) read() {
	defer c.ws.Close()
	c.ws.SetReadLimit(maxMessageSize)

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Warning("Session %v read: %v", c.id, err)
			}
			return
		}

		err = c.handle(data)
		if err != nil {
			logging.Warning("Session %v write: %v", c.id, err)
			return
		}
	}
}

// handle decodes and dispatches a message. Malformed or invalid messages
// are answered with an error reply, only write errors are returned.
func (c *conn) handle(data []byte) error {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.seq++

	var msg Message
	var e multitouch.Event
	err := json.Unmarshal(data, &msg)
	if err != nil {
		err = errors.NewValidationError("malformed message: %v", err)
	}
	if err == nil {
		e, err = msg.Event()
	}
	if err == nil {
		err = c.session.Handle(e)
	}
	if err == nil {
		return nil
	}

	if errors.IsValidationError(err) {
		logging.Info("Session %v: rejected message %d: %v", c.id, c.seq, err)
		r := c.newReply(c.session.Transformer().Transform())
		r.Error = err.Error()
		return c.ws.WriteJSON(r)
	}
	return err
}

// reply is the session's sink. It runs with c.mx held.
func (c *conn) reply(m affine.Matrix) error {
	return c.ws.WriteJSON(c.newReply(m))
}

func (c *conn) newReply(m affine.Matrix) Reply {
	return Reply{
		Session: c.id,
		Seq:     c.seq,
		Mode:    c.session.Transformer().Mode().String(),
		Matrix:  m.Aff3(),
	}
}

func (c *conn) transform() affine.Matrix {
	c.mx.Lock()
	defer c.mx.Unlock()
	return c.session.Transformer().Transform()
}

func (c *conn) close() {
	c.mx.Lock()
	defer c.mx.Unlock()
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown")
	err := c.ws.WriteMessage(websocket.CloseMessage, msg)
	if err != nil {
		logging.Debug("Session %v: write close: %v", c.id, err)
	}
	c.ws.Close()
}
