package server

import (
	"errors"
	"html/template"
	"net"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

var panicError string

func TestSendAndClose(t *testing.T) {
	c := NewClient(nil)
	c.Send("Test")
	a := <-c.send
	assert.Equal(t, "Test", a.(string))

	c.CloseChannel()
	capturePanic(func() {
		c.send <- true
	})
	assert.Equal(t, "send on closed channel", panicError)
}

func TestRemoteAddr(t *testing.T) {
	conn := newWsConn()
	conn.addr = &addr{"1.2.3.4"}

	c := NewClient(conn)
	assert.Equal(t, "1.2.3.4", c.RemoteAddr())
}

func TestWritePump(t *testing.T) {
	conn := newWsConn()
	c := NewClient(conn)

	go func() {
		c.send <- "Test"
		c.CloseChannel()
	}()

	c.WritePump()

	assert.Equal(t, 2, len(conn.writeDeadline))
	assert.True(t, conn.writeDeadline[1].After(conn.writeDeadline[0]) || conn.writeDeadline[1].Equal(conn.writeDeadline[0]))
	assert.True(t, conn.writeDeadline[1].After(time.Now()))
	assert.Equal(t, "Test", conn.writeJSON.(string))
	assert.Equal(t, websocket.CloseMessage, conn.writeMessageType)
	assert.Equal(t, 1, conn.closeInvoked)
}

func TestReadPump(t *testing.T) {
	conn := newWsConn()
	conn.addr = &addr{"1.2.3.4"}
	conn.requests = []GenerateRequest{
		{Amount: intPtr(2), Length: intPtr(5), Mode: "alphabet", Next: "z"},
		{Mode: "wordfile", Next: "/etc/passwd"},
	}
	c := NewClient(conn)
	s := &Server{templates: template.Must(template.New("index").Parse(""))}

	c.ReadPump(s)
	assert.Equal(t, 1, conn.closeInvoked)

	res := (<-c.send).(*GenerateResponse)
	assert.Equal(t, []string{"zzzzz", "zzzzz"}, res.Strings)
	assert.Empty(t, res.Error)

	res = (<-c.send).(*GenerateResponse)
	assert.Nil(t, res.Strings)
	assert.Equal(t, ErrFileMode.Error(), res.Error)

	assert.Equal(t, int64(2), s.Generated())
}

type wsConn struct {
	addr             *addr
	closeInvoked     int
	requests         []GenerateRequest
	writeDeadline    []time.Time
	writeMessageType int
	writeMessageData []byte
	writeJSON        interface{}
}

func newWsConn() *wsConn {
	return &wsConn{
		writeDeadline: make([]time.Time, 0),
	}
}

type addr struct{ ip string }

func (a *addr) Network() string {
	return ""
}

func (a *addr) String() string {
	return a.ip
}

var errConnClosed = &websocket.CloseError{Code: websocket.CloseNormalClosure}

func (c *wsConn) Close() error { c.closeInvoked++; return nil }
func (c *wsConn) ReadJSON(v interface{}) error {
	if len(c.requests) == 0 {
		return errConnClosed
	}
	r, ok := v.(*GenerateRequest)
	if !ok {
		return errors.New("unexpected type")
	}
	*r = c.requests[0]
	c.requests = c.requests[1:]
	return nil
}
func (c *wsConn) RemoteAddr() net.Addr                      { return c.addr }
func (c *wsConn) SetPongHandler(func(appDate string) error) {}
func (c *wsConn) SetReadDeadline(t time.Time) error         { return nil }
func (c *wsConn) SetReadLimit(limit int64)                  {}
func (c *wsConn) SetWriteDeadline(t time.Time) error {
	c.writeDeadline = append(c.writeDeadline, t)
	return nil
}
func (c *wsConn) WriteJSON(v interface{}) error { c.writeJSON = v; return nil }
func (c *wsConn) WriteMessage(messageType int, data []byte) error {
	c.writeMessageType = messageType
	c.writeMessageData = data
	return nil
}

func intPtr(n int) *int {
	return &n
}

func capturePanic(fn func()) {
	panicError = ""

	defer func() {
		if r := recover(); r != nil {
			panicError = r.(error).Error()
		}
	}()

	fn()
}
