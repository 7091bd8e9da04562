package server

import (
	"net"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	readLimit = 2048 // 2KiB

	// Write timeout
	writeWait = 10 * time.Second

	// Ensure a pong is received every 30 seconds
	pongWait = 30 * time.Second

	// Send a ping out every 27 seconds. Must be less than pongWait. If pong doesn't happen with pongWait - pingPeriod, the connection will timeout
	pingPeriod = (pongWait * 9) / 10
)

// WsConn is an interface which implements a subset of the available methods in *websocket.Conn
type WsConn interface {
	Close() error
	ReadJSON(v interface{}) error
	RemoteAddr() net.Addr
	SetPongHandler(func(appDate string) error)
	SetReadDeadline(t time.Time) error
	SetReadLimit(limit int64)
	SetWriteDeadline(t time.Time) error
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
}

// Client represents a user connected via websocket
type Client struct {
	send chan interface{}
	Conn WsConn
}

// NewClient instantiates a new client object.
func NewClient(conn WsConn) *Client {
	return &Client{
		send: make(chan interface{}, 16),
		Conn: conn,
	}
}

// Send will send an object to the client.
func (c *Client) Send(o interface{}) {
	c.send <- o
}

// CloseChannel will close the send channel
func (c *Client) CloseChannel() {
	close(c.send)
}

// RemoteAddr returns the remote address (IP + port) of the client
func (c *Client) RemoteAddr() string {
	return c.Conn.RemoteAddr().String()
}

// WritePump writes messages to the client.
// This method should be called in a separate goroutine.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteJSON(msg); err != nil {
				log.WithFields(log.Fields{"client": c.RemoteAddr()}).Errorf("could not write JSON: %v", err)
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				return
			}
		}
	}
}

// ReadPump reads generation requests sent from the client until the connection closes.
func (c *Client) ReadPump(s *Server) {
	defer func() {
		c.Conn.Close()
	}()

	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetReadLimit(readLimit)
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var r GenerateRequest
		if err := c.Conn.ReadJSON(&r); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithFields(log.Fields{"client": c.RemoteAddr()}).Errorf("could not read JSON: %v", err)
			}
			break
		}

		s.HandleWsRequest(c, &r)
	}
}
