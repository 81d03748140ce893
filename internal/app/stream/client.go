/*
Package stream pushes live session events over a WebSocket connection.

This file defines the Client struct, representing an active WebSocket
connection to one viewer's session. The client is fed by the session's
notification and message listeners and only ever writes; inbound frames
beyond heartbeats are ignored.
*/
package stream

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"ukoradar/internal/app/chat"
	"ukoradar/internal/app/notify"
	"ukoradar/internal/app/session"
	"ukoradar/internal/pkg/logx"
)

const (
	// timeout duration for writing to the WebSocket connection.
	writeWait = 10 * time.Second

	// maximum time allowed for the server to wait for a Pong message from the client.
	pongWait = 60 * time.Second

	// frequency at which the server sends a Ping message.
	pingPeriod = (pongWait * 9) / 10

	// maximum allowed size (in bytes) of a frame sent by the client.
	maxMessageSize = 512
)

// Event frame types pushed to the client.
const (
	TypeNotification        = "NOTIFICATION"
	TypeNotificationRemoved = "NOTIFICATION_REMOVED"
	TypeMessage             = "MESSAGE"
)

// Frame is the envelope for every pushed event.
type Frame struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Client struct represents an active WebSocket connection to a session.
type Client struct {
	sess *session.Session
	conn *websocket.Conn

	// a buffered channel used to queue frames waiting to be sent to the client.
	send chan []byte

	logger zerolog.Logger
}

// NewClient constructs a Client and hooks it into the session's listeners.
func NewClient(sess *session.Session, conn *websocket.Conn) *Client {
	c := &Client{
		sess: sess,
		conn: conn,
		send: make(chan []byte, 256),
		logger: logx.Logger().With().
			Str("component", "StreamClient").
			Str("session_id", sess.ID).
			Logger(),
	}

	sess.Queue.SetListener(func(pushed *notify.Notification, removedID string) {
		if pushed != nil {
			c.enqueue(Frame{Type: TypeNotification, Data: pushed})
			return
		}
		c.enqueue(Frame{Type: TypeNotificationRemoved, Data: map[string]string{"id": removedID}})
	})

	sess.Router.SetAppendListener(func(msg chat.Message) {
		c.enqueue(Frame{Type: TypeMessage, Data: msg})
	})

	return c
}

// enqueue marshals a frame onto the send channel, dropping it if the
// client cannot keep up.
func (c *Client) enqueue(f Frame) {
	frameBytes, err := json.Marshal(f)
	if err != nil {
		c.logger.Error().Err(err).Msg("Error marshaling frame for client")
		return
	}

	select {
	case c.send <- frameBytes:
	default:
		c.logger.Warn().Int("queue_len", len(c.send)).Msg("Client send channel full, dropping frame")
	}
}

// detach unhooks the session listeners and closes the connection.
func (c *Client) detach() {
	c.sess.Queue.SetListener(nil)
	c.sess.Router.SetAppendListener(nil)

	if err := c.conn.Close(); err != nil {
		c.logger.Debug().Err(err).Msg("Client connection close error")
	}
}

// ReadPump drains inbound frames to service heartbeats and detect
// disconnects. It performs cleanup upon connection closure.
func (c *Client) ReadPump() {
	defer c.detach()

	c.conn.SetReadLimit(maxMessageSize)

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set read deadline")
		return
	}

	c.conn.SetPongHandler(func(string) error {
		c.sess.Touch()
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Info().Err(err).Msg("Error reading frame (Client close/going away)")
			}
			return
		}
	}
}

// WritePump writes queued frames and periodic pings to the connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()

		if err := c.conn.Close(); err != nil {
			c.logger.Debug().Err(err).Msg("Client connection close error in WritePump")
		}
	}()

	for {
		select {
		case frame, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Error().Err(err).Msg("Failed to set write deadline")
				return
			}
			if !ok {
				if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.logger.Debug().Err(err).Msg("Error writing close message")
				}
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.logger.Error().Err(err).Msg("Error writing frame")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Error().Err(err).Msg("Failed to set write deadline on ping")
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
