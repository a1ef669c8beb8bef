package wsclient

import (
	"encoding/json"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	wsmodels "tpo-portal-backend/models/ws"
)

const (
	maxMessageSize = 1024
	idleTimeout    = 2 * time.Minute
)

func NewClient(userID string, c *websocket.Conn) *WsClient {
	return &WsClient{
		conn:   c,
		userID: userID,
	}
}

// WsClient reads the inbound side of a notification connection.
// Outbound messages are written by the connection hub session.
type WsClient struct {
	conn   *websocket.Conn
	userID string
}

// Dispatch blocks until the peer goes away or stays silent longer than the idle timeout
func (c *WsClient) Dispatch() {
	if c.conn == nil || c.conn.Conn == nil {
		return
	}
	logger := log.WithField("user_id", c.userID)
	c.conn.SetReadLimit(maxMessageSize)
	c.touch()
	c.conn.SetPongHandler(func(string) error {
		c.touch()
		return nil
	})
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !isExpectedClose(err) {
				logger.WithError(err).Warn("websocket connection dropped")
			}
			return
		}
		c.touch()
		msg, err := parseClientMessage(data)
		if err != nil {
			logger.WithError(err).Debug("unsupported websocket message")
			continue
		}
		logger.WithField("action", msg.Action).Debug("websocket message received")
	}
}

func (c *WsClient) touch() {
	_ = c.conn.SetReadDeadline(time.Now().Add(idleTimeout))
}

func parseClientMessage(data []byte) (wsmodels.ClientMessage, error) {
	var msg wsmodels.ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return msg, errors.Wrap(err, "invalid message")
	}
	switch msg.Action {
	case wsmodels.ClientActionPing:
		return msg, nil
	default:
		return msg, errors.Errorf("unknown action %q", msg.Action)
	}
}

func isExpectedClose(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived)
}
