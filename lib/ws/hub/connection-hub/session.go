package connectionhub

import (
	"context"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	sendQueueSize = 16
	enqueueWait   = time.Second
	writeWait     = 10 * time.Second
	// below the client read idle timeout so an answering browser never expires
	pingPeriod = 50 * time.Second
)

// clientSession owns every write to one connection
type clientSession struct {
	conn   *websocket.Conn
	ctx    context.Context
	sendCh chan any
	stop   func()
}

func newSession(conn *websocket.Conn) clientSession {
	ctx, cancelFn := context.WithCancel(context.Background())
	sess := clientSession{
		stop:   cancelFn,
		ctx:    ctx,
		conn:   conn,
		sendCh: make(chan any, sendQueueSize),
	}
	go sess.writeLoop()
	return sess
}

func (s clientSession) enqueue(msg any) bool {
	select {
	case <-s.ctx.Done():
		return false
	case s.sendCh <- msg:
		return true
	case <-time.After(enqueueWait):
		log.Warn("websocket send queue is full, message dropped")
		return false
	}
}

func (s clientSession) writeLoop() {
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()
	for {
		select {
		case <-s.ctx.Done():
			s.close()
			return
		case msg := <-s.sendCh:
			if err := s.write(msg); err != nil {
				log.WithError(err).Error("failed to send websocket message")
			}
		case <-ping.C:
			if !s.alive() {
				continue
			}
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			if err != nil {
				log.WithError(err).Debug("websocket ping failed")
			}
		}
	}
}

func (s clientSession) alive() bool {
	return s.conn != nil && s.conn.Conn != nil
}

func (s clientSession) write(msg any) error {
	if !s.alive() {
		return nil
	}
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteJSON(msg)
}

func (s clientSession) close() {
	if !s.alive() {
		return
	}
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)); err != nil {
		log.WithError(err).Debug("websocket close frame not sent")
	}
}
