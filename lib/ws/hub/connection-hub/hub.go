package connectionhub

import (
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
	"tpo-portal-backend/db"
	pushdatastore "tpo-portal-backend/lib/notification/push-store"
	wsmodels "tpo-portal-backend/models/ws"
)

const TimeFormat = "02.01.2006 15:04:05"

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string, conn *websocket.Conn)
	SendMessage(msg wsmodels.ServerMessage) bool
	SendClose(userID string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = NewHub(pushdatastore.NewInstance(db.DB))
}

func NewHub(store pushdatastore.Provider) Provider {
	return &impl{
		clients: map[string]clientSession{},
		store:   store,
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[userID]
	store   pushdatastore.Provider
}

// DeleteClient drops the session only while it still belongs to conn, a newer connection of the user is kept
func (i *impl) DeleteClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	sess, ok := i.clients[userID]
	ok = ok && sess.conn == conn
	if ok {
		delete(i.clients, userID)
	}
	i.mu.Unlock()
	if !ok {
		return
	}
	sess.stop()
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	oldSess, ok := i.clients[userID]
	i.clients[userID] = newSession(conn)
	i.mu.Unlock()
	if ok {
		oldSess.stop()
	}
	go i.sendDelayedMessages(userID)
}

// SendMessage reports false when the user has no live session
func (i *impl) SendMessage(msg wsmodels.ServerMessage) bool {
	i.mu.RLock()
	sess, ok := i.clients[msg.ToUserID]
	i.mu.RUnlock()
	if !ok {
		return false
	}
	return sess.enqueue(msg)
}

func (i *impl) SendClose(userID string) {
	i.mu.RLock()
	sess, ok := i.clients[userID]
	i.mu.RUnlock()
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	sess, ok := i.clients[userID]
	i.mu.RUnlock()
	return ok && sess.alive()
}

func (i *impl) sendDelayedMessages(userID string) {
	logger := log.WithField("user_id", userID)
	list, err := i.store.List(userID)
	if err != nil {
		logger.WithError(err).Error("failed to load undelivered notifications")
		return
	}
	sentIDs := []string{}
	for _, item := range list {
		if !i.IsConnected(userID) {
			break
		}
		msg := wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     item.CreatedAt.Format(TimeFormat),
			Code:     string(item.Code),
			Title:    item.Title,
			Msg:      item.Msg,
		}
		if i.SendMessage(msg) {
			sentIDs = append(sentIDs, item.ID)
		}
	}
	if len(sentIDs) > 0 {
		err = i.store.Delete(sentIDs)
		if err != nil {
			logger.WithError(err).Error("failed to delete delivered notifications")
			return
		}
	}
}

func Now() string {
	return time.Now().Format(TimeFormat)
}
