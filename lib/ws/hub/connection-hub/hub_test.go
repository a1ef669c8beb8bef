package connectionhub

import (
	"testing"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"
	dbmodels "tpo-portal-backend/models/db"
	wsmodels "tpo-portal-backend/models/ws"
)

type pushStoreMock struct{}

func (m pushStoreMock) Create(rec dbmodels.PushData) error              { return nil }
func (m pushStoreMock) List(userID string) ([]dbmodels.PushData, error) { return nil, nil }
func (m pushStoreMock) Delete(ids []string) error                       { return nil }
func (m pushStoreMock) DeleteOlderThan(moment time.Time) (int64, error) { return 0, nil }

func TestHub(t *testing.T) {
	hub := NewHub(pushStoreMock{}).(*impl)

	t.Run(`stale connection does not drop a newer session`, func(t *testing.T) {
		first := &websocket.Conn{}
		second := &websocket.Conn{}
		hub.AddClient("student-1", first)
		hub.AddClient("student-1", second)

		hub.DeleteClient("student-1", first)
		hub.mu.RLock()
		sess, ok := hub.clients["student-1"]
		hub.mu.RUnlock()
		require.True(t, ok)
		require.Same(t, second, sess.conn)

		hub.DeleteClient("student-1", second)
		hub.mu.RLock()
		_, ok = hub.clients["student-1"]
		hub.mu.RUnlock()
		require.False(t, ok)
	})

	t.Run(`unknown user is not connected`, func(t *testing.T) {
		require.False(t, hub.IsConnected("student-2"))
		require.False(t, hub.SendMessage(wsmodels.ServerMessage{ToUserID: "student-2", Code: "profile.verified"}))
	})
}
