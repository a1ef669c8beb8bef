package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"tpo-portal-backend/models"
	dbmodels "tpo-portal-backend/models/db"
	wsmodels "tpo-portal-backend/models/ws"
)

type usersStoreMock struct {
	users map[string]dbmodels.User
}

func (m usersStoreMock) GetByID(id string) (*dbmodels.User, error) {
	rec, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

type pushStoreMock struct {
	mu    sync.Mutex
	saved []dbmodels.PushData
	err   error
}

func (m *pushStoreMock) Create(rec dbmodels.PushData) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, rec)
	return nil
}

func (m *pushStoreMock) List(userID string) ([]dbmodels.PushData, error) { return nil, nil }
func (m *pushStoreMock) Delete(ids []string) error                       { return nil }
func (m *pushStoreMock) DeleteOlderThan(moment time.Time) (int64, error) { return 0, nil }

type hubMock struct {
	connected map[string]bool
	sent      []wsmodels.ServerMessage
}

func (m *hubMock) AddClient(userID string, conn *websocket.Conn)    {}
func (m *hubMock) DeleteClient(userID string, conn *websocket.Conn) {}
func (m *hubMock) SendClose(userID string)                          {}
func (m *hubMock) IsConnected(userID string) bool                   { return m.connected[userID] }
func (m *hubMock) SendMessage(msg wsmodels.ServerMessage) bool {
	if !m.connected[msg.ToUserID] {
		return false
	}
	m.sent = append(m.sent, msg)
	return true
}

type mailerMock struct {
	configured bool
	sent       []string
}

func (m *mailerMock) IsConfigured() bool { return m.configured }
func (m *mailerMock) SendEMail(to, subject, message string) error {
	m.sent = append(m.sent, to+"|"+subject+"|"+message)
	return nil
}

type busMock struct {
	events []interface{}
	err    error
}

func (m *busMock) Publish(_ context.Context, key string, event interface{}) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}
func (m *busMock) Close() error { return nil }

func TestNotify(t *testing.T) {
	users := usersStoreMock{users: map[string]dbmodels.User{
		"online":  {BaseModel: dbmodels.BaseModel{ID: "online"}, Email: "online@college.edu"},
		"offline": {BaseModel: dbmodels.BaseModel{ID: "offline"}},
	}}

	t.Run(`connected user gets websocket message, email and bus event`, func(t *testing.T) {
		push := &pushStoreMock{}
		hub := &hubMock{connected: map[string]bool{"online": true}}
		mailer := &mailerMock{configured: true}
		bus := &busMock{}
		provider := NewProvider(users, push, hub, mailer, bus)

		provider.Notify(context.Background(), models.EventProfileHold, "online", map[string]string{"issues": "missing marksheet"})

		require.Len(t, hub.sent, 1)
		require.Equal(t, "profile.hold", hub.sent[0].Code)
		require.Equal(t, "Your placement profile needs changes: missing marksheet", hub.sent[0].Msg)
		require.Empty(t, push.saved)
		require.Equal(t, []string{"online@college.edu|Profile on hold|Your placement profile needs changes: missing marksheet"}, mailer.sent)
		require.Len(t, bus.events, 1)
		event := bus.events[0].(Event)
		require.Equal(t, models.EventProfileHold, event.Event)
		require.Equal(t, "online", event.RecipientUserID)
		require.NotEmpty(t, event.ID)
	})

	t.Run(`offline user gets stored push and no email without address`, func(t *testing.T) {
		push := &pushStoreMock{}
		hub := &hubMock{connected: map[string]bool{}}
		mailer := &mailerMock{configured: true}
		provider := NewProvider(users, push, hub, mailer, nil)

		provider.Notify(context.Background(), models.EventProfileVerified, "offline", nil)

		require.Len(t, push.saved, 1)
		require.Equal(t, models.EventProfileVerified, push.saved[0].Code)
		require.Equal(t, "Profile verified", push.saved[0].Title)
		require.Empty(t, mailer.sent)
	})

	t.Run(`channel failures are swallowed`, func(t *testing.T) {
		push := &pushStoreMock{err: errors.New("db down")}
		bus := &busMock{err: errors.New("broker down")}
		provider := NewProvider(users, push, nil, &mailerMock{configured: false}, bus)
		require.NotPanics(t, func() {
			provider.Notify(context.Background(), models.EventApplicationRejected, "offline", map[string]string{"reason": "x", "job_title": "SDE"})
		})
	})

	t.Run(`empty recipient ignored`, func(t *testing.T) {
		push := &pushStoreMock{}
		provider := NewProvider(users, push, nil, nil, nil)
		provider.Notify(context.Background(), models.EventProfileVerified, "", nil)
		require.Empty(t, push.saved)
	})
}
