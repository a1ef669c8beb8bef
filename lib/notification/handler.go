package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"tpo-portal-backend/db"
	eventbus "tpo-portal-backend/lib/event-bus"
	pushdatastore "tpo-portal-backend/lib/notification/push-store"
	"tpo-portal-backend/lib/smtp"
	usersstore "tpo-portal-backend/lib/users/store"
	connectionhub "tpo-portal-backend/lib/ws/hub/connection-hub"
	"tpo-portal-backend/models"
	dbmodels "tpo-portal-backend/models/db"
	wsmodels "tpo-portal-backend/models/ws"
)

// Provider delivers workflow events to their recipients. Delivery failures are logged, never returned.
type Provider interface {
	Notify(ctx context.Context, event models.NotificationEvent, recipientUserID string, payload map[string]string)
}

var Instance Provider

func NewHandler(emailEnabled bool) {
	var mailer smtp.Provider
	if emailEnabled {
		mailer = smtp.Instance
	}
	Instance = NewProvider(
		usersstore.NewInstance(db.DB),
		pushdatastore.NewInstance(db.DB),
		connectionhub.Instance,
		mailer,
		eventbus.Instance,
	)
}

// NewProvider accepts nil hub, mailer and bus, that channel is skipped then
func NewProvider(usersStore usersstore.Provider, pushStore pushdatastore.Provider, hub connectionhub.Provider,
	mailer smtp.Provider, bus eventbus.Provider) Provider {
	return impl{
		usersStore: usersStore,
		pushStore:  pushStore,
		hub:        hub,
		mailer:     mailer,
		bus:        bus,
	}
}

type impl struct {
	usersStore usersstore.Provider
	pushStore  pushdatastore.Provider
	hub        connectionhub.Provider
	mailer     smtp.Provider
	bus        eventbus.Provider
}

// Event is the message published to the event bus
type Event struct {
	ID              string                   `json:"id"`
	Event           models.NotificationEvent `json:"event"`
	RecipientUserID string                   `json:"recipient_user_id"`
	Title           string                   `json:"title"`
	Msg             string                   `json:"msg"`
	Payload         map[string]string        `json:"payload,omitempty"`
	OccurredAt      time.Time                `json:"occurred_at"`
}

func (i impl) getLogger(userID string, event models.NotificationEvent) *log.Entry {
	return log.
		WithField("user_id", userID).
		WithField("event_code", event)
}

func (i impl) Notify(ctx context.Context, event models.NotificationEvent, recipientUserID string, payload map[string]string) {
	if recipientUserID == "" {
		return
	}
	data := models.GetNotificationData(event, payload)
	i.sendInApp(recipientUserID, data)
	i.sendEmail(recipientUserID, data)
	i.publish(ctx, recipientUserID, data, payload)
}

func (i impl) sendInApp(userID string, data models.NotificationData) {
	if i.hub != nil {
		msg := wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     connectionhub.Now(),
			Code:     string(data.Event),
			Title:    data.Title,
			Msg:      data.Msg,
		}
		if i.hub.SendMessage(msg) {
			return
		}
	}
	rec := dbmodels.PushData{
		UserID: userID,
		Code:   data.Event,
		Title:  data.Title,
		Msg:    data.Msg,
	}
	if err := i.pushStore.Create(rec); err != nil {
		i.getLogger(userID, data.Event).WithError(err).Error("failed to store in-app notification")
	}
}

func (i impl) sendEmail(userID string, data models.NotificationData) {
	if i.mailer == nil || !i.mailer.IsConfigured() {
		return
	}
	logger := i.getLogger(userID, data.Event)
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("failed to load notification recipient")
		return
	}
	if user == nil || user.Email == "" {
		return
	}
	if err = i.mailer.SendEMail(user.Email, data.Title, data.Msg); err != nil {
		logger.WithError(err).Error("failed to send email notification")
	}
}

func (i impl) publish(ctx context.Context, userID string, data models.NotificationData, payload map[string]string) {
	if i.bus == nil {
		return
	}
	event := Event{
		ID:              uuid.NewString(),
		Event:           data.Event,
		RecipientUserID: userID,
		Title:           data.Title,
		Msg:             data.Msg,
		Payload:         payload,
		OccurredAt:      time.Now().UTC(),
	}
	if err := i.bus.Publish(ctx, userID, event); err != nil {
		i.getLogger(userID, data.Event).WithError(err).Error("failed to publish notification event")
	}
}
