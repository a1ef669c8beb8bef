package eventbus

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type writerMock struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *writerMock) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *writerMock) Close() error {
	w.closed = true
	return nil
}

func TestPublish(t *testing.T) {
	t.Run(`event encoded as json with key`, func(t *testing.T) {
		w := &writerMock{}
		producer := newProducer(w)
		err := producer.Publish(context.Background(), "user-1", map[string]string{"event": "profile.verified"})
		require.NoError(t, err)
		require.Len(t, w.messages, 1)
		require.Equal(t, []byte("user-1"), w.messages[0].Key)
		decoded := map[string]string{}
		require.NoError(t, json.Unmarshal(w.messages[0].Value, &decoded))
		require.Equal(t, "profile.verified", decoded["event"])
		require.NoError(t, producer.Close())
		require.True(t, w.closed)
	})

	t.Run(`writer error wrapped`, func(t *testing.T) {
		producer := newProducer(&writerMock{err: errors.New("broker unavailable")})
		err := producer.Publish(context.Background(), "user-1", "payload")
		require.Error(t, err)
		require.Contains(t, err.Error(), "broker unavailable")
	})
}

func TestSplitBrokers(t *testing.T) {
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, splitBrokers(" kafka-1:9092, ,kafka-2:9092"))
	require.Empty(t, splitBrokers(""))
}
