package wsclient

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParseClientMessage(t *testing.T) {
	t.Run("ping", func(t *testing.T) {
		msg, err := parseClientMessage([]byte(`{"action":"ping"}`))
		require.NoError(t, err)
		require.Equal(t, "ping", msg.Action)
	})
	t.Run("unknown action", func(t *testing.T) {
		_, err := parseClientMessage([]byte(`{"action":"approve"}`))
		require.EqualError(t, err, `unknown action "approve"`)
	})
	t.Run("not json", func(t *testing.T) {
		_, err := parseClientMessage([]byte(`hello`))
		require.ErrorContains(t, err, "invalid message")
	})
}

func TestIsExpectedClose(t *testing.T) {
	require.False(t, isExpectedClose(errors.New("read tcp: i/o timeout")))
}
