package jsonrpc2

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationMarshal(t *testing.T) {
	note := NewNotification("update", []int{1, 2, 3})
	data, err := json.Marshal(note)
	assert.NoError(t, err)
	assert.Equal(t, `{"jsonrpc":"2.0","method":"update","params":[1,2,3]}`, string(data))
	assert.NotContains(t, string(data), `"id"`)
}

func TestNotificationRoundTrip(t *testing.T) {
	roundTripNotification(t, NewNotification("method", struct{}{}))
	roundTripNotification(t, NewNotification("method", []int{0, 1}))
	roundTripNotification(t, NewNotification("method", testParams{P0: 0, P1: 1}))
}

func roundTripNotification[P any](t *testing.T, note Notification[P]) {
	t.Helper()
	data, err := json.Marshal(note)
	assert.NoError(t, err)
	var decoded Notification[P]
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, note, decoded)
}

func TestNotificationDecodeIgnoresID(t *testing.T) {
	var note Notification[[]int]
	err := json.Unmarshal([]byte(`{"jsonrpc":"2.0","method":"m","params":[1],"id":7}`), &note)
	assert.NoError(t, err)
	assert.Equal(t, NewNotification("m", []int{1}), note)
}

func TestNotificationDecodeMissingMethod(t *testing.T) {
	var note Notification[[]int]
	err := json.Unmarshal([]byte(`{"jsonrpc":"2.0","params":[1]}`), &note)
	assert.ErrorIs(t, err, ErrMissingMethod)
}
