package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishSubscribe(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()

	h.Publish("one")
	h.Publish("two")

	assert.Equal(t, "one", <-ch)
	assert.Equal(t, "two", <-ch)

	h.Unsubscribe(ch)
	// publish after unsubscribe must not panic on the closed channel
	h.Publish("three")
}

func TestHubDropsWhenSlow(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	// channel buffer is 10; the excess is dropped, not blocked on
	for i := 0; i < 25; i++ {
		h.Publish("evt")
	}
	assert.Len(t, ch, 10)
}

func TestMakeEvent(t *testing.T) {
	raw := MakeEvent("req-1", TypeSyncFinished, 1, map[string]int{"added": 3})

	var e Event
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	assert.Equal(t, TypeSyncFinished, e.Type)
	assert.Equal(t, 1, e.Version)
	assert.Equal(t, "req-1", e.RequestID)
	assert.JSONEq(t, `{"added":3}`, string(e.Data))
	assert.False(t, e.At.IsZero())

	var noData Event
	require.NoError(t, json.Unmarshal([]byte(MakeEvent("", TypeJobCreated, 1, nil)), &noData))
	assert.Empty(t, noData.Data)
}
