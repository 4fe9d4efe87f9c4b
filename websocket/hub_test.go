package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(hub *Hub, id uint) *Client {
	return &Client{
		Hub:  hub,
		ID:   id,
		Role: "manager",
		Send: make(chan []byte, 8),
	}
}

func receive(t *testing.T, client *Client) *Message {
	select {
	case data, ok := <-client.Send:
		if !ok {
			return nil
		}
		var msg Message
		assert.Nil(t, json.Unmarshal(data, &msg))
		return &msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for feed message")
		return nil
	}
}

func TestHubBroadcastsToAllClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := newTestClient(hub, 1)
	second := newTestClient(hub, 2)
	hub.Register <- first
	hub.Register <- second

	hub.Publish(&Message{
		Type:      "review_submitted",
		Timestamp: time.Now(),
		Data:      map[string]interface{}{"review_id": 42},
	})

	for _, client := range []*Client{first, second} {
		msg := receive(t, client)
		assert.NotNil(t, msg)
		assert.Equal(t, "review_submitted", msg.Type)
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient(hub, 1)
	hub.Register <- client
	hub.Unregister <- client

	select {
	case _, ok := <-client.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed on unregister")
	}
}

func TestHubPublishDoesNotBlockWhenFull(t *testing.T) {
	hub := NewHub()
	// Run loop intentionally not started; fill the buffer
	for i := 0; i < cap(hub.Broadcast)+10; i++ {
		hub.Publish(&Message{Type: "review_submitted", Timestamp: time.Now()})
	}
	// Reaching here without deadlock is the assertion
	assert.Equal(t, cap(hub.Broadcast), len(hub.Broadcast))
}
