package messaging

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), SubjectProductCreated, map[string]string{"id": "1"}))
	p.Close()
}

func TestNatsPublisher_ClosedConnection(t *testing.T) {
	p := &NatsPublisher{}
	err := p.Publish(context.Background(), SubjectAccountCreated, nil)
	assert.ErrorIs(t, err, nats.ErrConnectionClosed)
}

func TestNatsPublisher_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := (&NatsPublisher{}).Publish(ctx, SubjectAccountCreated, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEventEnvelope(t *testing.T) {
	data, err := json.Marshal(Event{Subject: SubjectProductUpdated, Data: map[string]int{"quantity": 3}})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "products.updated", decoded["subject"])
	assert.Contains(t, decoded, "occurred_at")
	assert.Equal(t, map[string]any{"quantity": float64(3)}, decoded["data"])
}
