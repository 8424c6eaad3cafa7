package hub

import (
	"context"
	"testing"
	"time"
)

func TestConsumerDeliverForwardsSnapshot(t *testing.T) {
	h := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	c := NewClient("c1", nil, h)
	h.Register(c)

	consumer := &SnapshotConsumer{hub: h}
	consumer.deliver([]byte(`{"cycleId":"from-job","picks":[],"timestamp":"2025-01-15T10:00:00Z","sportsChecked":["NBA"],"errors":[],"month":1}`))

	select {
	case msg := <-c.Send:
		if msg.Payload == nil || msg.Payload.CycleID != "from-job" {
			t.Errorf("payload = %+v", msg.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("published snapshot never reached the client")
	}
}

func TestConsumerDeliverDropsMalformedPayload(t *testing.T) {
	h := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	c := NewClient("c1", nil, h)
	h.Register(c)

	consumer := &SnapshotConsumer{hub: h}
	consumer.deliver([]byte(`not json`))

	select {
	case msg := <-c.Send:
		t.Fatalf("malformed payload delivered: %+v", msg)
	case <-time.After(100 * time.Millisecond):
	}
}
