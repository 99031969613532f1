package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/kidaholy/human-resource-sub000/internal/events"
	"github.com/kidaholy/human-resource-sub000/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeReader serves msgs in order and cancels the consumer once drained.
type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

type fakeRecorder struct {
	recorded []events.LeaveDecidedEvent
	failFor  string
}

func (f *fakeRecorder) Record(ctx context.Context, event events.LeaveDecidedEvent) error {
	if event.EventID == f.failFor {
		return errors.New("store unavailable")
	}
	f.recorded = append(f.recorded, event)
	return nil
}

func message(t *testing.T, offset int64, v any) kafkago.Message {
	t.Helper()
	body, err := json.Marshal(v)
	assert.NoError(t, err)
	return kafkago.Message{Topic: events.LeaveLifecycleTopic, Offset: offset, Value: body}
}

func TestConsumeLeaveLifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	decided := events.LeaveDecidedEvent{EventID: "e-1", EventType: events.EventTypeLeaveDecided, LeaveID: "l-1"}
	failing := events.LeaveDecidedEvent{EventID: "e-2", EventType: events.EventTypeLeaveDecided, LeaveID: "l-2"}
	requested := events.LeaveRequestedEvent{EventID: "e-3", EventType: events.EventTypeLeaveRequested, LeaveID: "l-3"}

	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			message(t, 1, decided),
			message(t, 2, failing),
			message(t, 3, requested),
			{Topic: events.LeaveLifecycleTopic, Offset: 4, Value: []byte("not json")},
		},
	}
	recorder := &fakeRecorder{failFor: "e-2"}

	consumer.ConsumeLeaveLifecycle(ctx, reader, recorder, zap.NewNop())

	assert.Len(t, recorder.recorded, 1)
	assert.Equal(t, "e-1", recorder.recorded[0].EventID)
	// the failed record stays uncommitted for redelivery
	assert.Equal(t, []int64{1, 3, 4}, reader.committed)
}
