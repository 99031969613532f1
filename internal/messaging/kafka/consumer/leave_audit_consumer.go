package consumer

import (
	"context"
	"encoding/json"

	"github.com/kidaholy/human-resource-sub000/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// DecisionRecorder is satisfied by audit.Service.
type DecisionRecorder interface {
	Record(ctx context.Context, event events.LeaveDecidedEvent) error
}

type envelope struct {
	EventType string `json:"event_type"`
}

// ConsumeLeaveLifecycle feeds leave.decided events into the audit trail.
// Messages that cannot be decoded are committed and dropped; a failed
// record is left uncommitted so it is redelivered.
func ConsumeLeaveLifecycle(
	ctx context.Context,
	reader MessageReader,
	recorder DecisionRecorder,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_lifecycle")
	log.Info("leave lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave lifecycle consumer stopped")
				return
			}
			log.Error("fetch leave lifecycle message failed", zap.Error(err))
			continue
		}

		if err := handleMessage(ctx, msg, recorder, log); err != nil {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave lifecycle message failed", zap.Error(err))
		}
	}
}

func handleMessage(ctx context.Context, msg kafkago.Message, recorder DecisionRecorder, log *zap.Logger) error {
	var env envelope
	if err := json.Unmarshal(msg.Value, &env); err != nil {
		log.Error("decode leave lifecycle envelope failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return nil
	}

	if env.EventType != events.EventTypeLeaveDecided {
		log.Debug("skipping leave lifecycle event", zap.String("event_type", env.EventType))
		return nil
	}

	var event events.LeaveDecidedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode leave.decided event failed", zap.Error(err))
		return nil
	}

	if err := recorder.Record(ctx, event); err != nil {
		log.Error("record leave decision failed",
			zap.String("event_id", event.EventID),
			zap.String("leave_id", event.LeaveID),
			zap.Error(err),
		)
		return err
	}

	log.Info("leave decision recorded",
		zap.String("event_id", event.EventID),
		zap.String("leave_id", event.LeaveID),
	)
	return nil
}
