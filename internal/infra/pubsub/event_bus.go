package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"amhara-checkout/internal/infra/metrics"
	"amhara-checkout/internal/pkg/errs"
	"amhara-checkout/internal/usecase/checkout"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	TopicPaymentEvents = "payment-events"

	subscriberBuffer = 16
)

// EventBus fans payment session events out to every subscriber (SSE streams).
type EventBus struct {
	channel *gochannel.GoChannel
	logger  *slog.Logger
}

var (
	_ checkout.EventPublisher  = (*EventBus)(nil)
	_ checkout.EventSubscriber = (*EventBus)(nil)
)

func NewEventBus(logger *slog.Logger) *EventBus {
	// Waiting for acks keeps outcome ahead of closed on every stream.
	ch := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer:            64,
		BlockPublishUntilSubscriberAck: true,
	}, NewSlogAdapter(logger))
	return &EventBus{channel: ch, logger: logger}
}

func (b *EventBus) Publish(ctx context.Context, ev checkout.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "marshal payment event")
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("type", string(ev.Type))
	msg.Metadata.Set("session_id", ev.SessionID.String())

	if err := b.channel.Publish(TopicPaymentEvents, msg); err != nil {
		return errs.Wrap(err, "publish payment event")
	}

	severity := string(checkout.SeverityNone)
	if ev.Outcome != nil {
		severity = string(ev.Outcome.Severity)
	}
	metrics.EventsPublished.WithLabelValues(string(ev.Type), severity).Inc()
	return nil
}

func (b *EventBus) Subscribe(ctx context.Context) (<-chan checkout.Event, error) {
	messages, err := b.channel.Subscribe(ctx, TopicPaymentEvents)
	if err != nil {
		return nil, errs.Wrap(err, "subscribe to payment events")
	}

	out := make(chan checkout.Event, subscriberBuffer)
	go func() {
		defer close(out)
		for msg := range messages {
			var ev checkout.Event
			if err := json.Unmarshal(msg.Payload, &ev); err != nil {
				b.logger.Warn("dropping undecodable payment event", "message_uuid", msg.UUID, "error", err)
				msg.Ack()
				continue
			}
			select {
			case out <- ev:
				msg.Ack()
			case <-ctx.Done():
				msg.Ack()
				// drain until watermill closes the channel
				for m := range messages {
					m.Ack()
				}
				return
			}
		}
	}()
	return out, nil
}

func (b *EventBus) Close() error {
	return b.channel.Close()
}
