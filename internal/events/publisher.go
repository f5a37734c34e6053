package events

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/lendly/service-rental/internal/kafka"
)

const eventSource = "service-rental"

// Publisher emits booking lifecycle events. Publishing is best effort:
// a broker failure must never fail the booking operation itself.
type Publisher interface {
	BookingRequested(ctx context.Context, evt BookingRequestedEvent)
	BookingDecided(ctx context.Context, evt BookingDecidedEvent)
}

// KafkaPublisher publishes booking events as CloudEvents on Kafka.
type KafkaPublisher struct {
	producer *kafka.Producer
	logger   *zap.Logger
}

// NewKafkaPublisher creates a KafkaPublisher over the given producer.
func NewKafkaPublisher(producer *kafka.Producer, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, logger: logger}
}

// BookingRequested publishes a booking.requested event.
func (p *KafkaPublisher) BookingRequested(ctx context.Context, evt BookingRequestedEvent) {
	p.publish(ctx, BookingRequested, evt.BookingID, evt)
}

// BookingDecided publishes the approval or rejection event matching the decision.
func (p *KafkaPublisher) BookingDecided(ctx context.Context, evt BookingDecidedEvent) {
	eventType := BookingRejected
	if evt.Status == "APPROVED" {
		eventType = BookingApproved
	}
	p.publish(ctx, eventType, evt.BookingID, evt)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType string, bookingID int64, data interface{}) {
	cloudEvent, err := kafka.NewCloudEvent(eventSource, eventType, data)
	if err != nil {
		p.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	key := strconv.FormatInt(bookingID, 10)
	if err := p.producer.PublishEvent(ctx, TopicBookingEvents, key, cloudEvent); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("topic", TopicBookingEvents),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
