package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tableside/config"
	"tableside/infras/kafka"
	"tableside/infras/otel"
	"tableside/infras/rabbitmq"
	"tableside/shared/constant"
	"tableside/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Type string

const (
	ReservationCreated  Type = "reservation.created"
	ReservationAssigned Type = "reservation.assigned"
	ReservationUpdated  Type = "reservation.updated"
)

// Event is the wire payload shared by every driver.
type Event struct {
	ID            string    `json:"id"`
	Type          Type      `json:"type"`
	ReservationID string    `json:"reservation_id"`
	TableID       *int      `json:"table_id,omitempty"`
	Status        int       `json:"status"`
	Day           string    `json:"day"`
	Actor         string    `json:"actor,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func New(eventType Type, reservationID string, tableID *int, status int, start time.Time, actor string) Event {
	return Event{
		ID:            uuid.NewString(),
		Type:          eventType,
		ReservationID: reservationID,
		TableID:       tableID,
		Status:        status,
		Day:           timezone.Format(start, constant.DayFormat),
		Actor:         actor,
		OccurredAt:    timezone.Now(),
	}
}

func Decode(body []byte) (Event, error) {
	var evt Event
	if err := json.Unmarshal(body, &evt); err != nil {
		return evt, fmt.Errorf("failed to decode event: %w", err)
	}

	return evt, nil
}

type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}

type Subscriber interface {
	// Subscribe blocks until ctx is done.
	Subscribe(ctx context.Context, handler func(ctx context.Context, evt Event) error)
}

type Bus interface {
	Publisher
	Subscriber
	Close() error
}

func topic(cfg *config.Config) string {
	if cfg.Events.Topic != constant.Empty {
		return cfg.Events.Topic
	}

	return constant.DefaultEventTopic
}

// NewBus picks the driver named by EVENTS_DRIVER. An unknown or empty driver only logs.
func NewBus(cfg *config.Config, ot otel.Otel) Bus {
	switch cfg.Events.Driver {
	case constant.EventDriverKafka:
		return &kafkaBus{client: kafka.New(cfg), topic: topic(cfg), group: cfg.Kafka.ConsumerGroup, otel: ot}
	case constant.EventDriverRabbitMQ:
		return &rabbitBus{client: rabbitmq.New(cfg), queue: topic(cfg), otel: ot}
	default:
		log.Warn().Str("driver", cfg.Events.Driver).Msg("No event driver configured, events are only logged")

		return &logBus{}
	}
}

type kafkaBus struct {
	client kafka.Client
	topic  string
	group  string
	otel   otel.Otel
}

func (b *kafkaBus) Publish(ctx context.Context, events ...Event) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".kafka.Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	messages := make([]kafka.Message, len(events))
	for i, evt := range events {
		messages[i] = kafka.Message{Key: evt.ReservationID, Value: evt}
	}

	return b.client.SendMessages(ctx, b.topic, messages...) //nolint:wrapcheck
}

func (b *kafkaBus) Subscribe(ctx context.Context, handler func(ctx context.Context, evt Event) error) {
	b.client.Consume(ctx, b.group, b.topic, func(ctx context.Context, message kafkaGo.Message) error {
		evt, err := Decode(message.Value)
		if err != nil {
			return err
		}

		return handler(ctx, evt)
	})
}

func (b *kafkaBus) Close() error {
	return b.client.Close() //nolint:wrapcheck
}

type rabbitBus struct {
	client rabbitmq.Client
	queue  string
	otel   otel.Otel
}

func (b *rabbitBus) Publish(ctx context.Context, events ...Event) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".rabbitmq.Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	messages := make([]rabbitmq.Message, len(events))
	for i, evt := range events {
		messages[i] = rabbitmq.Message{Key: evt.ID, Value: evt}
	}

	return b.client.SendMessages(ctx, b.queue, messages...) //nolint:wrapcheck
}

func (b *rabbitBus) Subscribe(ctx context.Context, handler func(ctx context.Context, evt Event) error) {
	b.client.Consume(ctx, b.queue, func(ctx context.Context, body []byte) error {
		evt, err := Decode(body)
		if err != nil {
			return err
		}

		return handler(ctx, evt)
	})
}

func (b *rabbitBus) Close() error {
	return b.client.Close() //nolint:wrapcheck
}

type logBus struct{}

func (b *logBus) Publish(_ context.Context, events ...Event) error {
	for _, evt := range events {
		log.Info().Str("type", string(evt.Type)).Str("reservation_id", evt.ReservationID).Msg("event not published, no driver")
	}

	return nil
}

func (b *logBus) Subscribe(ctx context.Context, _ func(ctx context.Context, evt Event) error) {
	log.Warn().Msg("No event driver configured, nothing to consume")
	<-ctx.Done()
}

func (b *logBus) Close() error {
	return nil
}

// PublishAsync publishes after the request returns. Failures are logged only.
func PublishAsync(ctx context.Context, publisher Publisher, events ...Event) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := publisher.Publish(c, events...); err != nil {
			log.Error().Err(err).Msg("failed to publish reservation event")
		}
	}()
}
