package rabbitmq

//go:generate go run go.uber.org/mock/mockgen -source=./rabbitmq.go -destination=./mocks/rabbitmq_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"tableside/config"
	"tableside/shared/constant"
	"tableside/shared/timezone"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const (
	defaultPrefetch   = 50
	maxReconnectDelay = 30 * time.Second
	reconnectPause    = 2 * time.Second
)

var errDeliveriesClosed = errors.New("deliveries channel closed")

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToPublishing() (amqp.Publishing, error) {
	body, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return amqp.Publishing{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return amqp.Publishing{
		ContentType:  constant.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    m.Key,
		Timestamp:    timezone.Now().UTC(),
		Body:         body,
	}, nil
}

type Client interface {
	// SendMessages publishes to a durable queue through the default exchange.
	SendMessages(ctx context.Context, queue string, messages ...Message) error
	// Consume blocks until ctx is done. A handler error rejects the delivery without requeue.
	Consume(ctx context.Context, queue string, handler func(ctx context.Context, body []byte) error)
	Close() error
}

type rabbitClientImpl struct {
	url      string
	prefetch int

	mu   sync.Mutex
	conn *amqp.Connection
}

func New(config *config.Config) Client {
	prefetch := config.RabbitMQ.Prefetch
	if prefetch <= 0 {
		prefetch = defaultPrefetch
	}

	log.Info().Msg("RabbitMQ client initialized")

	return &rabbitClientImpl{
		url:      config.RabbitMQ.URL,
		prefetch: prefetch,
	}
}

func (r *rabbitClientImpl) connection() (*amqp.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn != nil && !r.conn.IsClosed() {
		return r.conn, nil
	}

	conn, err := amqp.Dial(r.url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial broker: %w", err)
	}

	r.conn = conn

	return conn, nil
}

func (r *rabbitClientImpl) SendMessages(ctx context.Context, queue string, messages ...Message) error {
	conn, err := r.connection()
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("Failed to connect to RabbitMQ.")

		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("Failed to open channel.")

		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("Failed to declare queue.")

		return fmt.Errorf("failed to declare queue: %w", err)
	}

	for _, message := range messages {
		pub, err := message.ToPublishing()
		if err != nil {
			return err
		}

		if err = ch.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
			log.Error().Err(err).Str("queue", queue).Msg("Failed to publish message to RabbitMQ.")

			return fmt.Errorf("failed to publish message to RabbitMQ: %w", err)
		}
	}

	log.Info().Str("queue", queue).Int("count", len(messages)).Msg("Sent message successfully.")

	return nil
}

func (r *rabbitClientImpl) Consume(ctx context.Context, queue string, handler func(ctx context.Context, body []byte) error) {
	backoff := time.Second

	for {
		if ctx.Err() != nil {
			log.Info().Msg("Consumer context done.")

			return
		}

		conn, err := r.connection()
		if err != nil {
			log.Error().Err(err).Dur("retry_in", backoff).Msg("Failed to connect to RabbitMQ, retrying")

			if !sleep(ctx, backoff) {
				return
			}

			backoff = min(backoff*2, maxReconnectDelay)

			continue
		}

		backoff = time.Second

		if err = r.consumeLoop(ctx, conn, queue, handler); err != nil {
			log.Error().Err(err).Str("queue", queue).Msg("Consume loop ended, reconnecting")

			if !sleep(ctx, reconnectPause) {
				return
			}
		}
	}
}

func (r *rabbitClientImpl) consumeLoop(ctx context.Context, conn *amqp.Connection, queue string, handler func(ctx context.Context, body []byte) error) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err = ch.Qos(r.prefetch, 0, false); err != nil {
		log.Warn().Err(err).Msg("Failed to set QoS")
	}

	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx, queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume queue: %w", err)
	}

	for delivery := range deliveries {
		log.Info().Str("queue", queue).Str("message_id", delivery.MessageId).Msg("Received message from RabbitMQ.")

		if err := handler(ctx, delivery.Body); err != nil {
			log.Error().Err(err).Str("queue", queue).Msg("Failed to handle message, rejecting")

			_ = delivery.Nack(false, false)

			continue
		}

		_ = delivery.Ack(false)
	}

	if ctx.Err() != nil {
		return nil
	}

	return errDeliveriesClosed
}

func (r *rabbitClientImpl) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn == nil || r.conn.IsClosed() {
		return nil
	}

	if err := r.conn.Close(); err != nil {
		return fmt.Errorf("failed to close RabbitMQ connection: %w", err)
	}

	return nil
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
