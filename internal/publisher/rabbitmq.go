package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"m3u_manager/internal/domain"
)

const (
	routingSourceRefreshed   = "source.refreshed"
	routingStateSynchronized = "channels.synchronized"
)

type RabbitMQ struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
}

type Config struct {
	URL       string
	Exchange  string
	QueueName string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	for _, key := range []string{routingSourceRefreshed, routingStateSynchronized} {
		if err := ch.QueueBind(q.Name, key, cfg.Exchange, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("bind queue: %w", err)
		}
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
	)

	return &RabbitMQ{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		logger:   logger,
	}, nil
}

type SourceRefreshedMessage struct {
	SourceID  int64             `json:"source_id"`
	Kind      domain.SourceKind `json:"kind"`
	Stats     domain.SyncStats  `json:"stats"`
	Timestamp time.Time         `json:"timestamp"`
}

type StateSynchronizedMessage struct {
	Enabled   int       `json:"enabled"`
	Disabled  int       `json:"disabled"`
	Timestamp time.Time `json:"timestamp"`
}

func (r *RabbitMQ) PublishSourceRefreshed(ctx context.Context, stats *domain.SyncStats) error {
	msg := SourceRefreshedMessage{
		SourceID:  stats.SourceID,
		Kind:      stats.Kind,
		Stats:     *stats,
		Timestamp: time.Now().UTC(),
	}

	if err := r.publish(ctx, routingSourceRefreshed, msg); err != nil {
		return err
	}

	r.logger.Debug("published source refresh",
		"source_id", stats.SourceID,
		"kind", stats.Kind,
	)
	return nil
}

func (r *RabbitMQ) PublishStateSynchronized(ctx context.Context, result *domain.SyncResult) error {
	msg := StateSynchronizedMessage{
		Enabled:   result.Enabled,
		Disabled:  result.Disabled,
		Timestamp: time.Now().UTC(),
	}

	if err := r.publish(ctx, routingStateSynchronized, msg); err != nil {
		return err
	}

	r.logger.Debug("published state change",
		"enabled", result.Enabled,
		"disabled", result.Disabled,
	)
	return nil
}

func (r *RabbitMQ) publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
