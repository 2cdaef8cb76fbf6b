package analytics

import (
	"context"
	"encoding/json"
	"time"

	"stagenight/internal/pkg/config"
	"stagenight/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher writes analytics events to a durable RabbitMQ queue. Each publish
// dials its own connection; the traffic volume here is a handful of events
// per household, not a stream.
type Publisher struct {
	cfg config.AMQPConfig
}

func NewPublisher(cfg config.AMQPConfig) *Publisher {
	return &Publisher{cfg: cfg}
}

type envelope struct {
	Kind       string         `json:"kind"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

func (p *Publisher) Record(ctx context.Context, eventKind string, payload map[string]any) error {
	conn, err := amqp.Dial(p.cfg.URL)
	if err != nil {
		return errs.Wrap(err, "failed to dial amqp broker")
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return errs.Wrap(err, "failed to open amqp channel")
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so events survive broker restarts.
	if _, err := ch.QueueDeclare(p.cfg.QueueName, true, false, false, false, nil); err != nil {
		return errs.Wrap(err, "failed to declare analytics queue")
	}

	body, err := json.Marshal(envelope{
		Kind:       eventKind,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal analytics event")
	}

	err = ch.PublishWithContext(ctx, "", p.cfg.QueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return errs.Wrap(err, "failed to publish analytics event")
	}

	return nil
}
