package events

import (
	"context"
	"encoding/json"
	"time"

	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase"

	amqp "github.com/rabbitmq/amqp091-go"
)

// BookingEventPublisher publishes booking lifecycle events to a durable
// RabbitMQ queue. Messages are persistent so they survive broker
// restarts. Callers treat publish failures as non-fatal.
type BookingEventPublisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

func NewBookingEventPublisher(url, queue string) (*BookingEventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "failed to dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open rabbitmq channel")
	}

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to declare queue")
	}

	return &BookingEventPublisher{
		conn:  conn,
		ch:    ch,
		queue: queue,
	}, nil
}

func (p *BookingEventPublisher) PublishBookingConfirmed(ctx context.Context, event usecase.BookingConfirmedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal booking confirmed event")
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return errs.Wrap(err, "failed to publish booking confirmed event")
	}
	return nil
}

func (p *BookingEventPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
