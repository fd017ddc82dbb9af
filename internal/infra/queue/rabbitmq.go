package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"portfolio-pulse/internal/domain"
	"portfolio-pulse/internal/infra/metrics"
)

// RabbitRefreshQueue carries refresh jobs over an AMQP broker.
type RabbitRefreshQueue struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string

	mu         sync.Mutex
	deliveries <-chan amqp.Delivery
}

var _ domain.RefreshQueue = (*RabbitRefreshQueue)(nil)

// NewRabbitRefreshQueue dials the broker and declares a durable queue.
func NewRabbitRefreshQueue(amqpURL, queue string) (*RabbitRefreshQueue, error) {
	if amqpURL == "" {
		return nil, errors.New("amqp url is empty")
	}
	if queue == "" {
		return nil, errors.New("queue name is empty")
	}
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	return &RabbitRefreshQueue{conn: conn, channel: channel, queue: queue}, nil
}

// Enqueue publishes a job to the queue.
func (q *RabbitRefreshQueue) Enqueue(ctx context.Context, job domain.RefreshJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}
	start := time.Now()
	err = q.channel.PublishWithContext(ctx, "", q.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         payload,
	})
	metrics.ObserveNetworkRequest("rabbitmq", "publish", q.queue, start, err)
	if err != nil {
		return fmt.Errorf("publish job: %w", err)
	}
	return nil
}

// Pop blocks until a job arrives or the context is cancelled. The consumer
// is registered once on first use.
func (q *RabbitRefreshQueue) Pop(ctx context.Context) (domain.RefreshJob, error) {
	q.mu.Lock()
	if q.deliveries == nil {
		deliveries, err := q.channel.Consume(q.queue, "", false, false, false, false, nil)
		if err != nil {
			q.mu.Unlock()
			return domain.RefreshJob{}, fmt.Errorf("consume queue: %w", err)
		}
		q.deliveries = deliveries
	}
	deliveries := q.deliveries
	q.mu.Unlock()

	select {
	case <-ctx.Done():
		return domain.RefreshJob{}, ctx.Err()
	case delivery, ok := <-deliveries:
		if !ok {
			return domain.RefreshJob{}, errors.New("amqp queue: deliveries closed")
		}
		var job domain.RefreshJob
		if err := json.Unmarshal(delivery.Body, &job); err != nil {
			_ = delivery.Nack(false, false)
			return domain.RefreshJob{}, fmt.Errorf("decode job: %w", err)
		}
		if err := delivery.Ack(false); err != nil {
			return domain.RefreshJob{}, fmt.Errorf("ack job: %w", err)
		}
		return job, nil
	}
}

// Close releases the channel and connection.
func (q *RabbitRefreshQueue) Close() error {
	if err := q.channel.Close(); err != nil {
		q.conn.Close()
		return err
	}
	return q.conn.Close()
}
