package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// publishTimeout bounds a single result publish.
const publishTimeout = 5 * time.Second

// Publisher sends a result body to a queue.
type Publisher interface {
	Publish(ctx context.Context, queue, correlationID string, body []byte) error
}

// acknowledger is the part of amqp.Delivery used to settle a message.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// message is one delivery as seen by the handler.
type message struct {
	Body          []byte
	CorrelationID string
	ReplyTo       string
	ack           acknowledger
}

// QueueConfig names the queues and the prefetch window.
type QueueConfig struct {
	RequestQueue string
	ResultQueue  string
	Prefetch     int
}

// Consumer reads analysis requests from RabbitMQ.
type Consumer struct {
	conn      *amqp.Connection
	ch        *amqp.Channel
	queues    QueueConfig
	processor *Processor
	publisher Publisher
	logger    *zerolog.Logger
}

// Dial connects to the broker and declares both queues as durable.
func Dial(url string, queues QueueConfig, processor *Processor, logger *zerolog.Logger) (*Consumer, error) {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	if queues.Prefetch <= 0 {
		queues.Prefetch = 1
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	for _, name := range []string{queues.RequestQueue, queues.ResultQueue} {
		if _, err := ch.QueueDeclare(
			name,  // name
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to declare queue %s: %w", name, err)
		}
	}

	if err := ch.Qos(queues.Prefetch, 0, false); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	return &Consumer{
		conn:      conn,
		ch:        ch,
		queues:    queues,
		processor: processor,
		publisher: &channelPublisher{ch: ch},
		logger:    logger,
	}, nil
}

// Run consumes until ctx is cancelled or the channel closes. Prefetch
// goroutines process deliveries concurrently.
func (c *Consumer) Run(ctx context.Context) error {
	deliveries, err := c.ch.Consume(
		c.queues.RequestQueue, // queue
		"",                    // consumer tag, generated by the server
		false,                 // auto-ack
		false,                 // exclusive
		false,                 // no-local
		false,                 // no-wait
		nil,                   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info().
		Str("queue", c.queues.RequestQueue).
		Int("prefetch", c.queues.Prefetch).
		Msg("worker started")

	var wg sync.WaitGroup
	for i := 0; i < c.queues.Prefetch; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case d, ok := <-deliveries:
					if !ok {
						return
					}
					handle(ctx, c.processor, c.publisher, c.queues.ResultQueue, c.logger, message{
						Body:          d.Body,
						CorrelationID: d.CorrelationId,
						ReplyTo:       d.ReplyTo,
						ack:           d,
					})
				}
			}
		}()
	}
	wg.Wait()

	c.logger.Info().Msg("worker stopped")
	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Close closes the channel and the connection.
func (c *Consumer) Close() error {
	_ = c.ch.Close()
	return c.conn.Close()
}

// handle processes one message and settles it. Malformed requests are
// answered with a failed result and dropped. Other failures are requeued.
func handle(ctx context.Context, p *Processor, pub Publisher, resultQueue string, logger *zerolog.Logger, msg message) {
	start := time.Now()
	result, err := p.Process(ctx, msg.Body)

	if err != nil && !IsMalformed(err) {
		logger.Error().Err(err).Str("correlation_id", msg.CorrelationID).Msg("analysis failed, requeueing")
		if nackErr := msg.ack.Nack(false, true); nackErr != nil {
			logger.Error().Err(nackErr).Msg("failed to nack message")
		}
		return
	}

	if result.CorrelationID == "" {
		result.CorrelationID = msg.CorrelationID
	}
	queue := resultQueue
	if msg.ReplyTo != "" {
		queue = msg.ReplyTo
	}

	if pubErr := publishResult(ctx, pub, queue, result); pubErr != nil {
		logger.Error().Err(pubErr).Str("correlation_id", result.CorrelationID).Msg("failed to publish result")
		if err == nil {
			if nackErr := msg.ack.Nack(false, true); nackErr != nil {
				logger.Error().Err(nackErr).Msg("failed to nack message")
			}
			return
		}
	}

	if err != nil {
		logger.Warn().Err(err).Str("correlation_id", result.CorrelationID).Msg("dropping malformed request")
		if nackErr := msg.ack.Nack(false, false); nackErr != nil {
			logger.Error().Err(nackErr).Msg("failed to nack message")
		}
		return
	}

	if ackErr := msg.ack.Ack(false); ackErr != nil {
		logger.Error().Err(ackErr).Msg("failed to ack message")
	}
	logger.Info().
		Str("correlation_id", result.CorrelationID).
		Float64("overall_score", result.Report.OverallScore).
		Bool("saved", result.Saved).
		Dur("duration", time.Since(start)).
		Msg("analysis completed")
}

func publishResult(ctx context.Context, pub Publisher, queue string, result *Result) error {
	body, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	return pub.Publish(ctx, queue, result.CorrelationID, body)
}

// channelPublisher publishes persistent JSON messages on the default exchange.
type channelPublisher struct {
	mu sync.Mutex
	ch *amqp.Channel
}

func (p *channelPublisher) Publish(ctx context.Context, queue, correlationID string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.PublishWithContext(
		ctx,
		"",    // default exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode:  amqp.Persistent,
			ContentType:   "application/json",
			CorrelationId: correlationID,
			Body:          body,
			Timestamp:     time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", queue, err)
	}
	return nil
}
