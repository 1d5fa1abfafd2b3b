package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"productos/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	amqp "github.com/streadway/amqp"
)

// ProductEventsQueue receives every product change event.
const ProductEventsQueue = "product_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares the
// product events queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareQueue(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logrus.WithField("queue", ProductEventsQueue).Info("RabbitMQ client connected")

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

func declareQueue(ch *amqp.Channel) error {
	_, err := ch.QueueDeclare(
		ProductEventsQueue, // name
		true,               // durable
		false,              // delete when unused
		false,              // exclusive
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare %s: %w", ProductEventsQueue, err)
	}
	return nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// EncodeProductEvent builds the persistent JSON message for an event.
func EncodeProductEvent(event models.ProductEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal product event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Type:         event.Type,
		MessageId:    uuid.NewString(),
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Body:         body,
	}, nil
}

// PublishProductEvent publishes a product event to the product events queue.
func (c *Client) PublishProductEvent(event models.ProductEvent) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	msg, err := EncodeProductEvent(event)
	if err != nil {
		return err
	}

	err = c.channel.Publish(
		"",                 // default exchange
		ProductEventsQueue, // routing key: the queue name
		false,              // mandatory
		false,              // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"event":      event.Type,
		"product_id": event.ProductID,
		"message_id": msg.MessageId,
	}).Debug("Product event published")
	return nil
}

// ConsumeProductEvents registers a consumer on the product events queue and
// processes deliveries in a goroutine. Messages are acked when handler
// returns nil and nacked without requeue otherwise.
func (c *Client) ConsumeProductEvents(handler func(event models.ProductEvent) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		ProductEventsQueue, // queue
		"",                 // consumer tag
		false,              // auto-ack
		false,              // exclusive
		false,              // no-local
		false,              // no-wait
		nil,                // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			if err := HandleDelivery(msg.Body, handler); err != nil {
				logrus.WithError(err).WithField("delivery_tag", msg.DeliveryTag).Error("Error processing product event")
				// Unparseable or failing events would loop forever if requeued.
				if nackErr := msg.Nack(false, false); nackErr != nil {
					logrus.WithError(nackErr).Errorf("Error nacking message %d", msg.DeliveryTag)
				}
				continue
			}
			if ackErr := msg.Ack(false); ackErr != nil {
				logrus.WithError(ackErr).Errorf("Error acking message %d", msg.DeliveryTag)
			}
		}
	}()

	return nil
}

// HandleDelivery decodes a message body and passes the event to handler.
func HandleDelivery(body []byte, handler func(event models.ProductEvent) error) error {
	var event models.ProductEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to decode product event: %w", err)
	}
	return handler(event)
}

// LogProductEvent is a consumer handler that records events in the log.
func LogProductEvent(event models.ProductEvent) error {
	logrus.WithFields(logrus.Fields{
		"event":       event.Type,
		"product_id":  event.ProductID,
		"occurred_at": event.OccurredAt.Format(time.RFC3339),
	}).Info("Received product event")
	return nil
}
