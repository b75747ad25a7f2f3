package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/KetkiGokakkar/LuxuryWatches/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

const orderQueue = "order_events"

// OrderEvent is the message published when an order is placed.
type OrderEvent struct {
	OrderNumber string    `json:"order_number"`
	UserID      uint      `json:"user_id"`
	Total       string    `json:"total"`
	Status      string    `json:"status"`
	ItemCount   int       `json:"item_count"`
	Occurred    time.Time `json:"occurred"`
}

// Publisher pushes order events onto a durable AMQP queue. It is optional:
// a nil *Publisher is safe to call and publishes nothing.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher dials the broker and declares the order events queue.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if _, err := ch.QueueDeclare(orderQueue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: ch}, nil
}

// OrderPlaced publishes after the checkout transaction commits. Publish
// failures are logged, never surfaced to the buyer.
func (p *Publisher) OrderPlaced(order *models.Order) {
	if p == nil {
		return
	}

	event := OrderEvent{
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Total:       order.Total.StringFixed(2),
		Status:      string(order.Status),
		ItemCount:   len(order.Items),
		Occurred:    time.Now(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("order event marshal failed: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, "", orderQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		log.Printf("order event publish failed for %s: %v", order.OrderNumber, err)
	}
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
