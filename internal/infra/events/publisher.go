// Package events публикует события жизненного цикла резерваций в RabbitMQ
//
// Публикация никогда не блокирует основной поток запроса: ошибки логируются
// вызывающей стороной и не прерывают операцию.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher издатель событий поверх одного AMQP соединения
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher подключается к брокеру и декларирует durable очереди событий
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	for _, queue := range []string{QueueReservaCreada, QueueReservaAprobada, QueueReservaAnulada} {
		if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			_ = channel.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("%w: declare queue %s: %v", ErrConnect, queue, err)
		}
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// Close закрывает канал и соединение с брокером
func (p *Publisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// Publish публикует событие в указанную очередь.
// Сообщения помечаются persistent, чтобы переживать рестарт брокера.
func (p *Publisher) Publish(ctx context.Context, queue string, event ReservaEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := p.channel.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
		return fmt.Errorf("%w: queue %s: %v", ErrPublish, queue, err)
	}

	return nil
}
