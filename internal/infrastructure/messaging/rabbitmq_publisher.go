package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/url"
	"strings"
	"sync"

	"github.com/rabbitmq/amqp091-go"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"
)

// RabbitMQNotificationPublisher hands notifications to the delivery workers
// through a durable topic exchange. The routing key is
// "notification.<channel>.<template>".
type RabbitMQNotificationPublisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	mu       sync.Mutex
}

var _ interfaces.INotificationPublisher = (*RabbitMQNotificationPublisher)(nil)

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	if !strings.HasSuffix(clean, "/") {
		clean += "/"
	}
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}

func NewRabbitMQNotificationPublisher(amqpURL, exchange string) (*RabbitMQNotificationPublisher, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}
	conn, err := amqp091.Dial(cleanURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	log.Printf("[messaging][rabbitmq] publisher ready exchange=%s", exchange)
	return &RabbitMQNotificationPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

func (p *RabbitMQNotificationPublisher) Publish(ctx context.Context, n entities.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx, p.exchange, RoutingKey(n), false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    n.ID,
		Timestamp:    n.CreatedAt,
		Body:         body,
	})
}

func (p *RabbitMQNotificationPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

func RoutingKey(n entities.Notification) string {
	return "notification." + string(n.Channel) + "." + n.Template
}

// LogNotificationPublisher is used when no broker is configured.
type LogNotificationPublisher struct{}

var _ interfaces.INotificationPublisher = LogNotificationPublisher{}

func (LogNotificationPublisher) Publish(_ context.Context, n entities.Notification) error {
	log.Printf("[messaging][log] notification routing_key=%s recipient=%s title=%q", RoutingKey(n), n.RecipientID, n.Title)
	return nil
}

// NewNotificationPublisher dials RabbitMQ and falls back to logging when the
// url is empty or the broker is unreachable. The returned func releases the
// connection.
func NewNotificationPublisher(amqpURL, exchange string) (interfaces.INotificationPublisher, func()) {
	if strings.TrimSpace(amqpURL) == "" {
		log.Printf("[messaging][rabbitmq] RABBITMQ_URL empty; notifications are logged only")
		return LogNotificationPublisher{}, func() {}
	}
	p, err := NewRabbitMQNotificationPublisher(amqpURL, exchange)
	if err != nil {
		log.Printf("[messaging][rabbitmq] connect failed; notifications are logged only err=%v", err)
		return LogNotificationPublisher{}, func() {}
	}
	return p, p.Close
}
