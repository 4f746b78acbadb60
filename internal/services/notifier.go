package services

import (
	"context"
	"strconv"
	"time"

	"rocketshoes-cart/pkg/logger"
	"rocketshoes-cart/pkg/messaging"
)

// Notification is a single user-visible message about a failed cart operation.
type Notification struct {
	Kind      string `json:"kind"`
	Op        Op     `json:"op"`
	ProductID int64  `json:"product_id"`
	Message   string `json:"message"`
}

// Notifier is a one-way sink for user-visible messages. Implementations must
// not block the caller for long and never report errors back.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

type LogNotifier struct {
	log *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (l *LogNotifier) Notify(_ context.Context, n Notification) {
	l.log.Warn("user notification",
		"kind", n.Kind,
		"op", n.Op,
		"product_id", n.ProductID,
		"message", n.Message,
	)
}

// EventPublisher is satisfied by messaging.KafkaProducer.
type EventPublisher interface {
	SendMessage(ctx context.Context, topic, key string, value interface{}) error
}

type KafkaNotifier struct {
	publisher EventPublisher
	topic     string
	timeout   time.Duration
	log       *logger.Logger
	now       func() time.Time
}

func NewKafkaNotifier(publisher EventPublisher, topic string, log *logger.Logger) *KafkaNotifier {
	return &KafkaNotifier{
		publisher: publisher,
		topic:     topic,
		timeout:   5 * time.Second,
		log:       log,
		now:       time.Now,
	}
}

func (k *KafkaNotifier) Notify(ctx context.Context, n Notification) {
	// a cancelled request must not drop the notification
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), k.timeout)
	defer cancel()

	event := messaging.NotificationEvent{
		Type:    "cart." + n.Kind,
		Title:   titleFor(n.Op),
		Message: n.Message,
		Metadata: map[string]interface{}{
			"op":         string(n.Op),
			"product_id": n.ProductID,
		},
		OccurredAt: k.now().UTC(),
	}

	key := strconv.FormatInt(n.ProductID, 10)
	if err := k.publisher.SendMessage(ctx, k.topic, key, event); err != nil {
		k.log.Error("failed to publish notification", "topic", k.topic, "kind", n.Kind, "error", err)
	}
}

func titleFor(op Op) string {
	switch op {
	case OpAdd:
		return "Add to cart"
	case OpRemove:
		return "Remove from cart"
	default:
		return "Update cart"
	}
}

// MultiNotifier fans a notification out to every wrapped sink in order.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, n Notification) {
	for _, notifier := range m {
		notifier.Notify(ctx, n)
	}
}
