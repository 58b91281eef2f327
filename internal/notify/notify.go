package notify

import (
	"atelier/internal/config"
	"atelier/internal/metrics"
	"atelier/internal/model"
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=notify.go -destination=./mocks/notifier_mock.go -package=mocks Notifier

// Notifier публикует события жизненного цикла. Доставка не гарантируется:
// ошибки логируются и считаются, но не возвращаются вызывающему.
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

type EventType string

const (
	EventCommissionSubmitted EventType = "commission_submitted"
	EventQuoteSent           EventType = "quote_sent"
	EventProofReceived       EventType = "proof_received"
	EventProofForReview      EventType = "proof_for_review"
	EventPaymentDecided      EventType = "payment_decided"
	EventOrderPlaced         EventType = "order_placed"
	EventStatusChanged       EventType = "status_changed"
)

// Audience - кому адресовано письмо.
type Audience string

const (
	AudienceCustomer Audience = "customer"
	AudienceAdmin    Audience = "admin"
)

// Event - сообщение в топике уведомлений.
type Event struct {
	ID           string           `json:"id" validate:"required"`
	Type         EventType        `json:"type" validate:"required"`
	Audience     Audience         `json:"audience" validate:"required,oneof=customer admin"`
	TrackingCode string           `json:"tracking_code" validate:"required"`
	Entity       model.EntityType `json:"entity" validate:"required,oneof=commission order"`
	Name         string           `json:"name,omitempty"`
	Email        string           `json:"email,omitempty" validate:"omitempty,email"`
	Status       string           `json:"status,omitempty"`
	Stage        model.Stage      `json:"stage,omitempty"`
	Outcome      model.Outcome    `json:"outcome,omitempty"`
	Reason       string           `json:"reason,omitempty"`
	Amount       int64            `json:"amount,omitempty"`
	// Итог и остаток после аванса, заполняются в письме со стоимостью.
	FinalTotal      int64     `json:"final_total,omitempty"`
	RemainingAmount int64     `json:"remaining_amount,omitempty"`
	CourierName     string    `json:"courier_name,omitempty"`
	CourierTracking string    `json:"courier_tracking_code,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// NewEvent заполняет идентификатор и время события.
func NewEvent(typ EventType, audience Audience, entity model.EntityType, trackingCode string) Event {
	return Event{
		ID:           uuid.NewString(),
		Type:         typ,
		Audience:     audience,
		Entity:       entity,
		TrackingCode: trackingCode,
		OccurredAt:   time.Now().UTC(),
	}
}

// messageWriter - часть kafka.Writer, нужная публикатору.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier публикует события в Kafka в асинхронном режиме.
type KafkaNotifier struct {
	writer messageWriter
	tracer trace.Tracer
}

// NewKafkaNotifier создает публикатор. Writer работает в режиме Async:
// WriteMessages не ждет брокер, результат приходит в Completion.
func NewKafkaNotifier(cfg config.KafkaConfig) *KafkaNotifier {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		Async:        true,
		BatchTimeout: 50 * time.Millisecond,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Printf("Не удалось доставить %d уведомлений: %v", len(messages), err)
				metrics.NotificationsTotal.WithLabelValues("failed").Add(float64(len(messages)))
			}
		},
	}
	return &KafkaNotifier{writer: writer, tracer: otel.Tracer("notifier")}
}

// Notify сериализует событие и ставит его в очередь отправки.
func (n *KafkaNotifier) Notify(ctx context.Context, ev Event) {
	ctx, span := n.tracer.Start(ctx, "Notifier.Notify")
	defer span.End()

	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("Ошибка сериализации уведомления %s: %v", ev.Type, err)
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		return
	}

	// Ключ - трек-номер: события одной сущности попадают в одну партицию по порядку.
	if err := n.writer.WriteMessages(ctx, kafka.Message{Key: []byte(ev.TrackingCode), Value: body}); err != nil {
		log.Printf("Ошибка отправки уведомления %s (%s): %v", ev.Type, ev.TrackingCode, err)
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		return
	}
	metrics.NotificationsTotal.WithLabelValues("queued").Inc()
}

// Close дожидается отправки буфера и закрывает writer.
func (n *KafkaNotifier) Close() {
	if err := n.writer.Close(); err != nil {
		log.Printf("Ошибка закрытия Kafka writer уведомлений: %v", err)
	}
}
