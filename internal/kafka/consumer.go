package kafka

import (
	"atelier/internal/config"
	"atelier/internal/mailer"
	"atelier/internal/metrics"
	"atelier/internal/notify"
	"atelier/internal/validator"
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Worker читает события уведомлений и рассылает письма.
type Worker struct {
	reader     messageReader
	dlqWriter  messageWriter // Продюсер для "битых" и недоставленных сообщений
	mailer     mailer.Mailer
	adminEmail string
	tracer     trace.Tracer
	maxTries   uint
	newBackOff func() backoff.BackOff
}

// NewWorker создает воркер уведомлений.
func NewWorker(cfg config.KafkaConfig, m mailer.Mailer, adminEmail string) *Worker {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.Topic,
		MinBytes: 1,
		MaxBytes: 10e6, // 10MB
		MaxWait:  time.Second,
	})

	dlqWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.DLQTopic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Worker{
		reader:     reader,
		dlqWriter:  dlqWriter,
		mailer:     m,
		adminEmail: adminEmail,
		tracer:     otel.Tracer("notification-worker"),
		maxTries:   4,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 500 * time.Millisecond
			b.MaxInterval = 10 * time.Second
			return b
		},
	}
}

// Run запускает цикл чтения до отмены контекста.
func (w *Worker) Run(ctx context.Context) {
	log.Println("Воркер уведомлений запущен...")
	defer func() {
		if err := w.reader.Close(); err != nil {
			log.Printf("Ошибка закрытия Kafka-ридера: %v", err)
		}
		if err := w.dlqWriter.Close(); err != nil {
			log.Printf("Ошибка закрытия Kafka (DLQ) writer: %v", err)
		}
	}()

	for {
		msg, err := w.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Воркер уведомлений останавливается.")
				return
			}
			log.Printf("Ошибка чтения сообщения из Kafka: %v", err)
			continue
		}

		if procErr := w.processMessage(ctx, msg); procErr != nil {
			// Не коммитим: сообщение будет прочитано заново после перезапуска.
			log.Printf("Обработка уведомления %s прервана: %v", string(msg.Key), procErr)
			continue
		}
		if err := w.reader.CommitMessages(ctx, msg); err != nil {
			log.Printf("Ошибка коммита сообщения: %v", err)
		}
	}
}

// processMessage возвращает ошибку только при остановке воркера.
// Все остальные исходы (отправлено, пропущено, ушло в DLQ) коммитятся.
func (w *Worker) processMessage(ctx context.Context, msg kafka.Message) error {
	ctx, span := w.tracer.Start(ctx, "Worker.processMessage")
	defer span.End()

	var ev notify.Event
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		log.Printf("Невалидное JSON-сообщение, отправка в DLQ: %v", err)
		w.sendToDLQ(ctx, msg, "json_unmarshal_error", err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_validation").Inc()
		return nil
	}
	span.SetAttributes(attribute.String("event.type", string(ev.Type)), attribute.String("tracking_code", ev.TrackingCode))

	if err := validator.ValidateStruct(&ev); err != nil {
		log.Printf("Ошибка валидации события %s, отправка в DLQ: %v", ev.ID, err)
		w.sendToDLQ(ctx, msg, "validation_error", err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_validation").Inc()
		return nil
	}

	letter, err := mailer.Compose(ev, w.adminEmail)
	if errors.Is(err, mailer.ErrNoRecipient) {
		log.Printf("Событие %s для %s без адресата, пропускаем", ev.Type, ev.TrackingCode)
		metrics.KafkaMessagesProcessed.WithLabelValues("skipped").Inc()
		return nil
	}
	if err != nil {
		log.Printf("Не удалось составить письмо для %s, отправка в DLQ: %v", ev.ID, err)
		w.sendToDLQ(ctx, msg, "compose_error", err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_validation").Inc()
		return nil
	}

	attempt := 0
	_, sendErr := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		if err := w.mailer.Send(ctx, letter); err != nil {
			log.Printf("Ошибка отправки письма %s (попытка %d/%d): %v", ev.ID, attempt, w.maxTries, err)
			return struct{}{}, err
		}
		return struct{}{}, nil
	}, backoff.WithBackOff(w.newBackOff()), backoff.WithMaxTries(w.maxTries))

	if sendErr != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("Письмо %s не отправлено после %d попыток, отправка в DLQ.", ev.ID, attempt)
		w.sendToDLQ(ctx, msg, "mail_error", sendErr)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_mail_error").Inc()
		return nil
	}

	log.Printf("Уведомление %s (%s) отправлено на %s", ev.Type, ev.TrackingCode, letter.To)
	metrics.KafkaMessagesProcessed.WithLabelValues("success").Inc()
	return nil
}

// sendToDLQ отправляет сообщение в DLQ с причиной в заголовках.
func (w *Worker) sendToDLQ(ctx context.Context, originalMsg kafka.Message, reason string, procErr error) {
	_, span := w.tracer.Start(ctx, "Worker.sendToDLQ")
	defer span.End()

	err := w.dlqWriter.WriteMessages(ctx, kafka.Message{
		Key:   originalMsg.Key,
		Value: originalMsg.Value,
		Headers: []kafka.Header{
			{Key: "X-Original-Topic", Value: []byte(originalMsg.Topic)},
			{Key: "X-Error-Reason", Value: []byte(reason)},
			{Key: "X-Error-Details", Value: []byte(procErr.Error())},
		},
	})

	if err != nil {
		log.Printf("КРИТИЧНО: Не удалось отправить сообщение %s в DLQ: %v", string(originalMsg.Key), err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_failed_write").Inc()
	} else {
		log.Printf("Сообщение %s отправлено в DLQ (Причина: %s)", string(originalMsg.Key), reason)
	}
}
