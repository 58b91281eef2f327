package service

import (
	"atelier/internal/apperr"
	"atelier/internal/cache"
	"atelier/internal/database"
	"atelier/internal/media"
	"atelier/internal/metrics"
	"atelier/internal/model"
	"atelier/internal/notify"
	"context"
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Service выполняет пользовательские и административные операции над
// заявками и заказами. Каждое изменение состояния идет в одной транзакции
// с блокировкой строки, уведомления отправляются после фиксации.
type Service struct {
	storage  database.Storage
	notifier notify.Notifier
	media    media.Store
	cache    cache.Cache
	tracer   trace.Tracer
	now      func() time.Time
}

func New(storage database.Storage, notifier notify.Notifier, media media.Store, cache cache.Cache) *Service {
	return &Service{
		storage:  storage,
		notifier: notifier,
		media:    media,
		cache:    cache,
		tracer:   otel.Tracer("service"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// mutateCommission блокирует заявку, применяет fn и сохраняет результат.
func (s *Service) mutateCommission(ctx context.Context, ref, action string, fn func(c *model.Commission) error) (*model.Commission, error) {
	var updated *model.Commission
	err := s.storage.InTx(ctx, func(tx database.Tx) error {
		c, err := tx.LockCommission(ctx, ref)
		if err != nil {
			return err
		}
		if err := fn(c); err != nil {
			return err
		}
		c.UpdatedAt = s.now()
		if err := tx.UpdateCommission(ctx, c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	record(model.EntityCommission, action, err)
	if err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, updated.TrackingCode)
	return updated, nil
}

// mutateOrder - то же для заказа. fn получает транзакцию, чтобы вернуть остатки при отмене.
func (s *Service) mutateOrder(ctx context.Context, ref, action string, fn func(tx database.Tx, o *model.StoreOrder) error) (*model.StoreOrder, error) {
	var updated *model.StoreOrder
	err := s.storage.InTx(ctx, func(tx database.Tx) error {
		o, err := tx.LockOrder(ctx, ref)
		if err != nil {
			return err
		}
		if err := fn(tx, o); err != nil {
			return err
		}
		o.UpdatedAt = s.now()
		if err := tx.UpdateOrder(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	record(model.EntityOrder, action, err)
	if err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, updated.TrackingCode)
	return updated, nil
}

func record(entity model.EntityType, action string, err error) {
	result := "ok"
	if err != nil {
		result = apperr.CodeOf(err)
		if apperr.KindOf(err) == apperr.KindInternal {
			log.Printf("Ошибка операции %s над %s: %v", action, entity, err)
		}
	}
	metrics.TransitionsTotal.WithLabelValues(string(entity), action, result).Inc()
}

// resolve определяет тип сущности по префиксу трек-номера.
func resolve(trackingCode string) (model.EntityType, error) {
	entity, ok := model.EntityTypeOf(trackingCode)
	if !ok {
		return "", fmt.Errorf("трек-номер %q: %w", trackingCode, apperr.ErrNotFound)
	}
	return entity, nil
}

func commissionEvent(typ notify.EventType, audience notify.Audience, c *model.Commission) notify.Event {
	ev := notify.NewEvent(typ, audience, model.EntityCommission, c.TrackingCode)
	ev.Name = c.Contact.Name
	if audience == notify.AudienceCustomer {
		ev.Email = c.Contact.Email
	}
	ev.Status = string(c.Status)
	return ev
}

func orderEvent(typ notify.EventType, audience notify.Audience, o *model.StoreOrder) notify.Event {
	ev := notify.NewEvent(typ, audience, model.EntityOrder, o.TrackingCode)
	ev.Name = o.BuyerName
	if audience == notify.AudienceCustomer {
		ev.Email = o.BuyerEmail
	}
	ev.Status = string(o.Phase)
	return ev
}
