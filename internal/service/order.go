package service

import (
	"atelier/internal/database"
	"atelier/internal/lifecycle"
	"atelier/internal/model"
	"atelier/internal/notify"
	"context"
	"log"
)

// Ship фиксирует отправку заказа курьером.
func (s *Service) Ship(ctx context.Context, ref, courierName, courierTracking string) error {
	ctx, span := s.tracer.Start(ctx, "Service.Ship")
	defer span.End()

	o, err := s.mutateOrder(ctx, ref, "ship", func(_ database.Tx, o *model.StoreOrder) error {
		return lifecycle.Ship(o, courierName, courierTracking)
	})
	if err != nil {
		return err
	}

	ev := orderEvent(notify.EventStatusChanged, notify.AudienceCustomer, o)
	ev.CourierName = o.CourierName
	ev.CourierTracking = o.CourierTracking
	s.notifier.Notify(ctx, ev)
	return nil
}

// Deliver отмечает вручение заказа.
func (s *Service) Deliver(ctx context.Context, ref string) error {
	ctx, span := s.tracer.Start(ctx, "Service.Deliver")
	defer span.End()

	o, err := s.mutateOrder(ctx, ref, "deliver", func(_ database.Tx, o *model.StoreOrder) error {
		return lifecycle.Deliver(o)
	})
	if err != nil {
		return err
	}

	ev := orderEvent(notify.EventStatusChanged, notify.AudienceCustomer, o)
	if o.Phase == model.PhaseRemainingPending {
		ev.Amount = o.RemainingAmount
	}
	s.notifier.Notify(ctx, ev)
	return nil
}

// CancelOrder отменяет заказ до отправки и возвращает все позиции на склад.
func (s *Service) CancelOrder(ctx context.Context, ref, reason string) error {
	ctx, span := s.tracer.Start(ctx, "Service.CancelOrder")
	defer span.End()

	o, err := s.mutateOrder(ctx, ref, "cancel", func(tx database.Tx, o *model.StoreOrder) error {
		if err := lifecycle.CancelOrder(o, reason); err != nil {
			return err
		}
		for _, item := range mergeLines(o.Items) {
			if _, err := tx.LockArtwork(ctx, item.ArtworkID); err != nil {
				return err
			}
			if err := tx.AdjustStock(ctx, item.ArtworkID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("Заказ %s отменен, остатки возвращены на склад", o.TrackingCode)

	ev := orderEvent(notify.EventStatusChanged, notify.AudienceCustomer, o)
	ev.Reason = o.CancelReason
	s.notifier.Notify(ctx, ev)
	return nil
}

func mergeLines(lines []model.LineItem) []model.CartItem {
	items := make([]model.CartItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, model.CartItem{ArtworkID: l.ArtworkID, Quantity: l.Quantity})
	}
	return mergeCart(items)
}
