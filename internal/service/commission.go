package service

import (
	"atelier/internal/lifecycle"
	"atelier/internal/model"
	"atelier/internal/notify"
	"atelier/internal/pricing"
	"atelier/internal/validator"
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// SubmitCommission принимает заявку и рассчитывает предварительную цену.
func (s *Service) SubmitCommission(ctx context.Context, req model.CommissionRequest) (*model.SubmitResult, error) {
	ctx, span := s.tracer.Start(ctx, "Service.SubmitCommission")
	defer span.End()

	if err := validator.Check(&req); err != nil {
		return nil, err
	}

	// Цифровая работа не доставляется физически.
	if req.Selection.Medium == model.MediumDigital {
		req.RequiresDelivery = false
		req.Shipping = model.Shipping{}
	}
	if req.RequiresDelivery || !req.Shipping.IsZero() {
		if err := validator.CheckShipping(&req.Shipping); err != nil {
			return nil, err
		}
		if req.Shipping.Country == "" {
			req.Shipping.Country = "India"
		}
	}

	cfg, err := s.storage.GetPricingConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить настройки цен: %w", err)
	}

	now := s.now()
	c := &model.Commission{
		ID:               uuid.NewString(),
		TrackingCode:     model.NewCommissionCode(),
		Contact:          req.Contact,
		Selection:        req.Selection,
		ReferenceImage:   req.ReferenceImage,
		Notes:            req.Notes,
		CalculatedPrice:  pricing.ComputePrice(req.Selection, cfg),
		RequiresDelivery: req.RequiresDelivery,
		Shipping:         req.Shipping,
		Status:           model.CommissionPending,
		PaymentStatus:    model.LegacyPaymentPending,
		AdvanceStatus:    model.VerificationNone,
		FinalStatus:      model.VerificationNone,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.storage.CreateCommission(ctx, c); err != nil {
		record(model.EntityCommission, "submit", err)
		return nil, err
	}
	record(model.EntityCommission, "submit", nil)
	log.Printf("Заявка %s принята, предварительная цена %d", c.TrackingCode, c.CalculatedPrice)

	for _, audience := range []notify.Audience{notify.AudienceCustomer, notify.AudienceAdmin} {
		ev := commissionEvent(notify.EventCommissionSubmitted, audience, c)
		ev.Amount = c.CalculatedPrice
		s.notifier.Notify(ctx, ev)
	}

	return &model.SubmitResult{TrackingCode: c.TrackingCode, ProvisionalAmount: c.CalculatedPrice}, nil
}

// SendQuote выставляет итоговую сумму и аванс.
func (s *Service) SendQuote(ctx context.Context, ref string, finalTotal, advance int64) error {
	ctx, span := s.tracer.Start(ctx, "Service.SendQuote")
	defer span.End()

	c, err := s.mutateCommission(ctx, ref, "send_quote", func(c *model.Commission) error {
		return lifecycle.SendQuote(c, finalTotal, advance)
	})
	if err != nil {
		return err
	}

	ev := commissionEvent(notify.EventQuoteSent, notify.AudienceCustomer, c)
	ev.Amount = advance
	ev.FinalTotal = finalTotal
	if c.RemainingAmount != nil {
		ev.RemainingAmount = *c.RemainingAmount
	}
	s.notifier.Notify(ctx, ev)
	return nil
}

// MarkComplete отмечает завершение работы над заявкой.
func (s *Service) MarkComplete(ctx context.Context, ref string) error {
	ctx, span := s.tracer.Start(ctx, "Service.MarkComplete")
	defer span.End()

	var finalDue bool
	c, err := s.mutateCommission(ctx, ref, "mark_complete", func(c *model.Commission) (err error) {
		finalDue, err = lifecycle.MarkComplete(c)
		return err
	})
	if err != nil {
		return err
	}

	ev := commissionEvent(notify.EventStatusChanged, notify.AudienceCustomer, c)
	if finalDue && c.RemainingAmount != nil {
		ev.Amount = *c.RemainingAmount
	}
	s.notifier.Notify(ctx, ev)
	return nil
}

// RejectCommission отменяет заявку до начала работы.
func (s *Service) RejectCommission(ctx context.Context, ref, reason string) error {
	ctx, span := s.tracer.Start(ctx, "Service.RejectCommission")
	defer span.End()

	c, err := s.mutateCommission(ctx, ref, "reject", func(c *model.Commission) error {
		return lifecycle.RejectCommission(c, reason)
	})
	if err != nil {
		return err
	}

	ev := commissionEvent(notify.EventStatusChanged, notify.AudienceCustomer, c)
	ev.Reason = c.CancelReason
	s.notifier.Notify(ctx, ev)
	return nil
}

// LegacyAccept переводит заявку в работу по старой одноэтапной схеме.
func (s *Service) LegacyAccept(ctx context.Context, ref string) error {
	ctx, span := s.tracer.Start(ctx, "Service.LegacyAccept")
	defer span.End()

	c, err := s.mutateCommission(ctx, ref, "legacy_accept", lifecycle.LegacyAccept)
	if err != nil {
		return err
	}

	s.notifier.Notify(ctx, commissionEvent(notify.EventStatusChanged, notify.AudienceCustomer, c))
	return nil
}
