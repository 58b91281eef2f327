package service

import (
	"atelier/internal/apperr"
	"atelier/internal/database"
	"atelier/internal/lifecycle"
	"atelier/internal/model"
	"atelier/internal/notify"
	"context"
	"fmt"
	"io"
)

const proofFolder = "proofs"

// SubmitProof сохраняет изображение подтверждения оплаты и ставит этап на проверку.
func (s *Service) SubmitProof(ctx context.Context, trackingCode string, stage model.Stage, file io.Reader) (string, error) {
	ctx, span := s.tracer.Start(ctx, "Service.SubmitProof")
	defer span.End()

	if !stage.Valid() {
		return "", fmt.Errorf("этап %q: %w", stage, apperr.ErrInvalidRequest)
	}
	entity, err := resolve(trackingCode)
	if err != nil {
		return "", err
	}

	// Проверяем существование до сохранения файла.
	if entity == model.EntityCommission {
		_, err = s.storage.GetCommission(ctx, trackingCode)
	} else {
		_, err = s.storage.GetOrder(ctx, trackingCode)
	}
	if err != nil {
		return "", err
	}

	ref, err := s.media.Save(ctx, proofFolder, file)
	if err != nil {
		return "", err
	}

	var customer, admin notify.Event
	if entity == model.EntityCommission {
		c, err := s.mutateCommission(ctx, trackingCode, "submit_proof", func(c *model.Commission) error {
			return lifecycle.SubmitCommissionProof(c, stage, ref)
		})
		if err != nil {
			return "", err
		}
		customer = commissionEvent(notify.EventProofReceived, notify.AudienceCustomer, c)
		admin = commissionEvent(notify.EventProofForReview, notify.AudienceAdmin, c)
	} else {
		o, err := s.mutateOrder(ctx, trackingCode, "submit_proof", func(_ database.Tx, o *model.StoreOrder) error {
			return lifecycle.SubmitOrderProof(o, stage, ref)
		})
		if err != nil {
			return "", err
		}
		customer = orderEvent(notify.EventProofReceived, notify.AudienceCustomer, o)
		admin = orderEvent(notify.EventProofForReview, notify.AudienceAdmin, o)
	}

	for _, ev := range []notify.Event{customer, admin} {
		ev.Stage = stage
		s.notifier.Notify(ctx, ev)
	}
	return ref, nil
}

// DecidePayment фиксирует решение администратора по этапу оплаты.
// Повторное решение по тому же этапу возвращает ErrAlreadyDecided.
func (s *Service) DecidePayment(ctx context.Context, entity model.EntityType, ref string, stage model.Stage, outcome model.Outcome, reason string) error {
	ctx, span := s.tracer.Start(ctx, "Service.DecidePayment")
	defer span.End()

	var ev notify.Event
	switch entity {
	case model.EntityCommission:
		c, err := s.mutateCommission(ctx, ref, "decide_payment", func(c *model.Commission) error {
			return lifecycle.DecideCommissionPayment(c, stage, outcome, reason)
		})
		if err != nil {
			return err
		}
		ev = commissionEvent(notify.EventPaymentDecided, notify.AudienceCustomer, c)
	case model.EntityOrder:
		o, err := s.mutateOrder(ctx, ref, "decide_payment", func(_ database.Tx, o *model.StoreOrder) error {
			return lifecycle.DecideOrderPayment(o, stage, outcome, reason)
		})
		if err != nil {
			return err
		}
		ev = orderEvent(notify.EventPaymentDecided, notify.AudienceCustomer, o)
	default:
		return fmt.Errorf("тип сущности %q: %w", entity, apperr.ErrInvalidRequest)
	}

	ev.Stage = stage
	ev.Outcome = outcome
	if outcome == model.OutcomeReject {
		ev.Reason = reason
	}
	s.notifier.Notify(ctx, ev)
	return nil
}

// ListPendingVerifications возвращает очередь проверки подтверждений.
func (s *Service) ListPendingVerifications(ctx context.Context) ([]model.PendingVerification, error) {
	ctx, span := s.tracer.Start(ctx, "Service.ListPendingVerifications")
	defer span.End()

	return s.storage.ListPendingVerifications(ctx)
}

// TrackStatus возвращает снимок состояния по трек-номеру, сначала из кэша.
func (s *Service) TrackStatus(ctx context.Context, trackingCode string) (*model.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "Service.TrackStatus")
	defer span.End()

	if snap, ok := s.cache.Get(ctx, trackingCode); ok {
		return snap, nil
	}

	entity, err := resolve(trackingCode)
	if err != nil {
		return nil, err
	}

	// Отметка берется до чтения: переход, зафиксированный после нее, не даст
	// положить в кэш прочитанный снимок.
	version := s.cache.Version(ctx, trackingCode)
	var snap *model.Snapshot
	if entity == model.EntityCommission {
		c, err := s.storage.GetCommission(ctx, trackingCode)
		if err != nil {
			return nil, err
		}
		snap = model.SnapshotOfCommission(c)
	} else {
		o, err := s.storage.GetOrder(ctx, trackingCode)
		if err != nil {
			return nil, err
		}
		snap = model.SnapshotOfOrder(o)
	}

	s.cache.SetIfUnchanged(ctx, trackingCode, snap, version)
	return snap, nil
}
