package lifecycle

import (
	"fmt"

	"atelier/internal/apperr"
	"atelier/internal/model"
	"atelier/internal/payment"
)

// SubmitOrderProof принимает подтверждение оплаты заказа из магазина.
func SubmitOrderProof(o *model.StoreOrder, stage model.Stage, proofRef string) error {
	if err := orderStageOpen(o, stage); err != nil {
		return err
	}
	return payment.SubmitProof(o, stage, proofRef)
}

// DecideOrderPayment применяет решение по этапу оплаты заказа.
// Отклонение оставляет заказ в текущей фазе до повторной загрузки.
func DecideOrderPayment(o *model.StoreOrder, stage model.Stage, outcome model.Outcome, reason string) error {
	if o.Stage(stage).Status == model.VerificationUnderReview {
		if err := orderStageOpen(o, stage); err != nil {
			return err
		}
	}
	if err := payment.Decide(o, stage, outcome, reason); err != nil {
		return err
	}
	if outcome != model.OutcomeApprove {
		return nil
	}

	switch {
	case stage == model.StageAdvance:
		o.Phase = model.PhaseAdvancePaid
	case o.Phase == model.PhaseRemainingPending:
		o.Phase = model.PhaseCompleted
	case o.Phase == model.PhaseLegacyPending:
		o.Phase = model.PhaseLegacyPaid
	}
	return nil
}

func orderStageOpen(o *model.StoreOrder, stage model.Stage) error {
	switch stage {
	case model.StageAdvance:
		if o.Phase != model.PhaseAdvancePending {
			return invalid("advance_payment", string(o.Phase))
		}
	case model.StageFinal:
		if o.Phase != model.PhaseRemainingPending && o.Phase != model.PhaseLegacyPending {
			return invalid("final_payment", string(o.Phase))
		}
	default:
		return fmt.Errorf("этап %q: %w", stage, apperr.ErrInvalidRequest)
	}
	return nil
}

// Ship фиксирует отправку. Исполнение не начинается, пока не подтвержден аванс.
func Ship(o *model.StoreOrder, courierName, courierTracking string) error {
	if courierName == "" || courierTracking == "" {
		return fmt.Errorf("не указаны служба доставки или трек-номер: %w", apperr.ErrInvalidRequest)
	}
	if o.Phase != model.PhaseAdvancePaid && o.Phase != model.PhaseLegacyPaid {
		return invalid("ship", string(o.Phase))
	}
	o.CourierName = courierName
	o.CourierTracking = courierTracking
	o.Phase = model.PhaseShipped
	return nil
}

// Deliver отмечает вручение. Если остатка нет (или он уже оплачен), заказ завершается.
func Deliver(o *model.StoreOrder) error {
	if o.Phase != model.PhaseShipped {
		return invalid("deliver", string(o.Phase))
	}
	if o.RemainingAmount == 0 || o.FinalStatus == model.VerificationPaid {
		o.Phase = model.PhaseCompleted
		return nil
	}
	o.Phase = model.PhaseRemainingPending
	return nil
}

// CancelOrder отменяет заказ до отправки. Возврат остатков на склад делает вызывающий.
func CancelOrder(o *model.StoreOrder, reason string) error {
	switch o.Phase {
	case model.PhaseAdvancePending, model.PhaseAdvancePaid, model.PhaseLegacyPending:
	default:
		return invalid("cancel", string(o.Phase))
	}
	if reason == "" {
		reason = defaultCancelReason
	}
	o.Phase = model.PhaseCancelled
	o.CancelReason = reason
	return nil
}
