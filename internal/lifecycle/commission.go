package lifecycle

import (
	"fmt"

	"atelier/internal/apperr"
	"atelier/internal/model"
	"atelier/internal/payment"
)

const defaultCancelReason = "Отклонено администрацией."

// SendQuote фиксирует обязательную цену и аванс. Повторное выставление
// допускается, пока клиент не загрузил подтверждение аванса.
func SendQuote(c *model.Commission, finalTotal, advance int64) error {
	if finalTotal <= 0 {
		return fmt.Errorf("сумма %d: %w", finalTotal, apperr.ErrZeroOrNegativeQuote)
	}
	if advance < 0 || advance > finalTotal {
		return fmt.Errorf("аванс %d при сумме %d: %w", advance, finalTotal, apperr.ErrInvalidAdvance)
	}

	requote := c.Status == model.CommissionQuoted &&
		(c.AdvanceStatus == model.VerificationNone || c.AdvanceStatus == model.VerificationRejected)
	if c.Status != model.CommissionPending && !requote {
		return invalid("send_quote", string(c.Status))
	}

	remaining := finalTotal - advance
	c.FinalTotal = &finalTotal
	c.AdvanceAmount = &advance
	c.RemainingAmount = &remaining
	c.Status = model.CommissionQuoted
	return nil
}

// SubmitCommissionProof принимает подтверждение оплаты для этапа, который сейчас ожидает оплаты.
func SubmitCommissionProof(c *model.Commission, stage model.Stage, proofRef string) error {
	if err := commissionStageOpen(c, stage); err != nil {
		return err
	}
	return payment.SubmitProof(c, stage, proofRef)
}

// DecideCommissionPayment применяет решение по этапу и продвигает заявку при одобрении.
func DecideCommissionPayment(c *model.Commission, stage model.Stage, outcome model.Outcome, reason string) error {
	if c.Stage(stage).Status == model.VerificationUnderReview {
		if err := commissionStageOpen(c, stage); err != nil {
			return err
		}
	}
	if err := payment.Decide(c, stage, outcome, reason); err != nil {
		return err
	}
	if outcome != model.OutcomeApprove {
		return nil
	}

	switch stage {
	case model.StageAdvance:
		c.Status = model.CommissionInProgress
	case model.StageFinal:
		c.Status = model.CommissionClosed
		c.PaymentStatus = model.LegacyPaymentPaid
	}
	return nil
}

func commissionStageOpen(c *model.Commission, stage model.Stage) error {
	switch stage {
	case model.StageAdvance:
		if c.Status != model.CommissionQuoted {
			return invalid("advance_payment", string(c.Status))
		}
	case model.StageFinal:
		if c.Status != model.CommissionCompleted || c.AdvanceStatus != model.VerificationPaid {
			return invalid("final_payment", string(c.Status))
		}
	default:
		return fmt.Errorf("этап %q: %w", stage, apperr.ErrInvalidRequest)
	}
	return nil
}

// MarkComplete переводит заявку из in_progress в completed.
// Заявка, принятая через LegacyAccept, тоже становится completed, но второго
// этапа оплаты у нее нет: вся сумма уже получена, этап final остается
// закрытым (commissionStageOpen требует оплаченный аванс), и в closed такая
// заявка не переходит. finalDue сообщает, ожидается ли оплата остатка.
func MarkComplete(c *model.Commission) (finalDue bool, err error) {
	if c.Status != model.CommissionInProgress {
		return false, invalid("mark_complete", string(c.Status))
	}

	c.Status = model.CommissionCompleted
	if c.IsLegacyAccepted() {
		return false, nil
	}
	c.SetStage(model.StageFinal, model.StagePayment{Status: model.VerificationNone})
	return true, nil
}

// RejectCommission отменяет заявку. Отмена - терминальное состояние.
func RejectCommission(c *model.Commission, reason string) error {
	if c.Status != model.CommissionPending && c.Status != model.CommissionQuoted {
		return invalid("reject", string(c.Status))
	}
	if reason == "" {
		reason = defaultCancelReason
	}
	c.Status = model.CommissionCancelled
	c.CancelReason = reason
	return nil
}

// LegacyAccept - старый путь одноэтапной оплаты: работа сразу уходит в исполнение
// без отдельной записи об авансе. Новый код этим путем не пользуется.
func LegacyAccept(c *model.Commission) error {
	if c.Status != model.CommissionPending && c.Status != model.CommissionQuoted {
		return invalid("legacy_accept", string(c.Status))
	}
	if c.AdvanceStatus == model.VerificationUnderReview {
		// Загруженный аванс проверяется через decide_payment.
		return invalid("legacy_accept", "advance under_verification")
	}
	c.PaymentStatus = model.LegacyPaymentPaid
	c.Status = model.CommissionInProgress
	return nil
}

func invalid(action, state string) error {
	return fmt.Errorf("%s из состояния %s: %w", action, state, apperr.ErrInvalidTransition)
}
