package payment

import (
	"fmt"

	"atelier/internal/apperr"
	"atelier/internal/model"
)

// HasPaymentStage - сущность с поэтапной оплатой (заявка или заказ).
// Протокол проверки работает только через этот интерфейс.
type HasPaymentStage interface {
	Stage(stage model.Stage) model.StagePayment
	SetStage(stage model.Stage, p model.StagePayment)
}

// SubmitProof фиксирует загруженное подтверждение и переводит этап на проверку.
// Проверку того, что этап вообще ожидает оплаты, выполняет владелец (lifecycle).
func SubmitProof(e HasPaymentStage, stage model.Stage, proofRef string) error {
	if !stage.Valid() {
		return fmt.Errorf("этап %q: %w", stage, apperr.ErrInvalidRequest)
	}
	if proofRef == "" {
		return fmt.Errorf("пустая ссылка на подтверждение: %w", apperr.ErrInvalidRequest)
	}

	current := e.Stage(stage)
	if current.Status == model.VerificationPaid {
		return fmt.Errorf("этап %s уже оплачен: %w", stage, apperr.ErrInvalidTransition)
	}

	e.SetStage(stage, model.StagePayment{
		Status:   model.VerificationUnderReview,
		ProofRef: proofRef,
	})
	return nil
}

// Decide применяет решение администратора. Решение возможно только
// для этапа в состоянии under_verification, поэтому повторный клик
// по "одобрить" получает ErrAlreadyDecided и ничего не меняет.
func Decide(e HasPaymentStage, stage model.Stage, outcome model.Outcome, reason string) error {
	if !stage.Valid() {
		return fmt.Errorf("этап %q: %w", stage, apperr.ErrInvalidRequest)
	}

	current := e.Stage(stage)
	switch current.Status {
	case model.VerificationUnderReview:
	case model.VerificationPaid, model.VerificationRejected:
		return fmt.Errorf("этап %s в состоянии %s: %w", stage, current.Status, apperr.ErrAlreadyDecided)
	default:
		return fmt.Errorf("этап %s: %w", stage, apperr.ErrNoProofSubmitted)
	}

	switch outcome {
	case model.OutcomeApprove:
		current.Status = model.VerificationPaid
		current.RejectionReason = ""
	case model.OutcomeReject:
		current.Status = model.VerificationRejected
		current.RejectionReason = reason
	default:
		return fmt.Errorf("решение %q: %w", outcome, apperr.ErrInvalidRequest)
	}

	e.SetStage(stage, current)
	return nil
}
