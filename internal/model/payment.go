package model

// Stage - этап оплаты: аванс или остаток.
type Stage string

const (
	StageAdvance Stage = "advance"
	StageFinal   Stage = "final"
)

func (s Stage) Valid() bool {
	return s == StageAdvance || s == StageFinal
}

// VerificationStatus - состояние проверки платежа на одном этапе.
type VerificationStatus string

const (
	VerificationNone        VerificationStatus = "none"
	VerificationUnderReview VerificationStatus = "under_verification"
	VerificationPaid        VerificationStatus = "paid"
	VerificationRejected    VerificationStatus = "rejected"
)

// Outcome - решение администратора по загруженному подтверждению.
type Outcome string

const (
	OutcomeApprove Outcome = "approve"
	OutcomeReject  Outcome = "reject"
)

// EntityType различает заказы на заказную работу и заказы из магазина.
type EntityType string

const (
	EntityCommission EntityType = "commission"
	EntityOrder      EntityType = "order"
)

// StagePayment хранит состояние одного этапа оплаты.
// Встраивается в Commission и StoreOrder по разу на каждый этап.
type StagePayment struct {
	Status          VerificationStatus `json:"status"`
	ProofRef        string             `json:"proof_ref,omitempty"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
}
