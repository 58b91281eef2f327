package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	commissionPrefix = "CM-"
	orderPrefix      = "AW-"
)

// NewCommissionCode генерирует трек-номер заявки, например CM-1A2B3C4D.
func NewCommissionCode() string {
	return commissionPrefix + shortCode()
}

// NewOrderCode генерирует трек-номер заказа из магазина, например AW-1A2B3C4D.
func NewOrderCode() string {
	return orderPrefix + shortCode()
}

func shortCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// EntityTypeOf определяет тип сущности по трек-номеру.
func EntityTypeOf(code string) (EntityType, bool) {
	switch {
	case strings.HasPrefix(code, commissionPrefix):
		return EntityCommission, true
	case strings.HasPrefix(code, orderPrefix):
		return EntityOrder, true
	}
	return "", false
}

// Snapshot - проекция текущего состояния для страницы отслеживания.
type Snapshot struct {
	TrackingCode    string             `json:"tracking_code"`
	Type            EntityType         `json:"type"`
	Status          string             `json:"status"`
	PaymentPhase    PaymentPhase       `json:"payment_phase,omitempty"`
	AdvanceStatus   VerificationStatus `json:"advance_payment_status"`
	FinalStatus     VerificationStatus `json:"final_payment_status"`
	TotalAmount     *int64             `json:"total_amount,omitempty"`
	AdvanceAmount   *int64             `json:"advance_amount,omitempty"`
	RemainingAmount *int64             `json:"remaining_amount,omitempty"`
	CourierName     string             `json:"courier_name,omitempty"`
	CourierTracking string             `json:"courier_tracking_code,omitempty"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// SnapshotOfCommission строит проекцию заявки. До выставления счета
// в качестве суммы показывается предварительная цена.
func SnapshotOfCommission(c *Commission) *Snapshot {
	s := &Snapshot{
		TrackingCode:    c.TrackingCode,
		Type:            EntityCommission,
		Status:          string(c.Status),
		AdvanceStatus:   c.AdvanceStatus,
		FinalStatus:     c.FinalStatus,
		TotalAmount:     c.FinalTotal,
		AdvanceAmount:   c.AdvanceAmount,
		RemainingAmount: c.RemainingAmount,
		RejectionReason: firstNonEmpty(c.CancelReason, c.FinalRejection, c.AdvanceRejection),
		UpdatedAt:       c.UpdatedAt,
	}
	if s.TotalAmount == nil {
		provisional := c.CalculatedPrice
		s.TotalAmount = &provisional
	}
	return s
}

// SnapshotOfOrder строит проекцию заказа из магазина.
func SnapshotOfOrder(o *StoreOrder) *Snapshot {
	total, advance, remaining := o.TotalAmount, o.AdvanceAmount, o.RemainingAmount
	return &Snapshot{
		TrackingCode:    o.TrackingCode,
		Type:            EntityOrder,
		Status:          string(o.Status()),
		PaymentPhase:    o.Phase,
		AdvanceStatus:   o.AdvanceStatus,
		FinalStatus:     o.FinalStatus,
		TotalAmount:     &total,
		AdvanceAmount:   &advance,
		RemainingAmount: &remaining,
		CourierName:     o.CourierName,
		CourierTracking: o.CourierTracking,
		RejectionReason: firstNonEmpty(o.CancelReason, o.FinalRejection, o.AdvanceRejection),
		UpdatedAt:       o.UpdatedAt,
	}
}

// PendingVerification - сущность, ожидающая проверки подтверждения оплаты.
type PendingVerification struct {
	TrackingCode string     `json:"tracking_code" db:"tracking_code"`
	Type         EntityType `json:"type" db:"entity_type"`
	Stage        Stage      `json:"stage" db:"stage"`
	ProofRef     string     `json:"proof_ref" db:"proof_ref"`
	Amount       int64      `json:"amount" db:"amount"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
