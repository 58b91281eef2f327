package model

import "time"

// PaymentPhase - каноническое состояние заказа из магазина.
// Грубый статус (OrderStatus) всегда вычисляется из фазы.
type PaymentPhase string

const (
	PhaseAdvancePending   PaymentPhase = "advance_pending"
	PhaseAdvancePaid      PaymentPhase = "advance_paid"
	PhaseShipped          PaymentPhase = "shipped"
	PhaseDelivered        PaymentPhase = "delivered"
	PhaseRemainingPending PaymentPhase = "remaining_pending"
	PhaseCompleted        PaymentPhase = "completed"
	PhaseCancelled        PaymentPhase = "cancelled"

	// Заказы, оформленные до двухэтапной оплаты: одна оплата на всю сумму.
	PhaseLegacyPending PaymentPhase = "legacy_pending"
	PhaseLegacyPaid    PaymentPhase = "legacy_paid"
)

// OrderStatus - грубый статус исполнения заказа.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Status проецирует фазу на грубый статус.
func (p PaymentPhase) Status() OrderStatus {
	switch p {
	case PhaseAdvancePaid, PhaseLegacyPaid:
		return OrderProcessing
	case PhaseShipped:
		return OrderShipped
	case PhaseDelivered, PhaseRemainingPending, PhaseCompleted:
		return OrderDelivered
	case PhaseCancelled:
		return OrderCancelled
	default:
		return OrderPending
	}
}

// LineItem - позиция заказа. Цена фиксируется в момент покупки.
type LineItem struct {
	ID              int64  `json:"-" db:"id"`
	OrderID         string `json:"-" db:"order_id"`
	ArtworkID       string `json:"artwork_id" db:"artwork_id"`
	Quantity        int    `json:"quantity" db:"quantity"`
	PriceAtPurchase int64  `json:"price_at_purchase" db:"price_at_purchase"`
}

// StoreOrder - заказ одной или нескольких работ из магазина.
type StoreOrder struct {
	ID              string     `json:"id" db:"id"`
	TrackingCode    string     `json:"tracking_code" db:"tracking_code"`
	UserID          *string    `json:"user_id,omitempty" db:"user_id"`
	BuyerName       string     `json:"buyer_name" db:"buyer_name"`
	BuyerEmail      string     `json:"buyer_email" db:"buyer_email"`
	Items           []LineItem `json:"items" db:"-"`
	TotalAmount     int64      `json:"total_amount" db:"total_amount"`
	DiscountAmount  int64      `json:"discount_amount" db:"discount_amount"`
	AdvanceAmount   int64      `json:"advance_amount" db:"advance_amount"`
	RemainingAmount int64      `json:"remaining_amount" db:"remaining_amount"`
	CouponCode      string     `json:"coupon_code,omitempty" db:"coupon_code"`

	Phase           PaymentPhase `json:"payment_phase" db:"payment_phase"`
	ShippingAddress string       `json:"shipping_address" db:"shipping_address"`
	CourierName     string       `json:"courier_name,omitempty" db:"courier_name"`
	CourierTracking string       `json:"courier_tracking_code,omitempty" db:"courier_tracking_code"`

	AdvanceStatus    VerificationStatus `json:"advance_payment_status" db:"advance_payment_status"`
	AdvanceProof     string             `json:"advance_proof" db:"advance_proof"`
	AdvanceRejection string             `json:"advance_rejection" db:"advance_rejection"`
	FinalStatus      VerificationStatus `json:"final_payment_status" db:"final_payment_status"`
	FinalProof       string             `json:"final_proof" db:"final_proof"`
	FinalRejection   string             `json:"final_rejection" db:"final_rejection"`

	CancelReason string    `json:"cancel_reason,omitempty" db:"cancel_reason"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Status - грубый статус, производный от фазы.
func (o *StoreOrder) Status() OrderStatus {
	return o.Phase.Status()
}

func (o *StoreOrder) Stage(stage Stage) StagePayment {
	if stage == StageFinal {
		return StagePayment{Status: o.FinalStatus, ProofRef: o.FinalProof, RejectionReason: o.FinalRejection}
	}
	return StagePayment{Status: o.AdvanceStatus, ProofRef: o.AdvanceProof, RejectionReason: o.AdvanceRejection}
}

func (o *StoreOrder) SetStage(stage Stage, p StagePayment) {
	if stage == StageFinal {
		o.FinalStatus, o.FinalProof, o.FinalRejection = p.Status, p.ProofRef, p.RejectionReason
		return
	}
	o.AdvanceStatus, o.AdvanceProof, o.AdvanceRejection = p.Status, p.ProofRef, p.RejectionReason
}

// CartItem - позиция корзины при оформлении.
type CartItem struct {
	ArtworkID string `json:"artwork_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// CheckoutRequest - входные данные оформления заказа.
type CheckoutRequest struct {
	UserID     *string    `json:"user_id,omitempty"`
	Name       string     `json:"name" validate:"required,max=200"`
	Email      string     `json:"email" validate:"required,email"`
	Items      []CartItem `json:"items" validate:"required,min=1,dive"`
	Address    string     `json:"address" validate:"required"`
	CouponCode string     `json:"coupon_code,omitempty"`
}

// CheckoutResult - ответ на оформление заказа.
type CheckoutResult struct {
	TrackingCode string `json:"tracking_code"`
	TotalAmount  int64  `json:"total_amount"`
}

// Coupon - купон с фиксированной процентной скидкой.
type Coupon struct {
	Code       string `db:"code"`
	PercentOff int64  `db:"percent_off"`
	Active     bool   `db:"active"`
}
