package model

import "time"

type Size string

const (
	SizeA4     Size = "A4"
	SizeA3     Size = "A3"
	SizeA2     Size = "A2"
	SizeCustom Size = "Custom"
)

type Medium string

const (
	MediumPencil   Medium = "Pencil"
	MediumCharcoal Medium = "Charcoal"
	MediumDigital  Medium = "Digital"
)

type Difficulty string

const (
	DifficultyEasy    Difficulty = "Easy"
	DifficultyMedium  Difficulty = "Medium"
	DifficultyHard    Difficulty = "Hard"
	DifficultyExtreme Difficulty = "Extreme"
)

type Deadline string

const (
	DeadlineNormal  Deadline = "Normal"
	DeadlineExpress Deadline = "Express"
)

// Selection - параметры заказной работы, от которых зависит цена.
type Selection struct {
	Size       Size       `json:"size" db:"size" validate:"required,oneof=A4 A3 A2 Custom"`
	Medium     Medium     `json:"medium" db:"medium" validate:"required,oneof=Pencil Charcoal Digital"`
	Difficulty Difficulty `json:"difficulty" db:"difficulty" validate:"required,oneof=Easy Medium Hard Extreme"`
	Deadline   Deadline   `json:"deadline" db:"deadline" validate:"required,oneof=Normal Express"`
}

// CommissionStatus - статус жизненного цикла заказной работы.
type CommissionStatus string

const (
	CommissionPending    CommissionStatus = "pending"
	CommissionQuoted     CommissionStatus = "quoted"
	CommissionInProgress CommissionStatus = "in_progress"
	CommissionCompleted  CommissionStatus = "completed"
	CommissionClosed     CommissionStatus = "closed"
	CommissionCancelled  CommissionStatus = "cancelled"
)

// LegacyPaymentStatus - поле одноэтапной оплаты, сохраненное для старых записей и отчетов.
type LegacyPaymentStatus string

const (
	LegacyPaymentPending LegacyPaymentStatus = "pending"
	LegacyPaymentPaid    LegacyPaymentStatus = "paid"
)

// Contact - контактные данные заказчика.
type Contact struct {
	Name  string `json:"name" db:"customer_name" validate:"required"`
	Email string `json:"email" db:"customer_email" validate:"required,email"`
	Phone string `json:"phone" db:"customer_phone" validate:"required"`
}

// Shipping - адрес доставки. Либо пустой целиком, либо заполнены все обязательные поля.
type Shipping struct {
	Address  string `json:"address" db:"shipping_address" validate:"required"`
	City     string `json:"city" db:"shipping_city" validate:"required"`
	State    string `json:"state" db:"shipping_state" validate:"required"`
	Pincode  string `json:"pincode" db:"shipping_pincode" validate:"required,numeric,len=6"`
	Country  string `json:"country" db:"shipping_country"`
	Landmark string `json:"landmark,omitempty" db:"shipping_landmark"`
	Phone    string `json:"phone" db:"shipping_phone" validate:"required"`
}

// IsZero сообщает, что ни одно поле адреса не заполнено.
func (s Shipping) IsZero() bool {
	return s == Shipping{}
}

// Commission - заявка на заказную работу.
type Commission struct {
	ID           string `json:"id" db:"id"`
	TrackingCode string `json:"tracking_code" db:"tracking_code"`
	Contact      `json:"contact"`
	Selection    `json:"selection"`
	ReferenceImage  string `json:"reference_image" db:"reference_image"`
	Notes           string `json:"notes" db:"notes"`
	CalculatedPrice int64  `json:"calculated_price" db:"calculated_price"`

	FinalTotal      *int64 `json:"final_total" db:"final_total"`
	AdvanceAmount   *int64 `json:"advance_amount" db:"advance_amount"`
	RemainingAmount *int64 `json:"remaining_amount" db:"remaining_amount"`

	RequiresDelivery bool `json:"requires_delivery" db:"requires_delivery"`
	Shipping         `json:"shipping"`

	Status        CommissionStatus    `json:"status" db:"status"`
	PaymentStatus LegacyPaymentStatus `json:"payment_status" db:"payment_status"`

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

// IsLegacyAccepted - работа принята по старой одноэтапной схеме, без отдельного аванса.
func (c *Commission) IsLegacyAccepted() bool {
	return c.PaymentStatus == LegacyPaymentPaid && c.AdvanceStatus != VerificationPaid
}

// Stage возвращает состояние этапа оплаты.
func (c *Commission) Stage(stage Stage) StagePayment {
	if stage == StageFinal {
		return StagePayment{Status: c.FinalStatus, ProofRef: c.FinalProof, RejectionReason: c.FinalRejection}
	}
	return StagePayment{Status: c.AdvanceStatus, ProofRef: c.AdvanceProof, RejectionReason: c.AdvanceRejection}
}

// SetStage записывает состояние этапа оплаты.
func (c *Commission) SetStage(stage Stage, p StagePayment) {
	if stage == StageFinal {
		c.FinalStatus, c.FinalProof, c.FinalRejection = p.Status, p.ProofRef, p.RejectionReason
		return
	}
	c.AdvanceStatus, c.AdvanceProof, c.AdvanceRejection = p.Status, p.ProofRef, p.RejectionReason
}

// CommissionRequest - входные данные заявки от клиента.
type CommissionRequest struct {
	Contact          Contact   `json:"contact"`
	Selection        Selection `json:"selection"`
	ReferenceImage   string    `json:"reference_image"`
	Notes            string    `json:"notes" validate:"max=4000"`
	RequiresDelivery bool      `json:"requires_delivery"`
	Shipping         Shipping  `json:"shipping" validate:"-"`
}

// SubmitResult - ответ на создание заявки.
type SubmitResult struct {
	TrackingCode      string `json:"tracking_code"`
	ProvisionalAmount int64  `json:"provisional_amount"`
}
