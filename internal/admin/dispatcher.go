package admin

import (
	"atelier/internal/apperr"
	"atelier/internal/identity"
	"atelier/internal/model"
	"atelier/internal/validator"
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=dispatcher.go -destination=./mocks/operations_mock.go -package=mocks Operations

// Operations - административные операции над заявками и заказами.
type Operations interface {
	SendQuote(ctx context.Context, ref string, finalTotal, advance int64) error
	DecidePayment(ctx context.Context, entity model.EntityType, ref string, stage model.Stage, outcome model.Outcome, reason string) error
	MarkComplete(ctx context.Context, ref string) error
	RejectCommission(ctx context.Context, ref, reason string) error
	LegacyAccept(ctx context.Context, ref string) error
	Ship(ctx context.Context, ref, courierName, courierTracking string) error
	Deliver(ctx context.Context, ref string) error
	CancelOrder(ctx context.Context, ref, reason string) error
	ListPendingVerifications(ctx context.Context) ([]model.PendingVerification, error)
}

type ActionType string

const (
	ActionSendQuote        ActionType = "send_quote"
	ActionDecidePayment    ActionType = "decide_payment"
	ActionMarkComplete     ActionType = "mark_complete"
	ActionRejectCommission ActionType = "reject_commission"
	ActionLegacyAccept     ActionType = "legacy_accept"
	ActionShip             ActionType = "ship"
	ActionDeliver          ActionType = "deliver"
	ActionCancelOrder      ActionType = "cancel_order"
)

// Action - команда администратора. Target - трек-номер или внутренний id.
// Entity нужен только для decide_payment по внутреннему id.
type Action struct {
	Action          ActionType       `json:"action" validate:"required,oneof=send_quote decide_payment mark_complete reject_commission legacy_accept ship deliver cancel_order"`
	Target          string           `json:"target" validate:"required"`
	Entity          model.EntityType `json:"entity,omitempty" validate:"omitempty,oneof=commission order"`
	FinalTotal      int64            `json:"final_total,omitempty"`
	AdvanceAmount   int64            `json:"advance_amount,omitempty"`
	Stage           model.Stage      `json:"stage,omitempty" validate:"required_if=Action decide_payment"`
	Outcome         model.Outcome    `json:"outcome,omitempty" validate:"required_if=Action decide_payment"`
	Reason          string           `json:"reason,omitempty" validate:"max=1000"`
	CourierName     string           `json:"courier_name,omitempty" validate:"required_if=Action ship"`
	CourierTracking string           `json:"courier_tracking_code,omitempty" validate:"required_if=Action ship"`
}

// Dispatcher - единая точка входа административных действий.
type Dispatcher struct {
	ops    Operations
	tracer trace.Tracer
}

func NewDispatcher(ops Operations) *Dispatcher {
	return &Dispatcher{ops: ops, tracer: otel.Tracer("admin-dispatcher")}
}

// Dispatch проверяет права и параметры и передает действие исполнителю.
func (d *Dispatcher) Dispatch(ctx context.Context, a Action) error {
	ctx, span := d.tracer.Start(ctx, "Admin.Dispatch")
	defer span.End()
	span.SetAttributes(attribute.String("action", string(a.Action)), attribute.String("target", a.Target))

	if !identity.FromContext(ctx).IsAdmin() {
		return apperr.ErrForbidden
	}
	if err := validator.Check(&a); err != nil {
		return err
	}

	var err error
	switch a.Action {
	case ActionSendQuote:
		if err = expect(a, model.EntityCommission); err == nil {
			err = d.ops.SendQuote(ctx, a.Target, a.FinalTotal, a.AdvanceAmount)
		}
	case ActionDecidePayment:
		var entity model.EntityType
		if entity, err = entityOf(a); err == nil {
			err = d.ops.DecidePayment(ctx, entity, a.Target, a.Stage, a.Outcome, a.Reason)
		}
	case ActionMarkComplete:
		if err = expect(a, model.EntityCommission); err == nil {
			err = d.ops.MarkComplete(ctx, a.Target)
		}
	case ActionRejectCommission:
		if err = expect(a, model.EntityCommission); err == nil {
			err = d.ops.RejectCommission(ctx, a.Target, a.Reason)
		}
	case ActionLegacyAccept:
		if err = expect(a, model.EntityCommission); err == nil {
			err = d.ops.LegacyAccept(ctx, a.Target)
		}
	case ActionShip:
		if err = expect(a, model.EntityOrder); err == nil {
			err = d.ops.Ship(ctx, a.Target, a.CourierName, a.CourierTracking)
		}
	case ActionDeliver:
		if err = expect(a, model.EntityOrder); err == nil {
			err = d.ops.Deliver(ctx, a.Target)
		}
	case ActionCancelOrder:
		if err = expect(a, model.EntityOrder); err == nil {
			err = d.ops.CancelOrder(ctx, a.Target, a.Reason)
		}
	}
	if err != nil {
		return err
	}

	log.Printf("Админ-действие %s над %s выполнено", a.Action, a.Target)
	return nil
}

// PendingVerifications возвращает очередь проверки подтверждений оплаты.
func (d *Dispatcher) PendingVerifications(ctx context.Context) ([]model.PendingVerification, error) {
	ctx, span := d.tracer.Start(ctx, "Admin.PendingVerifications")
	defer span.End()

	if !identity.FromContext(ctx).IsAdmin() {
		return nil, apperr.ErrForbidden
	}
	return d.ops.ListPendingVerifications(ctx)
}

// entityOf определяет тип сущности по префиксу трек-номера, иначе по полю Entity.
func entityOf(a Action) (model.EntityType, error) {
	if entity, ok := model.EntityTypeOf(a.Target); ok {
		if a.Entity != "" && a.Entity != entity {
			return "", fmt.Errorf("цель %s не является %s: %w", a.Target, a.Entity, apperr.ErrInvalidRequest)
		}
		return entity, nil
	}
	if a.Entity == "" {
		return "", fmt.Errorf("для внутреннего id %s нужно указать entity: %w", a.Target, apperr.ErrInvalidRequest)
	}
	return a.Entity, nil
}

// expect отклоняет действие, если трек-номер явно указывает на другой тип сущности.
func expect(a Action, want model.EntityType) error {
	if entity, ok := model.EntityTypeOf(a.Target); ok && entity != want {
		return fmt.Errorf("действие %s неприменимо к %s: %w", a.Action, a.Target, apperr.ErrInvalidRequest)
	}
	return nil
}
