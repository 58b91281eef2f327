package admin

import (
	"atelier/internal/admin/mocks"
	"atelier/internal/apperr"
	"atelier/internal/identity"
	"atelier/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func adminCtx() context.Context {
	return identity.WithPrincipal(context.Background(), identity.Principal{Subject: "admin", Role: identity.RoleAdmin})
}

func setupDispatcher(t *testing.T) (*Dispatcher, *mocks.MockOperations) {
	ctrl := gomock.NewController(t)
	ops := mocks.NewMockOperations(ctrl)
	return NewDispatcher(ops), ops
}

func TestDispatch_RequiresAdmin(t *testing.T) {
	d, _ := setupDispatcher(t)

	err := d.Dispatch(context.Background(), Action{Action: ActionDeliver, Target: "AW-1"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = d.PendingVerifications(context.Background())
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestDispatch_Routes(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		expect func(ops *mocks.MockOperations)
	}{
		{
			name:   "send quote",
			action: Action{Action: ActionSendQuote, Target: "CM-1", FinalTotal: 10000, AdvanceAmount: 3000},
			expect: func(ops *mocks.MockOperations) {
				ops.EXPECT().SendQuote(gomock.Any(), "CM-1", int64(10000), int64(3000)).Return(nil)
			},
		},
		{
			name:   "decide by tracking code",
			action: Action{Action: ActionDecidePayment, Target: "AW-1", Stage: model.StageFinal, Outcome: model.OutcomeApprove},
			expect: func(ops *mocks.MockOperations) {
				ops.EXPECT().DecidePayment(gomock.Any(), model.EntityOrder, "AW-1", model.StageFinal, model.OutcomeApprove, "").Return(nil)
			},
		},
		{
			name:   "decide by internal id",
			action: Action{Action: ActionDecidePayment, Target: "7d0c", Entity: model.EntityCommission, Stage: model.StageAdvance, Outcome: model.OutcomeReject, Reason: "размыто"},
			expect: func(ops *mocks.MockOperations) {
				ops.EXPECT().DecidePayment(gomock.Any(), model.EntityCommission, "7d0c", model.StageAdvance, model.OutcomeReject, "размыто").Return(nil)
			},
		},
		{
			name:   "mark complete",
			action: Action{Action: ActionMarkComplete, Target: "CM-1"},
			expect: func(ops *mocks.MockOperations) { ops.EXPECT().MarkComplete(gomock.Any(), "CM-1").Return(nil) },
		},
		{
			name:   "reject",
			action: Action{Action: ActionRejectCommission, Target: "CM-1", Reason: "нет времени"},
			expect: func(ops *mocks.MockOperations) {
				ops.EXPECT().RejectCommission(gomock.Any(), "CM-1", "нет времени").Return(nil)
			},
		},
		{
			name:   "legacy accept",
			action: Action{Action: ActionLegacyAccept, Target: "CM-1"},
			expect: func(ops *mocks.MockOperations) { ops.EXPECT().LegacyAccept(gomock.Any(), "CM-1").Return(nil) },
		},
		{
			name:   "ship",
			action: Action{Action: ActionShip, Target: "AW-1", CourierName: "BlueDart", CourierTracking: "BD1"},
			expect: func(ops *mocks.MockOperations) {
				ops.EXPECT().Ship(gomock.Any(), "AW-1", "BlueDart", "BD1").Return(nil)
			},
		},
		{
			name:   "deliver",
			action: Action{Action: ActionDeliver, Target: "AW-1"},
			expect: func(ops *mocks.MockOperations) { ops.EXPECT().Deliver(gomock.Any(), "AW-1").Return(nil) },
		},
		{
			name:   "cancel order",
			action: Action{Action: ActionCancelOrder, Target: "AW-1"},
			expect: func(ops *mocks.MockOperations) { ops.EXPECT().CancelOrder(gomock.Any(), "AW-1", "").Return(nil) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ops := setupDispatcher(t)
			tt.expect(ops)
			assert.NoError(t, d.Dispatch(adminCtx(), tt.action))
		})
	}
}

func TestDispatch_InvalidActions(t *testing.T) {
	tests := []struct {
		name   string
		action Action
	}{
		{"unknown action", Action{Action: "refund", Target: "CM-1"}},
		{"missing target", Action{Action: ActionDeliver}},
		{"decide without stage", Action{Action: ActionDecidePayment, Target: "CM-1", Outcome: model.OutcomeApprove}},
		{"decide internal id without entity", Action{Action: ActionDecidePayment, Target: "7d0c", Stage: model.StageAdvance, Outcome: model.OutcomeApprove}},
		{"decide entity mismatch", Action{Action: ActionDecidePayment, Target: "CM-1", Entity: model.EntityOrder, Stage: model.StageAdvance, Outcome: model.OutcomeApprove}},
		{"ship without courier", Action{Action: ActionShip, Target: "AW-1", CourierTracking: "BD1"}},
		{"quote on order", Action{Action: ActionSendQuote, Target: "AW-1", FinalTotal: 100}},
		{"ship commission", Action{Action: ActionShip, Target: "CM-1", CourierName: "X", CourierTracking: "Y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := setupDispatcher(t)
			assert.ErrorIs(t, d.Dispatch(adminCtx(), tt.action), apperr.ErrInvalidRequest)
		})
	}
}

func TestDispatch_PropagatesDomainErrors(t *testing.T) {
	d, ops := setupDispatcher(t)
	ops.EXPECT().Ship(gomock.Any(), "AW-1", "BlueDart", "BD1").Return(apperr.ErrInvalidTransition)

	err := d.Dispatch(adminCtx(), Action{Action: ActionShip, Target: "AW-1", CourierName: "BlueDart", CourierTracking: "BD1"})
	assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
}

func TestPendingVerifications(t *testing.T) {
	d, ops := setupDispatcher(t)
	want := []model.PendingVerification{{TrackingCode: "CM-1", Type: model.EntityCommission, Stage: model.StageAdvance}}
	ops.EXPECT().ListPendingVerifications(gomock.Any()).Return(want, nil)

	got, err := d.PendingVerifications(adminCtx())
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
