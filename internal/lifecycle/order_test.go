package lifecycle

import (
	"testing"

	"atelier/internal/apperr"
	"atelier/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreOrder() *model.StoreOrder {
	return &model.StoreOrder{
		TrackingCode:    "AW-TEST0001",
		TotalAmount:     10000,
		AdvanceAmount:   5000,
		RemainingAmount: 5000,
		Phase:           model.PhaseAdvancePending,
		AdvanceStatus:   model.VerificationNone,
		FinalStatus:     model.VerificationNone,
	}
}

func advancePaid(t *testing.T) *model.StoreOrder {
	o := newStoreOrder()
	require.NoError(t, SubmitOrderProof(o, model.StageAdvance, "adv"))
	require.NoError(t, DecideOrderPayment(o, model.StageAdvance, model.OutcomeApprove, ""))
	return o
}

func TestPhaseStatusProjection(t *testing.T) {
	cases := map[model.PaymentPhase]model.OrderStatus{
		model.PhaseAdvancePending:   model.OrderPending,
		model.PhaseAdvancePaid:      model.OrderProcessing,
		model.PhaseShipped:          model.OrderShipped,
		model.PhaseDelivered:        model.OrderDelivered,
		model.PhaseRemainingPending: model.OrderDelivered,
		model.PhaseCompleted:        model.OrderDelivered,
		model.PhaseCancelled:        model.OrderCancelled,
		model.PhaseLegacyPending:    model.OrderPending,
		model.PhaseLegacyPaid:       model.OrderProcessing,
	}
	for phase, status := range cases {
		assert.Equal(t, status, phase.Status(), string(phase))
	}
}

func TestOrderHappyPath(t *testing.T) {
	o := advancePaid(t)
	assert.Equal(t, model.PhaseAdvancePaid, o.Phase)
	assert.Equal(t, model.OrderProcessing, o.Status())

	require.NoError(t, Ship(o, "BlueDart", "BD123456"))
	assert.Equal(t, model.OrderShipped, o.Status())
	assert.Equal(t, "BlueDart", o.CourierName)
	assert.Equal(t, "BD123456", o.CourierTracking)

	require.NoError(t, Deliver(o))
	assert.Equal(t, model.PhaseRemainingPending, o.Phase)
	assert.Equal(t, model.OrderDelivered, o.Status())

	require.NoError(t, SubmitOrderProof(o, model.StageFinal, "fin"))
	require.NoError(t, DecideOrderPayment(o, model.StageFinal, model.OutcomeApprove, ""))
	assert.Equal(t, model.PhaseCompleted, o.Phase)
	assert.Equal(t, model.OrderDelivered, o.Status())
}

func TestShip_BeforeAdvanceCleared(t *testing.T) {
	o := newStoreOrder()

	err := Ship(o, "BlueDart", "BD123456")
	assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	assert.Equal(t, model.PhaseAdvancePending, o.Phase)
	assert.Empty(t, o.CourierName)
	assert.Empty(t, o.CourierTracking)
}

func TestShip_WhileAdvanceUnderReview(t *testing.T) {
	o := newStoreOrder()
	require.NoError(t, SubmitOrderProof(o, model.StageAdvance, "adv"))

	assert.ErrorIs(t, Ship(o, "BlueDart", "BD1"), apperr.ErrInvalidTransition)
}

func TestShip_RequiresCourierFields(t *testing.T) {
	o := advancePaid(t)

	assert.ErrorIs(t, Ship(o, "", "BD1"), apperr.ErrInvalidRequest)
	assert.ErrorIs(t, Ship(o, "BlueDart", ""), apperr.ErrInvalidRequest)
	assert.Equal(t, model.PhaseAdvancePaid, o.Phase)
}

func TestDeliver_RequiresShipped(t *testing.T) {
	o := advancePaid(t)

	assert.ErrorIs(t, Deliver(o), apperr.ErrInvalidTransition)
}

func TestDeliver_NothingRemaining(t *testing.T) {
	o := advancePaid(t)
	o.RemainingAmount = 0
	require.NoError(t, Ship(o, "India Post", "EE123"))

	require.NoError(t, Deliver(o))
	assert.Equal(t, model.PhaseCompleted, o.Phase)
}

func TestOrderRejection_KeepsPhase(t *testing.T) {
	o := newStoreOrder()
	require.NoError(t, SubmitOrderProof(o, model.StageAdvance, "adv"))

	require.NoError(t, DecideOrderPayment(o, model.StageAdvance, model.OutcomeReject, "не тот получатель"))
	assert.Equal(t, model.PhaseAdvancePending, o.Phase)
	assert.Equal(t, model.VerificationRejected, o.AdvanceStatus)

	require.NoError(t, SubmitOrderProof(o, model.StageAdvance, "adv-2"))
	assert.Equal(t, model.VerificationUnderReview, o.AdvanceStatus)
}

func TestOrderDecision_Twice(t *testing.T) {
	o := advancePaid(t)
	before := *o

	err := DecideOrderPayment(o, model.StageAdvance, model.OutcomeApprove, "")
	assert.ErrorIs(t, err, apperr.ErrAlreadyDecided)
	assert.Equal(t, before, *o)
}

func TestOrderDecision_NoProof(t *testing.T) {
	o := newStoreOrder()

	err := DecideOrderPayment(o, model.StageAdvance, model.OutcomeApprove, "")
	assert.ErrorIs(t, err, apperr.ErrNoProofSubmitted)
	assert.Equal(t, model.PhaseAdvancePending, o.Phase)
}

func TestFinalProof_NotYetDue(t *testing.T) {
	o := advancePaid(t)

	assert.ErrorIs(t, SubmitOrderProof(o, model.StageFinal, "fin"), apperr.ErrInvalidTransition)
}

func TestLegacyOrder_SinglePayment(t *testing.T) {
	o := newStoreOrder()
	o.Phase = model.PhaseLegacyPending
	o.AdvanceAmount = 0
	o.RemainingAmount = o.TotalAmount

	require.NoError(t, SubmitOrderProof(o, model.StageFinal, "full"))
	require.NoError(t, DecideOrderPayment(o, model.StageFinal, model.OutcomeApprove, ""))
	assert.Equal(t, model.PhaseLegacyPaid, o.Phase)
	assert.Equal(t, model.OrderProcessing, o.Status())

	require.NoError(t, Ship(o, "DTDC", "D1"))
	require.NoError(t, Deliver(o))
	assert.Equal(t, model.PhaseCompleted, o.Phase)
}

func TestCancelOrder(t *testing.T) {
	o := advancePaid(t)
	require.NoError(t, CancelOrder(o, ""))
	assert.Equal(t, model.OrderCancelled, o.Status())
	assert.NotEmpty(t, o.CancelReason)

	shipped := advancePaid(t)
	require.NoError(t, Ship(shipped, "DTDC", "D1"))
	assert.ErrorIs(t, CancelOrder(shipped, "поздно"), apperr.ErrInvalidTransition)
}
