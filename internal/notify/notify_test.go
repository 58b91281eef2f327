package notify

import (
	"atelier/internal/model"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestKafkaNotifier_Notify(t *testing.T) {
	w := &recordingWriter{}
	n := &KafkaNotifier{writer: w, tracer: otel.Tracer("test")}

	ev := NewEvent(EventPaymentDecided, AudienceCustomer, model.EntityCommission, "CM-1A2B3C4D")
	ev.Stage = model.StageAdvance
	ev.Outcome = model.OutcomeApprove

	n.Notify(context.Background(), ev)

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "CM-1A2B3C4D", string(w.msgs[0].Key))

	var got Event
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, EventPaymentDecided, got.Type)
	assert.Equal(t, model.StageAdvance, got.Stage)
	assert.NotEmpty(t, got.ID)
}

func TestKafkaNotifier_WriteErrorIsSwallowed(t *testing.T) {
	w := &recordingWriter{err: errors.New("broker unavailable")}
	n := &KafkaNotifier{writer: w, tracer: otel.Tracer("test")}

	assert.NotPanics(t, func() {
		n.Notify(context.Background(), NewEvent(EventOrderPlaced, AudienceAdmin, model.EntityOrder, "AW-1A2B3C4D"))
	})
	assert.Empty(t, w.msgs)
}
