package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penzionapp/guesthouse-booking-backend/internal/pricing"
)

func pendingReservation() *Reservation {
	return &Reservation{
		ID:         "res-1",
		Status:     StatusPending,
		TotalPrice: 2400,
	}
}

func TestMarkPaid(t *testing.T) {
	r := pendingReservation()
	require.NoError(t, r.MarkPaid())

	assert.Equal(t, StatusPaid, r.Status)
	assert.True(t, r.DepositPaid)
	assert.True(t, r.FinalPaymentPaid)
}

func TestMarkPaidFromConfirmed(t *testing.T) {
	r := pendingReservation()
	r.Status = StatusConfirmed

	require.NoError(t, r.MarkPaid())
	assert.Equal(t, StatusPaid, r.Status)
}

func TestMarkDepositPaidKeepsStatus(t *testing.T) {
	r := pendingReservation()
	require.NoError(t, r.MarkDepositPaid())

	assert.True(t, r.DepositPaid)
	assert.False(t, r.FinalPaymentPaid)
	assert.Equal(t, StatusPending, r.Status)
}

func TestPaymentsConvergeToPaid(t *testing.T) {
	t.Run("deposit then final", func(t *testing.T) {
		r := pendingReservation()
		require.NoError(t, r.MarkDepositPaid())
		require.NoError(t, r.MarkFinalPaymentPaid())
		assert.Equal(t, StatusPaid, r.Status)
	})

	t.Run("final then deposit", func(t *testing.T) {
		r := pendingReservation()
		require.NoError(t, r.MarkFinalPaymentPaid())
		assert.Equal(t, StatusPending, r.Status)
		require.NoError(t, r.MarkDepositPaid())
		assert.Equal(t, StatusPaid, r.Status)
	})
}

func TestPaymentMarksRejectedWhenCancelled(t *testing.T) {
	r := pendingReservation()
	r.Cancel(nil, "")

	assert.ErrorIs(t, r.MarkPaid(), ErrCancelled)
	assert.ErrorIs(t, r.MarkDepositPaid(), ErrCancelled)
	assert.ErrorIs(t, r.MarkFinalPaymentPaid(), ErrCancelled)
	assert.Equal(t, StatusCancelled, r.Status)
}

func TestCancelRecordsRefund(t *testing.T) {
	r := pendingReservation()
	refund := 1200
	r.Cancel(&refund, "guest illness")

	assert.Equal(t, StatusCancelled, r.Status)
	require.NotNil(t, r.RefundAmount)
	assert.Equal(t, 1200, *r.RefundAmount)
	assert.Equal(t, "guest illness", r.RefundReason)
}

func TestCancelWithoutRefundLeavesFieldsAlone(t *testing.T) {
	r := pendingReservation()
	r.Cancel(nil, "")

	assert.Equal(t, StatusCancelled, r.Status)
	assert.Nil(t, r.RefundAmount)
	assert.Empty(t, r.RefundReason)
}

func TestCancelPaidKeepsPaymentHistory(t *testing.T) {
	r := pendingReservation()
	require.NoError(t, r.MarkPaid())

	refund := 2400
	r.Cancel(&refund, "full refund")

	assert.Equal(t, StatusCancelled, r.Status)
	assert.True(t, r.DepositPaid)
	assert.True(t, r.FinalPaymentPaid)
}

func TestDepositFrozenAtCreation(t *testing.T) {
	// The deposit is computed once from the percentage in force at creation.
	total := 2400
	deposit := pricing.DepositAmount(total, 50)
	assert.Equal(t, 1200, deposit)

	// A later percentage change has no bearing on the stored amount.
	assert.NotEqual(t, deposit, pricing.DepositAmount(total, 30))
}

func TestStayViewTracksCancellation(t *testing.T) {
	r := pendingReservation()
	assert.False(t, r.Stay().Cancelled)

	r.Cancel(nil, "")
	assert.True(t, r.Stay().Cancelled)
}
