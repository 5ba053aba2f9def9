package reservation

// Lifecycle transitions. These mutate the in-memory record only; persisting
// the result is the caller's job. None of them re-checks calendar collisions:
// a cancelled reservation frees its slots purely through its status.

// MarkPaid marks the whole stay as settled, regardless of how the deposit
// split stood before.
func (r *Reservation) MarkPaid() error {
	if r.Status == StatusCancelled {
		return ErrCancelled
	}
	r.Status = StatusPaid
	r.DepositPaid = true
	r.FinalPaymentPaid = true
	return nil
}

// MarkDepositPaid records the deposit payment. When the final payment was
// already recorded the reservation converges to paid.
func (r *Reservation) MarkDepositPaid() error {
	if r.Status == StatusCancelled {
		return ErrCancelled
	}
	r.DepositPaid = true
	if r.FinalPaymentPaid {
		r.Status = StatusPaid
	}
	return nil
}

// MarkFinalPaymentPaid records the final payment. When the deposit was
// already recorded the reservation converges to paid.
func (r *Reservation) MarkFinalPaymentPaid() error {
	if r.Status == StatusCancelled {
		return ErrCancelled
	}
	r.FinalPaymentPaid = true
	if r.DepositPaid {
		r.Status = StatusPaid
	}
	return nil
}

// Cancel moves the reservation to its terminal state and records the refund
// decision when one was made. Allowed from any state, including paid. The
// payment flags are kept as a historical record of what was actually paid.
func (r *Reservation) Cancel(refundAmount *int, refundReason string) {
	r.Status = StatusCancelled
	if refundAmount != nil {
		r.RefundAmount = refundAmount
	}
	if refundReason != "" {
		r.RefundReason = refundReason
	}
}
