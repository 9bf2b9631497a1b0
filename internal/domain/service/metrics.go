package service

// Checkout outcomes reported to CheckoutRecorder.
const (
	CheckoutOutcomePlaced    = "placed"
	CheckoutOutcomeCartEmpty = "cart_empty"
	CheckoutOutcomeRejected  = "rejected"
	CheckoutOutcomeFailed    = "failed"
)

// CheckoutRecorder counts checkout attempts by outcome.
type CheckoutRecorder interface {
	RecordCheckout(outcome string)
}
