package model

// Stripe webhook event envelope. Only the fields the reconciliation
// path reads are decoded; data.object.id is the payment intent id for
// payment_intent.* events.
type StripeEvent struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Created int64           `json:"created"`
	Data    StripeEventData `json:"data"`
}

type StripeEventData struct {
	Object StripeEventObject `json:"object"`
}

type StripeEventObject struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
