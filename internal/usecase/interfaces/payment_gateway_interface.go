package interfaces

import (
	"context"
	"encoding/json"
)

// ProviderPayment is the subset of a provider payment the checkout hand-off checks.
type ProviderPayment struct {
	ID                string
	Status            string
	TransactionAmount float64
	CurrencyID        string
	Raw               json.RawMessage
}

// IPaymentGateway abstracts external card payment providers (e.g. Mercado Pago).
//
// Checkout hands over a provider payment id; the gateway confirms it exists and
// reports its status before any booking is created from it.
type IPaymentGateway interface {
	GetPayment(ctx context.Context, providerPaymentID string) (ProviderPayment, error)
}
