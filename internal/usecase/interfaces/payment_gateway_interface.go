package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Card/pix payments recorded at the cash desk are captured through the
// provider first; the provider payment id becomes the ledger reference and
// the raw provider response is kept for traceability.
type IPaymentGateway interface {
	Charge(ctx context.Context, amount float64, method, description string) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
