// Package psp models the payment-service-provider boundary: provider names,
// tokenization results, and a deterministic simulator used in place of a
// real PSP SDK in local and development environments.
package psp

// Provider identifies a payment service provider.
type Provider string

const (
	Stripe Provider = "STRIPE"
	Adyen  Provider = "ADYEN"
)

// TokenizeResult is the outcome of a successful tokenization. The token is
// an opaque single-use reference; it must be consumed by exactly one
// payment-processing call.
type TokenizeResult struct {
	Token string
	Hint  Provider
}
