package models

// Payment link lifecycle states, owned by the upstream backend. A link only
// accepts payment attempts while it is in LinkStatusCreated.
const (
	LinkStatusCreated = "CREATED"
	LinkStatusPaid    = "PAID"
	LinkStatusExpired = "EXPIRED"
)

// FeeBreakdown itemizes the charges reconciling the base amount to the
// final payable amount. It is owned by the backend; this service only reads
// it.
type FeeBreakdown struct {
	BaseAmount        float64 `json:"baseAmount"`
	ProcessingFee     float64 `json:"processingFee"`
	FXFee             float64 `json:"fxFee"`
	IncentiveDiscount float64 `json:"incentiveDiscount"`
	TotalFees         float64 `json:"totalFees"`
	FinalAmount       float64 `json:"finalAmount"`
	Currency          string  `json:"currency"`
}

// PaymentLinkView is the backend's representation of a payment link. The
// fee object may arrive under either feeBreakdown or feePreview depending
// on the backend version; NormalizeFees reconciles the two.
type PaymentLinkView struct {
	ID           int64         `json:"id"`
	MerchantID   int64         `json:"merchantId"`
	RecipientID  *int64        `json:"recipientId,omitempty"`
	Amount       float64       `json:"amount"`
	Currency     string        `json:"currency"`
	Description  string        `json:"description,omitempty"`
	Status       string        `json:"status"`
	PreferredPSP string        `json:"preferredPsp,omitempty"`
	ExpiresAt    string        `json:"expiresAt,omitempty"`
	CreatedAt    string        `json:"createdAt,omitempty"`
	UpdatedAt    string        `json:"updatedAt,omitempty"`
	Slug         string        `json:"slug"`
	CheckoutURL  string        `json:"checkoutUrl,omitempty"`
	FeeBreakdown *FeeBreakdown `json:"feeBreakdown,omitempty"`
	FeePreview   *FeeBreakdown `json:"feePreview,omitempty"`
}

// Payable reports whether the link still accepts payment attempts.
func (p *PaymentLinkView) Payable() bool {
	return p.Status == LinkStatusCreated
}

// NormalizeFees folds the fallback fee field into the canonical one. A link
// without fee data keeps a nil FeeBreakdown; callers must treat that as
// "no fee data", not an error.
func (p *PaymentLinkView) NormalizeFees() {
	p.FeeBreakdown = NormalizeFee(p.FeeBreakdown, p.FeePreview)
	p.FeePreview = nil
}

// NormalizeFee picks the canonical fee object: the primary field wins, the
// fallback is used when the primary is absent.
func NormalizeFee(breakdown, preview *FeeBreakdown) *FeeBreakdown {
	if breakdown != nil {
		return breakdown
	}
	return preview
}

// CreatePaymentLinkRequest is the merchant-side payload for creating a
// link.
type CreatePaymentLinkRequest struct {
	MerchantID  int64   `json:"merchantId"`
	RecipientID *int64  `json:"recipientId,omitempty"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description,omitempty"`
	ExpiresAt   string  `json:"expiresAt,omitempty"`
}

// UpdatePaymentLinkRequest is the merchant-side payload for editing a link.
type UpdatePaymentLinkRequest struct {
	MerchantID  int64   `json:"merchantId"`
	RecipientID *int64  `json:"recipientId,omitempty"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description,omitempty"`
	ExpiresAt   string  `json:"expiresAt,omitempty"`
}
