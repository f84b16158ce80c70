package models

// Terminal payment statuses reported by the backend.
const (
	PaymentStatusCaptured = "CAPTURED"
	PaymentStatusFailed   = "FAILED"
)

// TokenizeRequest is the body of POST /checkout/{slug}/tokenize.
type TokenizeRequest struct {
	CardNumber string `json:"cardNumber"`
	ExpMonth   int    `json:"expMonth"`
	ExpYear    int    `json:"expYear"`
	CVC        string `json:"cvc"`
}

// TokenizeResponse is the backend's answer to a tokenize call.
type TokenizeResponse struct {
	PSPToken  string `json:"pspToken"`
	PSPCode   string `json:"pspCode,omitempty"`
	Last4     string `json:"last4,omitempty"`
	Brand     string `json:"brand,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ProcessPaymentRequest is the body of POST /payment-links/{slug}/pay.
type ProcessPaymentRequest struct {
	PSPToken string `json:"pspToken"`
	PSPHint  string `json:"pspHint,omitempty"`
}

// ProcessPaymentResponse is the outcome of a payment-processing call.
type ProcessPaymentResponse struct {
	PaymentID     int64         `json:"paymentId"`
	PaymentStatus string        `json:"paymentStatus"`
	PSPUsed       string        `json:"pspUsed,omitempty"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	CreatedAt     string        `json:"createdAt,omitempty"`
	FeeBreakdown  *FeeBreakdown `json:"feeBreakdown,omitempty"`
	FeePreview    *FeeBreakdown `json:"feePreview,omitempty"`
}

// NormalizeFees reconciles the two possible fee field names, preferring
// feeBreakdown and falling back to feePreview.
func (r *ProcessPaymentResponse) NormalizeFees() {
	r.FeeBreakdown = NormalizeFee(r.FeeBreakdown, r.FeePreview)
	r.FeePreview = nil
}
