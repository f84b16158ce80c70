package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFee(t *testing.T) {
	breakdown := &FeeBreakdown{BaseAmount: 100, FinalAmount: 104, Currency: "COP"}
	preview := &FeeBreakdown{BaseAmount: 100, FinalAmount: 105, Currency: "COP"}

	t.Run("prefers the primary field", func(t *testing.T) {
		assert.Same(t, breakdown, NormalizeFee(breakdown, preview))
	})

	t.Run("falls back to the preview field", func(t *testing.T) {
		assert.Same(t, preview, NormalizeFee(nil, preview))
	})

	t.Run("absent fee stays absent", func(t *testing.T) {
		assert.Nil(t, NormalizeFee(nil, nil))
	})
}

func TestPaymentLinkViewNormalizeFees(t *testing.T) {
	preview := &FeeBreakdown{BaseAmount: 50, Currency: "USD"}
	link := PaymentLinkView{Slug: "abc", FeePreview: preview}

	link.NormalizeFees()

	assert.Same(t, preview, link.FeeBreakdown)
	assert.Nil(t, link.FeePreview)
}

func TestProcessPaymentResponseNormalizeFees(t *testing.T) {
	fee := &FeeBreakdown{BaseAmount: 10}
	res := ProcessPaymentResponse{PaymentStatus: PaymentStatusCaptured, FeePreview: fee}

	res.NormalizeFees()

	assert.Same(t, fee, res.FeeBreakdown)
	assert.Nil(t, res.FeePreview)
}

func TestPaymentLinkViewPayable(t *testing.T) {
	tests := []struct {
		status  string
		payable bool
	}{
		{LinkStatusCreated, true},
		{LinkStatusPaid, false},
		{LinkStatusExpired, false},
		{"CANCELLED", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			link := PaymentLinkView{Status: tt.status}
			assert.Equal(t, tt.payable, link.Payable())
		})
	}
}

func TestCardInputNormalizedNumber(t *testing.T) {
	card := CardInput{Number: " 4242 4242 4242 4242 "}
	assert.Equal(t, "4242424242424242", card.NormalizedNumber())
}

func TestFieldErrorsClearField(t *testing.T) {
	errs := FieldErrors{
		FieldNumber:  "invalid card number",
		FieldCVC:     "CVC must be 3 digits",
		FieldGeneral: "check the submitted data",
	}

	errs.ClearField(FieldNumber)

	assert.NotContains(t, errs, FieldNumber)
	assert.NotContains(t, errs, FieldGeneral)
	assert.Equal(t, "CVC must be 3 digits", errs[FieldCVC])
}
