package models

import "strings"

// Field names used for field-scoped validation errors. "general" carries
// messages that do not belong to a single input.
const (
	FieldNumber  = "number"
	FieldMonth   = "month"
	FieldYear    = "year"
	FieldCVC     = "cvc"
	FieldGeneral = "general"
)

// CardInput holds raw card data as submitted by the payer. It lives only for
// the duration of a checkout attempt and is never persisted.
type CardInput struct {
	Number   string `json:"number"`
	ExpMonth string `json:"expMonth"`
	ExpYear  string `json:"expYear"`
	CVC      string `json:"cvc"`
}

// NormalizedNumber returns the card number with all whitespace stripped.
func (c CardInput) NormalizedNumber() string {
	return strings.Join(strings.Fields(c.Number), "")
}

// FieldErrors maps a field name to a user-facing message. An empty map (or
// nil) means the input passed validation.
type FieldErrors map[string]string

// ClearField removes the standing error on field and the general error.
// Editing an input invalidates both: the field message no longer describes
// the current value, and the general banner refers to the prior submission.
func (f FieldErrors) ClearField(field string) {
	delete(f, field)
	delete(f, FieldGeneral)
}
