// Package validation checks raw card input before any network call is made.
package validation

import (
	"regexp"
	"strconv"

	"paylink/internal/models"
)

var (
	numberRegex = regexp.MustCompile(`^\d{16}$`)
	yearRegex   = regexp.MustCompile(`^\d{1,2}$`)
	cvcRegex    = regexp.MustCompile(`^\d{3}$`)
)

// CardValidator applies the form-level card rules. The PSP tokenizer
// re-validates independently with its own, slightly looser rules; the two
// layers are deliberately kept separate.
type CardValidator struct {
	// SkipLuhn disables the checksum rule. Deployments differ on whether
	// structurally valid test numbers must also pass the checksum.
	SkipLuhn bool
}

func NewCardValidator() *CardValidator {
	return &CardValidator{}
}

// Validate runs the rules as a short-circuit pipeline: the first failing
// rule reports its field and the remaining rules are skipped. A nil result
// means the input passed.
func (v *CardValidator) Validate(card models.CardInput) models.FieldErrors {
	number := card.NormalizedNumber()
	if !numberRegex.MatchString(number) {
		return models.FieldErrors{models.FieldNumber: "must contain exactly 16 digits"}
	}

	if !v.SkipLuhn && !LuhnValid(number) {
		return models.FieldErrors{models.FieldNumber: "invalid card number"}
	}

	month, err := strconv.Atoi(card.ExpMonth)
	if err != nil || month < 1 || month > 12 {
		return models.FieldErrors{models.FieldMonth: "month must be between 1 and 12"}
	}

	if !yearRegex.MatchString(card.ExpYear) {
		return models.FieldErrors{models.FieldYear: "year must be 1 or 2 digits"}
	}

	if !cvcRegex.MatchString(card.CVC) {
		return models.FieldErrors{models.FieldCVC: "CVC must be 3 digits"}
	}

	return nil
}

// LuhnValid reports whether a digit string passes the Luhn checksum: from
// the rightmost digit moving left, every second digit is doubled (minus 9
// when the double exceeds 9) and the total must be divisible by 10.
func LuhnValid(number string) bool {
	var sum int
	double := false

	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}
