package psp

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"paylink/internal/models"
)

// DefaultDelay approximates the round-trip latency of a real PSP tokenizer.
const DefaultDelay = 800 * time.Millisecond

// Failures the simulator can raise. ErrSDKNetwork simulates a network fault
// inside the PSP client library, not a declined payment; the rest mirror the
// server-side re-validation a production tokenizer performs.
var (
	ErrSDKNetwork      = errors.New("network failure in the PSP SDK")
	ErrInvalidCard     = errors.New("invalid card")
	ErrInvalidExpMonth = errors.New("invalid expiry month")
	ErrExpiredCard     = errors.New("expired card")
	ErrInvalidCVC      = errors.New("invalid CVC")
)

var (
	simNumberRegex = regexp.MustCompile(`^\d{12,19}$`)
	simCVCRegex    = regexp.MustCompile(`^\d{3,4}$`)
)

// suffixRule maps a card-number suffix to a canned outcome. The table is
// ordered and the first match wins. It is a documented test surface: these
// numbers let integration tests and demos exercise every PSP failure branch
// without a sandbox account, so the mapping must not change.
type suffixRule struct {
	suffix string
	err    error
	token  string
	hint   Provider
}

var suffixRules = []suffixRule{
	{suffix: "9999", err: ErrSDKNetwork},
	{suffix: "0001", token: "sim_stripe_exception", hint: Stripe},
	{suffix: "0002", token: "sim_stripe_failed", hint: Stripe},
	{suffix: "0003", token: "sim_adyen_exception", hint: Adyen},
	{suffix: "0004", token: "sim_adyen_failed", hint: Adyen},
}

// Simulator is a deterministic stand-in for a PSP tokenizer.
type Simulator struct {
	delay time.Duration
	now   func() time.Time
}

// NewSimulator returns a simulator with the given artificial latency.
func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{delay: delay, now: time.Now}
}

// Tokenize exchanges card data for a simulated single-use token. It
// re-validates the card with the simulator-level rules, then consults the
// suffix table, and otherwise succeeds with a token matching preferred.
// The artificial delay honors ctx; once past it the call runs to completion.
func (s *Simulator) Tokenize(ctx context.Context, card models.CardInput, preferred Provider) (*TokenizeResult, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	number := card.NormalizedNumber()
	if !simNumberRegex.MatchString(number) {
		return nil, ErrInvalidCard
	}

	month, err := strconv.Atoi(card.ExpMonth)
	if err != nil || month < 1 || month > 12 {
		return nil, ErrInvalidExpMonth
	}

	if expired(card.ExpYear, month, s.now()) {
		return nil, ErrExpiredCard
	}

	if !simCVCRegex.MatchString(card.CVC) {
		return nil, ErrInvalidCVC
	}

	for _, rule := range suffixRules {
		if strings.HasSuffix(number, rule.suffix) {
			if rule.err != nil {
				return nil, rule.err
			}
			return &TokenizeResult{Token: rule.token, Hint: rule.hint}, nil
		}
	}

	if preferred == Adyen {
		return &TokenizeResult{Token: "sim_adyen_ok", Hint: Adyen}, nil
	}
	return &TokenizeResult{Token: "sim_stripe_ok", Hint: Stripe}, nil
}

// expired checks the expiry against the current month. Two-digit years are
// expanded to 2000+YY; an unparsable year counts as expired.
func expired(rawYear string, month int, now time.Time) bool {
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		year = 0
	} else if len(rawYear) == 2 {
		year += 2000
	}

	if year < now.Year() {
		return true
	}
	return year == now.Year() && month < int(now.Month())
}
