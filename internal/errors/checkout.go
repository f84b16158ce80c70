package errors

import "errors"

// Backend error codes recognized by the checkout orchestrator. The code
// decides whether the failure surfaces as a field error or a banner.
const (
	CodePSPRoutingFailed  = "PSP_ROUTING_FAILED"
	CodeInvalidCardNumber = "INVALID_CARD_NUMBER"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeLinkNotPayable    = "LINK_NOT_PAYABLE"
	CodeSessionNotFound   = "SESSION_NOT_FOUND"
)

// ErrNoConnection marks a transport-level failure: no response was obtained
// from the upstream backend at all.
var ErrNoConnection = errors.New("no connection to the server")

var (
	ErrLinkNotPayable = &DomainError{
		Code:    CodeLinkNotPayable,
		Message: "this link no longer accepts payments",
	}
	ErrSessionNotFound = &DomainError{
		Code:    CodeSessionNotFound,
		Message: "checkout session not found",
	}
)
