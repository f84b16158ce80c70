package checkout

import (
	"sync"

	"paylink/internal/models"
)

// Status is the client-visible checkout state. Exactly one value is live per
// session: idle -> processing -> {success, error}; error re-enters
// processing on retry.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Session is one payer's view of a payment link. It retains the last
// submitted card so a retry can replay it without re-prompting, and it is
// the unit of the single-flight guarantee: at most one payment attempt may
// be in flight per session.
type Session struct {
	ID   string
	Slug string

	mu          sync.Mutex
	link        *models.PaymentLinkView
	status      Status
	banner      string
	fieldErrors models.FieldErrors
	lastAttempt *models.CardInput
	payment     *models.ProcessPaymentResponse
}

// SessionView is the JSON shape returned to the checkout screen. For any
// failure exactly one of Banner and FieldErrors is populated, never both.
type SessionView struct {
	ID          string                         `json:"id"`
	Status      Status                         `json:"status"`
	Banner      string                         `json:"banner,omitempty"`
	FieldErrors models.FieldErrors             `json:"fieldErrors,omitempty"`
	Link        *models.PaymentLinkView        `json:"link"`
	Fee         *models.FeeBreakdown           `json:"fee,omitempty"`
	Payment     *models.ProcessPaymentResponse `json:"payment,omitempty"`
	CanRetry    bool                           `json:"canRetry"`
}

// viewLocked snapshots the session. Callers must hold s.mu.
func (s *Session) viewLocked() *SessionView {
	var fieldErrors models.FieldErrors
	if len(s.fieldErrors) > 0 {
		fieldErrors = make(models.FieldErrors, len(s.fieldErrors))
		for k, v := range s.fieldErrors {
			fieldErrors[k] = v
		}
	}

	var fee *models.FeeBreakdown
	if s.link != nil {
		fee = s.link.FeeBreakdown
	}

	return &SessionView{
		ID:          s.ID,
		Status:      s.status,
		Banner:      s.banner,
		FieldErrors: fieldErrors,
		Link:        s.link,
		Fee:         fee,
		Payment:     s.payment,
		CanRetry:    s.status == StatusError && s.lastAttempt != nil && s.link != nil && s.link.Payable(),
	}
}
