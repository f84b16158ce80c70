// Package checkout drives the checkout state machine: it validates card
// input, runs the tokenize and payment-processing calls in order, and turns
// every failure into a user-facing outcome.
package checkout

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/google/uuid"

	apperrors "paylink/internal/errors"
	"paylink/internal/models"
	"paylink/internal/psp"
	"paylink/internal/validation"
)

// Banner messages for the outcomes a payer cannot self-correct from.
const (
	MsgPaymentNotProcessed = "payment could not be processed"
	MsgPaymentFallback     = "payment could not be processed, try again in a few minutes"
	MsgNoConnection        = "no connection to the server"
	MsgPSPRoutingFailed    = "payment failed after trying multiple providers, retry later"
)

// LinkLoader fetches a payment-link view by slug.
type LinkLoader interface {
	Get(ctx context.Context, slug string) (*models.PaymentLinkView, error)
}

// Tokenizer exchanges card data for a single-use PSP token. Implementations
// are the local simulator and the backend tokenize endpoint.
type Tokenizer interface {
	Tokenize(ctx context.Context, slug string, card models.CardInput, preferred psp.Provider) (*psp.TokenizeResult, error)
}

// Processor executes the payment for a tokenized card.
type Processor interface {
	ProcessPayment(ctx context.Context, slug string, req *models.ProcessPaymentRequest) (*models.ProcessPaymentResponse, error)
}

type Service interface {
	CreateSession(ctx context.Context, slug string) (*SessionView, error)
	Session(id string) (*SessionView, error)
	Pay(ctx context.Context, id string, card models.CardInput) (*SessionView, error)
	Retry(ctx context.Context, id string) (*SessionView, error)
	EditField(id, field string) (*SessionView, error)
}

type service struct {
	links     LinkLoader
	tokenizer Tokenizer
	processor Processor
	validator *validation.CardValidator

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewService(links LinkLoader, tokenizer Tokenizer, processor Processor, validator *validation.CardValidator) Service {
	return &service{
		links:     links,
		tokenizer: tokenizer,
		processor: processor,
		validator: validator,
		sessions:  make(map[string]*Session),
	}
}

// CreateSession loads the link for slug and opens a checkout session on it.
// A link past its CREATED state is refused up front.
func (s *service) CreateSession(ctx context.Context, slug string) (*SessionView, error) {
	link, err := s.links.Get(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !link.Payable() {
		return nil, apperrors.ErrLinkNotPayable
	}

	sess := &Session{
		ID:     uuid.NewString(),
		Slug:   slug,
		link:   link,
		status: StatusIdle,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.viewLocked(), nil
}

// Session returns the current view of an open session.
func (s *service) Session(id string) (*SessionView, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.viewLocked(), nil
}

// Pay runs one checkout attempt with freshly submitted card data. While an
// attempt is in flight, or when the link is no longer payable, the call is
// an idempotent no-op returning the current state.
func (s *service) Pay(ctx context.Context, id string, card models.CardInput) (*SessionView, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return s.submit(ctx, sess, card), nil
}

// Retry replays the retained last attempt after an error outcome. The card
// data is reused exactly as submitted; nothing is re-prompted or mutated.
func (s *service) Retry(ctx context.Context, id string) (*SessionView, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.status != StatusError || sess.lastAttempt == nil {
		view := sess.viewLocked()
		sess.mu.Unlock()
		return view, nil
	}
	card := *sess.lastAttempt
	sess.mu.Unlock()

	return s.submit(ctx, sess, card), nil
}

// EditField clears the standing error on one field plus the general error,
// mirroring a payer editing that input.
func (s *service) EditField(id, field string) (*SessionView, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.fieldErrors.ClearField(field)
	return sess.viewLocked(), nil
}

func (s *service) get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return sess, nil
}

// submit is the single path for fresh submissions and retries. The session
// lock is held only while mutating state, never across network calls; the
// processing status itself is the in-flight guard.
func (s *service) submit(ctx context.Context, sess *Session, card models.CardInput) *SessionView {
	sess.mu.Lock()
	if sess.status == StatusProcessing || sess.link == nil || !sess.link.Payable() {
		view := sess.viewLocked()
		sess.mu.Unlock()
		return view
	}

	// A fresh submission clears all standing errors before anything else.
	sess.banner = ""
	sess.fieldErrors = nil

	if fieldErrors := s.validator.Validate(card); len(fieldErrors) > 0 {
		sess.fieldErrors = fieldErrors
		view := sess.viewLocked()
		sess.mu.Unlock()
		return view
	}

	attempt := card
	sess.lastAttempt = &attempt
	sess.status = StatusProcessing
	preferred := preferredProvider(sess.link)
	sess.mu.Unlock()

	result := s.attempt(ctx, sess.Slug, card, preferred)

	sess.mu.Lock()
	sess.status = result.status
	sess.banner = result.banner
	sess.fieldErrors = result.fieldErrors
	if result.payment != nil {
		sess.payment = result.payment
	}
	out := sess.viewLocked()
	sess.mu.Unlock()
	return out
}

// outcome is the classified result of one attempt. Exactly one of banner
// and fieldErrors is set when status is error.
type outcome struct {
	status      Status
	banner      string
	fieldErrors models.FieldErrors
	payment     *models.ProcessPaymentResponse
}

// attempt performs tokenize then exactly one payment-processing call for
// the resulting token. Tokens are never reused across calls.
func (s *service) attempt(ctx context.Context, slug string, card models.CardInput, preferred psp.Provider) outcome {
	token, err := s.tokenizer.Tokenize(ctx, slug, card, preferred)
	if err != nil {
		return classify(err)
	}

	payment, err := s.processor.ProcessPayment(ctx, slug, &models.ProcessPaymentRequest{
		PSPToken: token.Token,
		PSPHint:  string(token.Hint),
	})
	if err != nil {
		return classify(err)
	}

	if payment.PaymentStatus != models.PaymentStatusCaptured {
		return outcome{status: StatusError, banner: MsgPaymentNotProcessed, payment: payment}
	}
	return outcome{status: StatusSuccess, payment: payment}
}

// classify maps any tokenize or processing failure onto the error taxonomy.
// Known backend codes decide field-vs-banner placement; everything else
// degrades to a banner carrying the error's own message.
func classify(err error) outcome {
	if stderrors.Is(err, apperrors.ErrNoConnection) {
		return outcome{status: StatusError, banner: MsgNoConnection}
	}

	var domainErr *apperrors.DomainError
	if stderrors.As(err, &domainErr) {
		switch domainErr.Code {
		case apperrors.CodePSPRoutingFailed:
			return outcome{status: StatusError, banner: MsgPSPRoutingFailed}
		case apperrors.CodeInvalidCardNumber:
			msg := domainErr.Message
			if msg == "" {
				msg = "invalid card number"
			}
			return outcome{status: StatusError, fieldErrors: models.FieldErrors{models.FieldNumber: msg}}
		case apperrors.CodeInvalidInput:
			msg := domainErr.Message
			if msg == "" {
				msg = "check the submitted data"
			}
			return outcome{status: StatusError, fieldErrors: models.FieldErrors{models.FieldGeneral: msg}}
		}
	}

	if msg := err.Error(); msg != "" {
		return outcome{status: StatusError, banner: msg}
	}
	return outcome{status: StatusError, banner: MsgPaymentFallback}
}

func preferredProvider(link *models.PaymentLinkView) psp.Provider {
	if link != nil && psp.Provider(link.PreferredPSP) == psp.Adyen {
		return psp.Adyen
	}
	return psp.Stripe
}
