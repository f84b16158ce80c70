// Package paymentlink forwards merchant CRUD operations to the upstream
// backend and serves payment-link views to the checkout flow, with a
// cache-aside layer in front of lookups by slug.
package paymentlink

import (
	"context"
	"log"
	"net/url"

	"paylink/internal/models"
)

// Client is the subset of the backend API this service depends on.
type Client interface {
	GetPaymentLink(ctx context.Context, slug string) (*models.PaymentLinkView, error)
	CreatePaymentLink(ctx context.Context, req *models.CreatePaymentLinkRequest) (*models.PaymentLinkView, error)
	UpdatePaymentLink(ctx context.Context, slug string, req *models.UpdatePaymentLinkRequest) (*models.PaymentLinkView, error)
	DeletePaymentLink(ctx context.Context, slug string, merchantID int64) error
	ListPaymentLinks(ctx context.Context, merchantID *int64) ([]models.PaymentLinkView, error)
}

// Cache stores link views by slug. A nil Cache disables caching.
type Cache interface {
	GetLink(ctx context.Context, slug string) (*models.PaymentLinkView, error)
	SetLink(ctx context.Context, link *models.PaymentLinkView) error
	InvalidateLink(ctx context.Context, slug string) error
}

type Service interface {
	Get(ctx context.Context, slug string) (*models.PaymentLinkView, error)
	Create(ctx context.Context, req *models.CreatePaymentLinkRequest) (*models.PaymentLinkView, error)
	Update(ctx context.Context, slug string, req *models.UpdatePaymentLinkRequest) (*models.PaymentLinkView, error)
	Delete(ctx context.Context, slug string, merchantID int64) error
	List(ctx context.Context, merchantID *int64) ([]models.PaymentLinkView, error)
	ResolveCheckoutURL(raw string) string
}

type service struct {
	client        Client
	cache         Cache
	publicBaseURL string
}

func NewService(client Client, cache Cache, publicBaseURL string) Service {
	return &service{
		client:        client,
		cache:         cache,
		publicBaseURL: publicBaseURL,
	}
}

// Get returns the link view for slug, from cache when possible. Cache
// failures are logged and treated as misses.
func (s *service) Get(ctx context.Context, slug string) (*models.PaymentLinkView, error) {
	if s.cache != nil {
		cached, err := s.cache.GetLink(ctx, slug)
		if err != nil {
			log.Printf("link cache read failed for %s: %v", slug, err)
		} else if cached != nil {
			return s.decorate(cached), nil
		}
	}

	link, err := s.client.GetPaymentLink(ctx, slug)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetLink(ctx, link); err != nil {
			log.Printf("link cache write failed for %s: %v", slug, err)
		}
	}
	return s.decorate(link), nil
}

func (s *service) Create(ctx context.Context, req *models.CreatePaymentLinkRequest) (*models.PaymentLinkView, error) {
	link, err := s.client.CreatePaymentLink(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.decorate(link), nil
}

func (s *service) Update(ctx context.Context, slug string, req *models.UpdatePaymentLinkRequest) (*models.PaymentLinkView, error) {
	link, err := s.client.UpdatePaymentLink(ctx, slug, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, slug)
	return s.decorate(link), nil
}

func (s *service) Delete(ctx context.Context, slug string, merchantID int64) error {
	if err := s.client.DeletePaymentLink(ctx, slug, merchantID); err != nil {
		return err
	}
	s.invalidate(ctx, slug)
	return nil
}

func (s *service) List(ctx context.Context, merchantID *int64) ([]models.PaymentLinkView, error) {
	links, err := s.client.ListPaymentLinks(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	for i := range links {
		s.decorate(&links[i])
	}
	return links, nil
}

// ResolveCheckoutURL resolves a possibly relative checkout URL against the
// configured public base URL. Unparsable input is returned unchanged.
func (s *service) ResolveCheckoutURL(raw string) string {
	if raw == "" {
		return raw
	}
	base, err := url.Parse(s.publicBaseURL)
	if err != nil {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return base.ResolveReference(ref).String()
}

func (s *service) decorate(link *models.PaymentLinkView) *models.PaymentLinkView {
	link.CheckoutURL = s.ResolveCheckoutURL(link.CheckoutURL)
	return link
}

func (s *service) invalidate(ctx context.Context, slug string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateLink(ctx, slug); err != nil {
		log.Printf("link cache invalidation failed for %s: %v", slug, err)
	}
}
