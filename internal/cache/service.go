// Package cache provides a short-lived Redis cache for payment-link views.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"paylink/internal/models"
)

type Service struct {
	client *redis.Client
	ttl    time.Duration
}

func NewService(client *redis.Client, defaultTTL time.Duration) *Service {
	return &Service{
		client: client,
		ttl:    defaultTTL,
	}
}

func linkKey(slug string) string {
	return fmt.Sprintf("paylink:link:%s", slug)
}

// GetLink returns the cached link view for slug, or nil on a cache miss.
func (s *Service) GetLink(ctx context.Context, slug string) (*models.PaymentLinkView, error) {
	data, err := s.client.Get(ctx, linkKey(slug)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached link: %w", err)
	}

	var link models.PaymentLinkView
	if err := sonic.Unmarshal(data, &link); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached link: %w", err)
	}
	return &link, nil
}

// SetLink caches a link view under its slug with the default TTL.
func (s *Service) SetLink(ctx context.Context, link *models.PaymentLinkView) error {
	data, err := sonic.Marshal(link)
	if err != nil {
		return fmt.Errorf("failed to marshal link: %w", err)
	}
	return s.client.Set(ctx, linkKey(link.Slug), data, s.ttl).Err()
}

// InvalidateLink drops the cached view for slug. Called after merchant edits
// and deletes so stale lifecycle states never reach a checkout.
func (s *Service) InvalidateLink(ctx context.Context, slug string) error {
	return s.client.Del(ctx, linkKey(slug)).Err()
}

// Ping verifies the Redis connection.
func (s *Service) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis client connection.
func (s *Service) Close() error {
	return s.client.Close()
}
