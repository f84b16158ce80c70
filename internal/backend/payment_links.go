package backend

import (
	"context"
	"net/http"
	"strconv"

	"paylink/internal/models"
)

// GetPaymentLink fetches a payment-link view by slug with its fee
// normalized.
func (c *Client) GetPaymentLink(ctx context.Context, slug string) (*models.PaymentLinkView, error) {
	var link models.PaymentLinkView
	if err := c.do(ctx, http.MethodGet, "/payment-links/"+slug, nil, &link, "payment link not found"); err != nil {
		return nil, err
	}
	link.NormalizeFees()
	return &link, nil
}

// CreatePaymentLink creates a payment link on behalf of a merchant.
func (c *Client) CreatePaymentLink(ctx context.Context, req *models.CreatePaymentLinkRequest) (*models.PaymentLinkView, error) {
	var link models.PaymentLinkView
	if err := c.do(ctx, http.MethodPost, "/payment-links", req, &link, "could not create the payment link"); err != nil {
		return nil, err
	}
	link.NormalizeFees()
	return &link, nil
}

// UpdatePaymentLink edits an existing payment link.
func (c *Client) UpdatePaymentLink(ctx context.Context, slug string, req *models.UpdatePaymentLinkRequest) (*models.PaymentLinkView, error) {
	var link models.PaymentLinkView
	if err := c.do(ctx, http.MethodPut, "/payment-links/"+slug, req, &link, "could not update the payment link"); err != nil {
		return nil, err
	}
	link.NormalizeFees()
	return &link, nil
}

// DeletePaymentLink removes a payment link owned by the given merchant.
func (c *Client) DeletePaymentLink(ctx context.Context, slug string, merchantID int64) error {
	path := "/payment-links/" + slug + "?merchantId=" + strconv.FormatInt(merchantID, 10)
	return c.do(ctx, http.MethodDelete, path, nil, nil, "could not delete the payment link")
}

// ListPaymentLinks lists payment links, optionally filtered by merchant.
// Every row comes back fee-normalized.
func (c *Client) ListPaymentLinks(ctx context.Context, merchantID *int64) ([]models.PaymentLinkView, error) {
	path := "/payment-links"
	if merchantID != nil {
		path += "?merchantId=" + strconv.FormatInt(*merchantID, 10)
	}

	var links []models.PaymentLinkView
	if err := c.do(ctx, http.MethodGet, path, nil, &links, "could not load the payment links"); err != nil {
		return nil, err
	}
	for i := range links {
		links[i].NormalizeFees()
	}
	return links, nil
}
