package backend

import (
	"context"
	"net/http"

	"paylink/internal/models"
)

// TokenizeCard exchanges raw card data for a PSP token through the backend's
// checkout tokenize endpoint. Used in production mode in place of the local
// simulator.
func (c *Client) TokenizeCard(ctx context.Context, slug string, req *models.TokenizeRequest) (*models.TokenizeResponse, error) {
	var res models.TokenizeResponse
	if err := c.do(ctx, http.MethodPost, "/checkout/"+slug+"/tokenize", req, &res, "could not tokenize the card"); err != nil {
		return nil, err
	}
	return &res, nil
}

// ProcessPayment executes the payment for a tokenized card. Each token must
// be submitted at most once; the caller owns that invariant.
func (c *Client) ProcessPayment(ctx context.Context, slug string, req *models.ProcessPaymentRequest) (*models.ProcessPaymentResponse, error) {
	var res models.ProcessPaymentResponse
	if err := c.do(ctx, http.MethodPost, "/payment-links/"+slug+"/pay", req, &res, "error processing the payment"); err != nil {
		return nil, err
	}
	res.NormalizeFees()
	return &res, nil
}
