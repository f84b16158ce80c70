package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "paylink/internal/errors"
	"paylink/internal/models"
)

func newTestClient(handler http.Handler) (*Client, func()) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 2*time.Second), srv.Close
}

func TestGetPaymentLink(t *testing.T) {
	client, stop := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/payment-links/abc", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"id":     1,
			"slug":   "abc",
			"status": "CREATED",
			"feePreview": map[string]any{
				"baseAmount":  100,
				"finalAmount": 104,
				"currency":    "USD",
			},
		})
	}))
	defer stop()

	link, err := client.GetPaymentLink(context.Background(), "abc")
	require.NoError(t, err)

	assert.Equal(t, "abc", link.Slug)
	// The fallback fee field is folded into the canonical one.
	require.NotNil(t, link.FeeBreakdown)
	assert.Equal(t, 104.0, link.FeeBreakdown.FinalAmount)
	assert.Nil(t, link.FeePreview)
}

func TestStructuredErrorDecoding(t *testing.T) {
	client, stop := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "card number rejected",
			"code":    "INVALID_CARD_NUMBER",
		})
	}))
	defer stop()

	_, err := client.ProcessPayment(context.Background(), "abc", &models.ProcessPaymentRequest{PSPToken: "tok"})
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CARD_NUMBER", domainErr.Code)
	assert.Equal(t, "card number rejected", domainErr.Message)
}

func TestFallbackMessageOnEmptyErrorBody(t *testing.T) {
	client, stop := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))
	defer stop()

	_, err := client.TokenizeCard(context.Background(), "abc", &models.TokenizeRequest{})
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "could not tokenize the card", domainErr.Message)
	assert.Empty(t, domainErr.Code)
}

func TestNoConnection(t *testing.T) {
	// A closed server leaves nothing listening on the port.
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, 500*time.Millisecond)

	_, err := client.GetPaymentLink(context.Background(), "abc")
	assert.ErrorIs(t, err, apperrors.ErrNoConnection)
}

func TestProcessPayment(t *testing.T) {
	client, stop := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment-links/abc/pay", r.URL.Path)

		var req models.ProcessPaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sim_stripe_ok", req.PSPToken)
		assert.Equal(t, "STRIPE", req.PSPHint)

		json.NewEncoder(w).Encode(map[string]any{
			"paymentId":     42,
			"paymentStatus": "CAPTURED",
			"pspUsed":       "STRIPE",
		})
	}))
	defer stop()

	res, err := client.ProcessPayment(context.Background(), "abc", &models.ProcessPaymentRequest{
		PSPToken: "sim_stripe_ok",
		PSPHint:  "STRIPE",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.PaymentID)
	assert.Equal(t, "CAPTURED", res.PaymentStatus)
}

func TestListPaymentLinks(t *testing.T) {
	client, stop := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment-links", r.URL.Path)
		assert.Equal(t, "9", r.URL.Query().Get("merchantId"))

		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "slug": "a", "status": "CREATED", "feePreview": map[string]any{"finalAmount": 10}},
			{"id": 2, "slug": "b", "status": "PAID"},
		})
	}))
	defer stop()

	merchantID := int64(9)
	links, err := client.ListPaymentLinks(context.Background(), &merchantID)
	require.NoError(t, err)
	require.Len(t, links, 2)

	assert.NotNil(t, links[0].FeeBreakdown)
	assert.Nil(t, links[1].FeeBreakdown, "missing fee data stays absent")
}

func TestDeletePaymentLink(t *testing.T) {
	client, stop := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/payment-links/abc", r.URL.Path)
		assert.Equal(t, "9", r.URL.Query().Get("merchantId"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer stop()

	assert.NoError(t, client.DeletePaymentLink(context.Background(), "abc", 9))
}
