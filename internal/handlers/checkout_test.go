package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "paylink/internal/errors"
	"paylink/internal/models"
	"paylink/internal/services/checkout"
)

type stubCheckoutService struct {
	view    *checkout.SessionView
	err     error
	gotCard models.CardInput
}

func (s *stubCheckoutService) CreateSession(ctx context.Context, slug string) (*checkout.SessionView, error) {
	return s.view, s.err
}

func (s *stubCheckoutService) Session(id string) (*checkout.SessionView, error) {
	return s.view, s.err
}

func (s *stubCheckoutService) Pay(ctx context.Context, id string, card models.CardInput) (*checkout.SessionView, error) {
	s.gotCard = card
	return s.view, s.err
}

func (s *stubCheckoutService) Retry(ctx context.Context, id string) (*checkout.SessionView, error) {
	return s.view, s.err
}

func (s *stubCheckoutService) EditField(id, field string) (*checkout.SessionView, error) {
	return s.view, s.err
}

func newApp(svc checkout.Service) *fiber.App {
	app := fiber.New()
	h := NewCheckoutHandler(svc)
	app.Post("/api/checkout/:slug/session", h.CreateSession)
	app.Get("/api/checkout/session/:id", h.GetSession)
	app.Post("/api/checkout/session/:id/pay", h.Pay)
	app.Post("/api/checkout/session/:id/retry", h.Retry)
	app.Post("/api/checkout/session/:id/edit", h.EditField)
	return app
}

func TestCreateSessionHandler(t *testing.T) {
	svc := &stubCheckoutService{view: &checkout.SessionView{ID: "s1", Status: checkout.StatusIdle}}
	app := newApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout/abc/session", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var view checkout.SessionView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, "s1", view.ID)
	assert.Equal(t, checkout.StatusIdle, view.Status)
}

func TestCreateSessionHandler_ClosedLink(t *testing.T) {
	svc := &stubCheckoutService{err: apperrors.ErrLinkNotPayable}
	app := newApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout/abc/session", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, apperrors.CodeLinkNotPayable, body["code"])
	assert.NotEmpty(t, body["message"])
}

func TestPayHandler(t *testing.T) {
	svc := &stubCheckoutService{view: &checkout.SessionView{ID: "s1", Status: checkout.StatusSuccess}}
	app := newApp(svc)

	payload, _ := json.Marshal(models.CardInput{Number: "4242424242424242", ExpMonth: "12", ExpYear: "28", CVC: "123"})
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/session/s1/pay", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "4242424242424242", svc.gotCard.Number)
}

func TestPayHandler_SessionNotFound(t *testing.T) {
	svc := &stubCheckoutService{err: apperrors.ErrSessionNotFound}
	app := newApp(svc)

	payload := []byte(`{"number":"4242424242424242","expMonth":"12","expYear":"28","cvc":"123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/session/missing/pay", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCanonicalField(t *testing.T) {
	assert.Equal(t, models.FieldMonth, canonicalField("expMonth"))
	assert.Equal(t, models.FieldYear, canonicalField("expYear"))
	assert.Equal(t, models.FieldNumber, canonicalField("number"))
	assert.Equal(t, models.FieldCVC, canonicalField("cvc"))
}
