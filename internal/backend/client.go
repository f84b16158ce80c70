// Package backend is the HTTP client for the upstream payment-link backend.
// All remote-call failures are reduced to two shapes before they leave this
// package: a wrapped errors.ErrNoConnection when no response was obtained,
// and a *errors.DomainError carrying the backend's {message, code} body on
// any non-2xx status.
package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"

	apperrors "paylink/internal/errors"
)

// Client talks to the upstream backend. The base URL is explicit
// configuration passed at construction; nothing here reads the environment.
type Client struct {
	baseURL string
	timeout time.Duration
	client  *fasthttp.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  &fasthttp.Client{},
	}
}

// apiError is the structured error body the backend returns on non-2xx.
type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// do performs one request. fallback is the message used when the error body
// carries none. The response body, when out is non-nil, is decoded into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any, fallback string) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	if body != nil {
		payload, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		req.Header.SetContentType("application/json")
		req.SetBody(payload)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrNoConnection, err)
	}

	status := resp.StatusCode()
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		var apiErr apiError
		if err := sonic.Unmarshal(resp.Body(), &apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = fallback
		}
		return &apperrors.DomainError{Code: apiErr.Code, Message: apiErr.Message}
	}

	if out != nil {
		if err := sonic.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
