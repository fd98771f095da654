// Package storeclient is the gateway's typed HTTP client for the internal
// store. Every inbound request maps to exactly one upstream attempt: a
// transport failure is reported as the store being unavailable, a structured
// upstream error is passed through verbatim, and anything else is surfaced
// as an opaque upstream error.
package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/javer-bank/javer/internal/apperr"
	"github.com/javer-bank/javer/internal/dto"
	"github.com/javer-bank/javer/pkg/clients"
	"github.com/javer-bank/javer/pkg/utils"
)

var ErrUnavailable = apperr.New(http.StatusServiceUnavailable, "INTERNAL_STORE_UNAVAILABLE", "internal store unavailable")

type Client struct {
	base   string
	client clients.HTTPClientI
}

func New(base string, client clients.HTTPClientI) *Client {
	return &Client{
		base:   base,
		client: client,
	}
}

// Forward issues one request against the store and returns the raw response
// for 2xx outcomes. Non-2xx outcomes come back as a typed error.
func (c *Client) Forward(ctx context.Context, method, path string, body []byte) (int, []byte, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("can't build store request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		zap.L().Error("store request failed", zap.String("path", path), zap.Error(err))
		return 0, nil, ErrUnavailable
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		zap.L().Error("can't read store response", zap.String("path", path), zap.Error(err))
		return 0, nil, ErrUnavailable
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return 0, nil, upstreamError(resp.StatusCode, respBody)
	}
	return resp.StatusCode, respBody, nil
}

// upstreamError keeps the store's structured detail intact; an unparsable
// body degrades to a generic upstream error with the upstream status.
func upstreamError(status int, body []byte) *apperr.Error {
	var payload utils.ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != nil && payload.Detail.Code != "" {
		return payload.Detail
	}
	return apperr.New(status, "UPSTREAM_ERROR", "internal store error")
}

func (c *Client) GetAccount(ctx context.Context, agency, accountNumber string) (*dto.AccountResponseDTO, error) {
	_, body, err := c.Forward(ctx, http.MethodGet, "/accounts/"+agency+"/"+accountNumber, nil)
	if err != nil {
		return nil, err
	}
	var account dto.AccountResponseDTO
	if err := json.Unmarshal(body, &account); err != nil {
		zap.L().Error("can't decode account from store", zap.Error(err))
		return nil, apperr.New(http.StatusBadGateway, "UPSTREAM_ERROR", "internal store error")
	}
	return &account, nil
}

func (c *Client) GetClient(ctx context.Context, id int) (*dto.ClientResponseDTO, error) {
	_, body, err := c.Forward(ctx, http.MethodGet, "/clients/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}
	var client dto.ClientResponseDTO
	if err := json.Unmarshal(body, &client); err != nil {
		zap.L().Error("can't decode client from store", zap.Error(err))
		return nil, apperr.New(http.StatusBadGateway, "UPSTREAM_ERROR", "internal store error")
	}
	return &client, nil
}

// Health probes the store's liveness route.
func (c *Client) Health(ctx context.Context) error {
	_, _, err := c.Forward(ctx, http.MethodGet, "/healthz", nil)
	return err
}
