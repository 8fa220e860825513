// Package festapi is the HTTP client for the registration server.
package festapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"altranzfest/internal/domain"
)

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient returns a RegistrationAPI that calls the server at baseURL.
// A nil client uses http.DefaultClient, which has no timeout.
func NewHTTPClient(baseURL string, client *http.Client) domain.RegistrationAPI {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpClient{baseURL: strings.TrimSuffix(baseURL, "/"), client: client}
}

func (c *httpClient) ListEvents(ctx context.Context, eventType domain.EventType) (domain.Catalog, error) {
	u := c.baseURL + "/api/events"
	if eventType != "" {
		u += "?" + url.Values{"type": {string(eventType)}}.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, serverError(resp)
	}

	var events domain.Catalog
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

type registerResponse struct {
	Message string `json:"message"`
	Data    []struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (c *httpClient) Submit(ctx context.Context, sub *domain.RegistrationSubmission) (*domain.RegistrationReceipt, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/register", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serverError(resp)
	}

	var data registerResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode registration response: %w", err)
	}
	receipt := &domain.RegistrationReceipt{Message: data.Message}
	if len(data.Data) > 0 {
		receipt.RegistrationID = data.Data[0].ID
	}
	return receipt, nil
}

// serverError reads the {error} envelope, falling back to the status text.
func serverError(resp *http.Response) *domain.ServerError {
	var body struct {
		Error string `json:"error"`
	}
	msg := http.StatusText(resp.StatusCode)
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		msg = body.Error
	}
	return &domain.ServerError{StatusCode: resp.StatusCode, Message: msg}
}
