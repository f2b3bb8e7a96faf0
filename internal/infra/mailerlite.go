package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// MailerLite is an HTTP client for the MailerLite v2 subscribers API. It is
// strictly best-effort: the quote-request flow calls Subscribe after the lead
// is durably saved and discards the result, so a MailerLite outage can never
// affect lead creation.
type MailerLite struct {
	baseURL    string
	apiKey     string
	groupID    string
	httpClient *http.Client
}

// subscribePayload mirrors POST /subscribers of the v2 API.
type subscribePayload struct {
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Groups []string `json:"groups"`
}

func NewMailerLite(baseURL, apiKey, groupID string) *MailerLite {
	return &MailerLite{
		baseURL: baseURL,
		apiKey:  apiKey,
		groupID: groupID,
		// Bounded timeout so a slow endpoint cannot stall the caller even
		// when invoked synchronously (tests do).
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Subscribe adds email to the configured group. Without an API key it
// short-circuits to (false, nil) and performs no network call.
func (m *MailerLite) Subscribe(ctx context.Context, email, nombre string) (bool, error) {
	if m.apiKey == "" {
		return false, nil
	}

	payload := subscribePayload{Email: email, Name: nombre}
	if m.groupID != "" {
		payload.Groups = []string{m.groupID}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("mailerlite: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/subscribers", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("mailerlite: create request: %w", err)
	}
	req.Header.Set("X-MailerLite-ApiKey", m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("mailerlite: subscribe: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
