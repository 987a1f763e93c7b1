package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go-studio-backend/internal/domain"
)

// HTTPSender posts inquiries to the intake endpoint as JSON.
type HTTPSender struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSender talks to the API at baseURL (e.g. "https://api.prostolab.ru").
// Timeouts are left to the transport; callers may bound a submission with
// the context they pass to Submit.
func NewHTTPSender(baseURL string, client *http.Client) *HTTPSender {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSender{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (s *HTTPSender) SendInquiry(ctx context.Context, req *domain.InquiryRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode inquiry: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("inquiry rejected: status %d", resp.StatusCode)
	}
	return nil
}
