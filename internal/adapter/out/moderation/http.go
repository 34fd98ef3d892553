// Package moderation holds the classifiers that back the comment moderation gate.
package moderation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"postboard/internal/service"
)

const maxResponseBytes = 64 << 10

// HTTPClassifier asks a remote evaluation endpoint whether text is offensive.
// The endpoint answers either {"offensive": bool} or a bare "true"/"false".
type HTTPClassifier struct {
	endpoint string
	token    string
	client   *http.Client
}

func NewHTTPClassifier(endpoint, token string, client *http.Client) *HTTPClassifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPClassifier{
		endpoint: endpoint,
		token:    token,
		client:   client,
	}
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Offensive *bool `json:"offensive"`
}

func (c *HTTPClassifier) Classify(ctx context.Context, text string) (service.Verdict, error) {
	body, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return service.VerdictUnknown, fmt.Errorf("marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return service.VerdictUnknown, fmt.Errorf("build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return service.VerdictUnknown, fmt.Errorf("call classifier: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return service.VerdictUnknown, fmt.Errorf("read classifier response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return service.VerdictUnknown, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}
	return parseVerdict(raw)
}

func parseVerdict(raw []byte) (service.Verdict, error) {
	switch strings.ToLower(strings.Trim(strings.TrimSpace(string(raw)), `"`)) {
	case "true":
		return service.VerdictOffensive, nil
	case "false":
		return service.VerdictAcceptable, nil
	}

	var out classifyResponse
	if err := json.Unmarshal(raw, &out); err != nil || out.Offensive == nil {
		return service.VerdictUnknown, fmt.Errorf("unrecognized classifier response %q", truncate(raw, 64))
	}
	if *out.Offensive {
		return service.VerdictOffensive, nil
	}
	return service.VerdictAcceptable, nil
}

func truncate(raw []byte, n int) string {
	if len(raw) <= n {
		return string(raw)
	}
	return string(raw[:n]) + "..."
}
