package guard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// RemoteValidator delegates validation to an external detection service
// over HTTP JSON.
//
// The validator is conditional — only wired up when the matching endpoint
// env var is set. The caller's fail-open handling covers transport errors.
type RemoteValidator struct {
	name     string
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// NewRemoteValidator creates an HTTP-backed validator. endpoint must be an
// absolute URL accepting POST {"text": ...} and returning
// {"failed": bool, "redacted": string}.
func NewRemoteValidator(name, endpoint string, timeout time.Duration, logger *zap.Logger) (*RemoteValidator, error) {
	u, err := url.Parse(endpoint)
	if err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("NewRemoteValidator: invalid endpoint %q", endpoint)
	}

	logger.Info("remote validator configured",
		zap.String("validator", name),
		zap.String("endpoint", endpoint),
	)

	return &RemoteValidator{
		name:     name,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}, nil
}

type remoteRequest struct {
	Text string `json:"text"`
}

type remoteResponse struct {
	Failed   bool   `json:"failed"`
	Redacted string `json:"redacted"`
}

func (v *RemoteValidator) Name() string {
	return v.name
}

func (v *RemoteValidator) Validate(ctx context.Context, text string) (*Outcome, error) {
	body, err := json.Marshal(remoteRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("remote %s: %w", v.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("remote %s: %w", v.name, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote %s: %w", v.name, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote %s: unexpected status %d", v.name, resp.StatusCode)
	}

	var rr remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return nil, fmt.Errorf("remote %s: %w", v.name, err)
	}

	redacted := rr.Redacted
	if redacted == "" {
		redacted = text
	}
	return &Outcome{Failed: rr.Failed, Redacted: redacted}, nil
}
