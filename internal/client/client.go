// Package client talks to a projstats server and keeps the result of the
// last successful scan for display and export.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/guidefari/projstats/internal/core"
)

const (
	DefaultEndpoint = "http://localhost:5000"
	DefaultTimeout  = 5 * time.Minute

	// FallbackMessage is shown when the server gives no error text.
	FallbackMessage = "Failed to scan project"
)

// ScanRequest is the body of POST /api/scan.
type ScanRequest struct {
	Path string `json:"path"`
	Top  int    `json:"top"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

type Client struct {
	Endpoint   string
	HTTPClient *http.Client
	Timeout    time.Duration
}

func New(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		Endpoint:   strings.TrimRight(endpoint, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Timeout:    timeout,
	}
}

// Scan asks the server to scan path. Failures are *core.Error values of
// kind network, timeout or server.
func (c *Client) Scan(ctx context.Context, path string, top int) (*core.ScanReport, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(ScanRequest{Path: path, Top: top})
	if err != nil {
		return nil, fmt.Errorf("encode scan request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint+"/api/scan", bytes.NewReader(body))
	if err != nil {
		return nil, core.NewError(core.KindNetwork, err.Error(), err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, transportError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e ErrorResponse
		msg := FallbackMessage
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Error != "" {
			msg = e.Error
		}
		return nil, &core.Error{Kind: core.KindServer, Path: path, Message: msg}
	}

	var report core.ScanReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		if isTimeout(ctx, err) {
			return nil, core.NewError(core.KindTimeout, "scan timed out", err)
		}
		return nil, core.NewError(core.KindServer, FallbackMessage, err)
	}
	return &report, nil
}

func transportError(ctx context.Context, err error) error {
	if isTimeout(ctx, err) {
		return core.NewError(core.KindTimeout, "scan timed out", err)
	}
	return core.NewError(core.KindNetwork, err.Error(), err)
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

// ErrorMessage is the single text shown to the user for any scan failure.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *core.Error
	if errors.As(err, &e) && e.Kind == core.KindServer && e.Message == "" {
		return FallbackMessage
	}
	return err.Error()
}
