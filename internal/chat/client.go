package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// upstreamTimeout is the wall-clock budget for one hosted upstream call,
// measured from adapter invocation. The Ollama adapter deliberately carries
// no such budget; see NewOllamaAdapter.
const upstreamTimeout = 60 * time.Second

const (
	maxResponseBody = 8 << 20
	maxErrorBody    = 64 * 1024
)

// NewHTTPClient builds the shared upstream HTTP client. Call deadlines are
// enforced per request through context, so the client itself carries no
// overall timeout.
func NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          50,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{Transport: transport}
}

func isSuccess(status int) bool {
	return status >= 200 && status <= 299
}

// upstreamBody is the outcome of one upstream round trip: either the raw
// success payload or a classified UpstreamError.
type upstreamBody struct {
	raw json.RawMessage
	err *UpstreamError
}

func postJSON(ctx context.Context, client *http.Client, provider, url string, payload any, headers map[string]string) (upstreamBody, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return upstreamBody{}, fmt.Errorf("marshal payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return upstreamBody{}, fmt.Errorf("construct request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return upstreamBody{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return upstreamBody{}, fmt.Errorf("read upstream response: %w", err)
	}

	if !isSuccess(resp.StatusCode) {
		body := raw
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return upstreamBody{err: &UpstreamError{
			Provider: provider,
			Status:   resp.StatusCode,
			Body:     strings.TrimSpace(string(body)),
		}}, nil
	}

	return upstreamBody{raw: raw}, nil
}

// classifyTransportError maps a cancelled deadline onto ErrUpstreamTimeout
// so callers can tell a slow provider apart from a broken one. Other
// transport failures pass through wrapped.
func classifyTransportError(provider string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", provider, ErrUpstreamTimeout)
	}
	return fmt.Errorf("%s request failed: %w", strings.ToLower(provider), err)
}
