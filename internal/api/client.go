package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every request. On expiry the caller sees the same
// network-failure classification as "no response"; retrying is a user action
// (pull-to-refresh), never automatic.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty token means the request goes out unauthenticated (the login call).
type TokenSource interface {
	GetToken(ctx context.Context) (string, error)
}

// Client issues authenticated REST calls against the MSWT backend.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL. tokens may be nil for a
// purely unauthenticated client.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	url := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.GetToken(ctx)
		if err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// No response at all: refused, unreachable, or timed out.
		return &Error{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Err: err}
	}

	if resp.StatusCode >= 400 {
		return &Error{
			Kind:          KindStatus,
			StatusCode:    resp.StatusCode,
			ServerMessage: extractMessage(raw),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	// Raw capture for callers that do their own shape dispatch. Bypasses
	// json.Unmarshal because at least one legacy endpoint answers with an
	// unquoted token that is not valid JSON.
	if rm, ok := out.(*json.RawMessage); ok {
		*rm = json.RawMessage(bytes.TrimSpace(raw))
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindDecode, Err: err}
	}
	return nil
}

// extractMessage pulls the `message` field out of an error body. The backend
// is inconsistent here too: some endpoints use `message`, some `error`, some
// return plain text.
func extractMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		ErrText string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.ErrText != "" {
			return body.ErrText
		}
		return ""
	}
	// Plain-text error bodies show up from proxies; keep them if short.
	text := strings.TrimSpace(string(raw))
	if len(text) > 0 && len(text) <= 200 && !strings.HasPrefix(text, "<") {
		return text
	}
	return ""
}
