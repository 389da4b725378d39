package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/eleven-am/marketplace-analytics/internal/analytics"
	"github.com/eleven-am/marketplace-analytics/internal/shared"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const maxBodyBytes = 8 << 20

// ErrPayloadTooLarge means the upstream body exceeded the client's size limit.
var ErrPayloadTooLarge = errors.New("upstream payload too large")

// ErrEmptyPayload means the upstream answered but had nothing usable: success=false,
// a missing or null data field, or an empty object.
var ErrEmptyPayload = errors.New("upstream returned no usable payload")

type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s returned status %d", e.Path, e.Code)
}

// Client talks to the authoritative analytics API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	service    oauth2.TokenSource
	maxBody    int64
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		maxBody:    maxBodyBytes,
	}

	if cfg.hasServiceCredentials() {
		cc := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, c.httpClient)
		c.service = cc.TokenSource(ctx)
	}
	return c
}

type callerTokenKey struct{}

// WithCallerToken attaches the end user's bearer token so upstream calls run as that user.
func WithCallerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, callerTokenKey{}, token)
}

func callerToken(ctx context.Context) string {
	tok, _ := ctx.Value(callerTokenKey{}).(string)
	return tok
}

func (c *Client) Dashboard(ctx context.Context, tf analytics.Timeframe) (*analytics.Dashboard, error) {
	body, err := c.get(ctx, "/analytics/dashboard", url.Values{"timeframe": {string(tf)}})
	if err != nil {
		return nil, err
	}

	var d analytics.Dashboard
	if err := decodeEnvelope(body, &d); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	return &d, nil
}

func (c *Client) ModelAnalytics(ctx context.Context, modelID string, tf analytics.Timeframe, iv analytics.Interval) (*analytics.ModelAnalytics, error) {
	q := url.Values{"timeframe": {string(tf)}}
	if iv != "" {
		q.Set("interval", string(iv))
	}

	body, err := c.get(ctx, "/analytics/models/"+url.PathEscape(modelID), q)
	if err != nil {
		return nil, err
	}

	var m analytics.ModelAnalytics
	if err := decodeEnvelope(body, &m); err != nil {
		return nil, fmt.Errorf("model analytics: %w", err)
	}
	return &m, nil
}

// Models lists the caller's models. The list may be the body itself, data, or data.models.
func (c *Client) Models(ctx context.Context) ([]analytics.ModelInfo, error) {
	body, err := c.get(ctx, "/models", nil)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("models: invalid json")
	}

	root := gjson.ParseBytes(body)
	if ok := root.Get("success"); ok.Exists() && !ok.Bool() {
		return nil, fmt.Errorf("models: %w", ErrEmptyPayload)
	}

	list, found := findList(root, "@this", "data", "data.models", "models")
	if !found {
		return nil, fmt.Errorf("models: %w", ErrEmptyPayload)
	}

	models := make([]analytics.ModelInfo, 0, len(list.Array()))
	if err := json.Unmarshal([]byte(list.Raw), &models); err != nil {
		return nil, fmt.Errorf("models: decode: %w", err)
	}
	return models, nil
}

// IsAvailable reports whether the upstream answers at all.
func (c *Client) IsAvailable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < http.StatusInternalServerError
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", shared.NewID("req_"))

	resp, err := c.clientFor(ctx).Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxBody))
		return nil, &StatusError{Path: path, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("%s: %w (limit %d bytes)", path, ErrPayloadTooLarge, c.maxBody)
	}
	return body, nil
}

// clientFor authenticates as the caller when a token is in ctx, otherwise with the
// service credentials, otherwise not at all.
func (c *Client) clientFor(ctx context.Context) *http.Client {
	var ts oauth2.TokenSource
	if tok := callerToken(ctx); tok != "" {
		ts = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tok, TokenType: "Bearer"})
	} else if c.service != nil {
		ts = c.service
	}
	if ts == nil {
		return c.httpClient
	}

	return &http.Client{
		Timeout:   c.httpClient.Timeout,
		Transport: &oauth2.Transport{Source: ts, Base: c.httpClient.Transport},
	}
}

func decodeEnvelope(body []byte, out any) error {
	if !gjson.ValidBytes(body) {
		return errors.New("invalid json")
	}

	root := gjson.ParseBytes(body)
	if ok := root.Get("success"); ok.Exists() && !ok.Bool() {
		return fmt.Errorf("%w: success=false", ErrEmptyPayload)
	}

	data := root.Get("data")
	switch {
	case !data.Exists(), data.Type == gjson.Null:
		return fmt.Errorf("%w: missing data", ErrEmptyPayload)
	case data.IsObject() && len(data.Map()) == 0:
		return fmt.Errorf("%w: empty data", ErrEmptyPayload)
	}

	if err := json.Unmarshal([]byte(data.Raw), out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

func findList(root gjson.Result, paths ...string) (gjson.Result, bool) {
	for _, p := range paths {
		if r := root.Get(p); r.IsArray() {
			return r, true
		}
	}
	return gjson.Result{}, false
}
