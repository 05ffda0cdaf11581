// Package client implements the shop API client. Authenticated requests carry
// the current bearer access token and survive its expiry through at most one
// transparent refresh-and-retry cycle.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arnuv/shopfront/pkg/domain"
)

// TokenSource provides the persisted token pair the client attaches and
// rotates. Satisfied by internal/session.
type TokenSource interface {
	Access() string
	Refresh() string
	SetAccess(tok string) error
	Clear()
}

// Client is the shop API client.
type Client struct {
	baseURL    string
	tokens     TokenSource
	log        *zap.Logger
	httpClient *http.Client
}

// New creates a new API client. A zero timeout defaults to 30 seconds.
func New(baseURL string, tokens TokenSource, log *zap.Logger, timeout time.Duration) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		log:     log,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Categories returns the product categories. Unauthenticated.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var cats []domain.Category
	if err := c.get(ctx, "/categories/", &cats); err != nil {
		return nil, fmt.Errorf("client.Categories: %w", err)
	}
	return cats, nil
}

// ProductQuery is the filter set for a catalog listing. Zero values mean
// "no filter"; Ordering defaults to "name".
type ProductQuery struct {
	Page     int
	Search   string
	Category string
	MinPrice string
	MaxPrice string
	Ordering string
}

// ProductPage is one page of catalog results. Next and Previous are the
// cursors reported by the API; both are empty when the endpoint returned a
// bare (unpaginated) array.
type ProductPage struct {
	Next     string
	Previous string
	Results  []domain.Product
}

// Products fetches a paginated, filterable, sortable product listing.
// Unauthenticated.
func (c *Client) Products(ctx context.Context, q ProductQuery) (*ProductPage, error) {
	params := url.Values{}
	page := q.Page
	if page < 1 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))
	ordering := q.Ordering
	if ordering == "" {
		ordering = "name"
	}
	params.Set("ordering", ordering)
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.MinPrice != "" {
		params.Set("min_price", q.MinPrice)
	}
	if q.MaxPrice != "" {
		params.Set("max_price", q.MaxPrice)
	}

	var raw json.RawMessage
	if err := c.get(ctx, "/products/?"+params.Encode(), &raw); err != nil {
		return nil, fmt.Errorf("client.Products: %w", err)
	}
	result, err := decodeProductPage(raw)
	if err != nil {
		return nil, fmt.Errorf("client.Products: %w", err)
	}
	return result, nil
}

// decodeProductPage accepts both listing shapes: the paginated envelope
// {next, previous, results} and a bare product array.
func decodeProductPage(raw []byte) (*ProductPage, error) {
	var envelope struct {
		Next     *string          `json:"next"`
		Previous *string          `json:"previous"`
		Results  []domain.Product `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Results != nil {
		p := &ProductPage{Results: envelope.Results}
		if envelope.Next != nil {
			p.Next = *envelope.Next
		}
		if envelope.Previous != nil {
			p.Previous = *envelope.Previous
		}
		return p, nil
	}
	var bare []domain.Product
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, fmt.Errorf("decode product listing: %w", err)
	}
	return &ProductPage{Results: bare}, nil
}

// Me returns the authenticated shopper's identity.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := c.doAuthed(ctx, http.MethodGet, "/users/me/", nil, &u); err != nil {
		return nil, fmt.Errorf("client.Me: %w", err)
	}
	return &u, nil
}

// PlaceOrder submits the given order items. The caller keeps its cart until
// this returns nil — a failed submission must stay retryable.
func (c *Client) PlaceOrder(ctx context.Context, items []domain.OrderItem) error {
	if err := c.doAuthed(ctx, http.MethodPost, "/orders/", domain.OrderRequest{OrderItems: items}, nil); err != nil {
		return fmt.Errorf("client.PlaceOrder: %w", err)
	}
	return nil
}

// Login exchanges credentials for a token pair. The pair is returned, not
// stored — token issuance stays with the API, persistence with the caller.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	var pair domain.TokenPair
	body := map[string]string{"username": username, "password": password}
	if err := c.doRequest(ctx, http.MethodPost, "/token/", body, &pair, false); err != nil {
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	return &pair, nil
}

// refreshAccess trades the refresh token for a new access token and persists
// it. An absent refresh token fails without a network call.
func (c *Client) refreshAccess(ctx context.Context) error {
	refresh := c.tokens.Refresh()
	if refresh == "" {
		return fmt.Errorf("no refresh token")
	}
	var out struct {
		Access string `json:"access"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "/token/refresh/", map[string]string{"refresh": refresh}, &out, false); err != nil {
		return fmt.Errorf("refresh token: %w", err)
	}
	if out.Access == "" {
		return fmt.Errorf("refresh token: empty access token in response")
	}
	if err := c.tokens.SetAccess(out.Access); err != nil {
		return fmt.Errorf("persist refreshed token: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out, false)
}

func (c *Client) doAuthed(ctx context.Context, method, path string, body, out any) error {
	return c.doRequest(ctx, method, path, body, out, true)
}

// maxAuthAttempts bounds the 401 recovery loop: the original request plus one
// post-refresh retry. A second 401 is returned to the caller as-is.
const maxAuthAttempts = 2

func (c *Client) doRequest(ctx context.Context, method, path string, body, out any, authed bool) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		payload = data
	}

	for attempt := 1; ; attempt++ {
		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		reqID := uuid.NewString()
		req.Header.Set("X-Request-ID", reqID)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if authed {
			if tok := c.tokens.Access(); tok != "" {
				req.Header.Set("Authorization", "Bearer "+tok)
			}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.log.Warn("request failed",
				zap.String("method", method), zap.String("path", path),
				zap.String("request_id", reqID), zap.Error(err))
			return fmt.Errorf("do request: %w", err)
		}

		if authed && resp.StatusCode == http.StatusUnauthorized && attempt < maxAuthAttempts {
			resp.Body.Close() //nolint:errcheck
			if err := c.refreshAccess(ctx); err != nil {
				c.tokens.Clear()
				c.log.Warn("session expired, tokens cleared",
					zap.String("request_id", reqID), zap.Error(err))
				return ErrSessionExpired
			}
			c.log.Info("access token refreshed",
				zap.String("method", method), zap.String("path", path),
				zap.String("request_id", reqID))
			continue
		}

		return c.finishResponse(resp, method, path, reqID, out)
	}
}

func (c *Client) finishResponse(resp *http.Response, method, path, reqID string, out any) error {
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		msg := string(respBody)
		var apiErr struct {
			Detail string `json:"detail"`
			Error  string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil {
			if apiErr.Detail != "" {
				msg = apiErr.Detail
			} else if apiErr.Error != "" {
				msg = apiErr.Error
			}
		}
		c.log.Warn("api error",
			zap.String("method", method), zap.String("path", path),
			zap.String("request_id", reqID), zap.Int("status", resp.StatusCode),
			zap.String("body", msg))
		return &HTTPError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
