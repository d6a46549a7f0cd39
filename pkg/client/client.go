// Package client fetches company data from the directory API. Each call
// issues exactly one request; there is no retry and nothing is cached.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"companydir/pkg/companies"
)

var ErrNotFound = errors.New("not found")

// APIError is returned for any non-2xx answer other than 404.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) ListCompanies(ctx context.Context) ([]companies.Company, error) {
	var out []companies.Company
	if err := c.get(ctx, "/companies", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCompany(ctx context.Context, id int64) (companies.Company, error) {
	var out companies.Company
	if err := c.get(ctx, "/company/"+strconv.FormatInt(id, 10), &out); err != nil {
		return companies.Company{}, err
	}
	return out, nil
}

func (c *Client) ValuationRanking(ctx context.Context) ([]companies.Valuation, error) {
	var out []companies.Valuation
	if err := c.get(ctx, "/insights/valuation", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RankOrdering(ctx context.Context) ([]companies.RankedCompany, error) {
	var out []companies.RankedCompany
	if err := c.get(ctx, "/insights/rank", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) InvestorOrdering(ctx context.Context) ([]companies.InvestorCount, error) {
	var out []companies.InvestorCount
	if err := c.get(ctx, "/insights/investors", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if decodeErr != nil {
		return fmt.Errorf("decode %s: %w", path, decodeErr)
	}
	if !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("decode %s: empty data", path)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// DisplayError turns any fetch failure into the static text shown to users.
func DisplayError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNotFound) {
		return "Company not found"
	}
	return "Failed to load company data"
}
