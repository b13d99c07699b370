// Package api is a thin JSON client for the finanzas REST API.
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

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Transactions(ctx context.Context) ([]Transaction, error) {
	var txs []Transaction
	if err := c.get(ctx, "/transactions", &txs); err != nil {
		return nil, err
	}

	return txs, nil
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var cats []Category
	if err := c.get(ctx, "/categories", &cats); err != nil {
		return nil, err
	}

	return cats, nil
}

func (c *Client) Summary(ctx context.Context) (*Summary, error) {
	var s Summary
	if err := c.get(ctx, "/dashboard/summary", &s); err != nil {
		return nil, err
	}

	return &s, nil
}

func (c *Client) ExpensesByCategory(ctx context.Context) ([]CategoryTotal, error) {
	var totals []CategoryTotal
	if err := c.get(ctx, "/dashboard/expenses-by-category", &totals); err != nil {
		return nil, err
	}

	return totals, nil
}

func (c *Client) IncomesByCategory(ctx context.Context) ([]CategoryTotal, error) {
	var totals []CategoryTotal
	if err := c.get(ctx, "/dashboard/incomes-by-category", &totals); err != nil {
		return nil, err
	}

	return totals, nil
}

func (c *Client) Trend(ctx context.Context) ([]TrendPoint, error) {
	var points []TrendPoint
	if err := c.get(ctx, "/dashboard/trend", &points); err != nil {
		return nil, err
	}

	return points, nil
}

func (c *Client) CreateTransaction(ctx context.Context, params TransactionParams) error {
	return c.send(ctx, http.MethodPost, "/transactions", params)
}

func (c *Client) UpdateTransaction(ctx context.Context, id int64, params TransactionParams) error {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/transactions/%d", id), params)
}

func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/transactions/%d", id), nil)
}

func (c *Client) CreateCategory(ctx context.Context, params CategoryParams) error {
	return c.send(ctx, http.MethodPost, "/categories", params)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(path, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}

	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body any) error {
	var reader io.Reader

	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}

		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return apiError(path, resp)
	}

	return nil
}

func apiError(path string, resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	return fmt.Errorf("api %s: %s: %s", path, resp.Status, strings.TrimSpace(string(msg)))
}
