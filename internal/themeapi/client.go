// SPDX-License-Identifier: MIT
package themeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pastelpanda/chameleon/internal/models"
	"github.com/pastelpanda/chameleon/internal/themes"
)

// Client talks to a remote chameleon configuration service. Used when the
// engine runs separately from the service that owns the theme records.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL (scheme and host, no
// trailing slash needed).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Current fetches the active theme record. Satisfies store.Fetcher.
func (c *Client) Current(ctx context.Context) (*models.ThemeRecord, error) {
	var record models.ThemeRecord
	if err := c.do(ctx, http.MethodGet, "/api/customization/current", nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListPresets fetches the named theme presets
func (c *Client) ListPresets(ctx context.Context) ([]themes.Preset, error) {
	var presets []themes.Preset
	if err := c.do(ctx, http.MethodGet, "/api/admin/customization/presets", nil, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}

// ApplyPreset applies a named preset and returns the resulting record
func (c *Client) ApplyPreset(ctx context.Context, name string) (*models.ThemeRecord, error) {
	body := map[string]string{"name": name}
	var record models.ThemeRecord
	if err := c.do(ctx, http.MethodPost, "/api/admin/customization/apply-preset", body, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Update sends a partial theme update and returns the saved record
func (c *Client) Update(ctx context.Context, update *models.UpdateRequest) (*models.ThemeRecord, error) {
	var record models.ThemeRecord
	if err := c.do(ctx, http.MethodPut, "/api/admin/customization", update, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Reset restores the factory theme and returns it
func (c *Client) Reset(ctx context.Context) (*models.ThemeRecord, error) {
	var record models.ThemeRecord
	if err := c.do(ctx, http.MethodPost, "/api/admin/customization/reset", nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: %s", method, path, apiError(resp))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError extracts the service's error message, falling back to the
// HTTP status
func apiError(resp *http.Response) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return resp.Status
}
