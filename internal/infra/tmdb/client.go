// Package tmdb relays requests to The Movie Database API.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"marquee/config"
	deliverycontext "marquee/internal/delivery/context"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/service"
	"marquee/internal/errors"
)

// maxBodyBytes caps how much of an upstream answer is buffered.
const maxBodyBytes = 8 << 20

type client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates the movie catalog backed by TMDB.
func NewClient(cfg *config.Config, logger *slog.Logger) service.MovieCatalog {
	return newClient(cfg.TMDB, &http.Client{Timeout: cfg.TMDB.Timeout}, logger)
}

func newClient(cfg *config.TMDBConfig, httpClient *http.Client, logger *slog.Logger) *client {
	return &client{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

func (c *client) Configured() bool {
	return c.apiKey != ""
}

// Fetch GETs baseURL/endpoint. Successful bodies are returned untouched; upstream
// HTTP errors carry the upstream status and its status_message when present.
func (c *client) Fetch(ctx context.Context, endpoint string, params url.Values) (*service.CatalogResponse, error) {
	query := url.Values{}
	for key, values := range params {
		query[key] = append([]string(nil), values...)
	}
	query.Set("api_key", c.apiKey)

	target := c.baseURL + "/" + strings.TrimLeft(endpoint, "/") + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, c.unexpected(ctx, endpoint, errors.Wrap(err, "build request"))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.unexpected(ctx, endpoint, errors.Wrap(err, "send request"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, c.unexpected(ctx, endpoint, errors.Wrap(err, "read response"))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, upstreamError(resp.StatusCode, body)
	}

	if !json.Valid(body) {
		return nil, c.unexpected(ctx, endpoint, errors.New("response is not JSON"))
	}

	return &service.CatalogResponse{StatusCode: resp.StatusCode, Body: body}, nil
}

func (c *client) unexpected(ctx context.Context, endpoint string, err error) error {
	deliverycontext.GetLoggerOrDefault(ctx, c.logger).ErrorContext(ctx, "TMDB fetch failed",
		slog.String("endpoint", endpoint),
		slog.Any("error", err),
	)

	return domainerrors.ErrUpstreamUnavailable.WithDetails(err.Error())
}

type errorBody struct {
	StatusMessage string `json:"status_message"`
}

func upstreamError(status int, body []byte) error {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.StatusMessage != "" {
		return domainerrors.NewUpstreamError(status, parsed.StatusMessage)
	}

	return domainerrors.NewUpstreamError(status, fmt.Sprintf("TMDB API Error: %d %s", status, http.StatusText(status)))
}
