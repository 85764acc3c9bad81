package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pet-walker/internal/config"
	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/internal/utils"
	"github.com/MKhiriev/go-pet-walker/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. Outgoing requests share a token-bucket limiter of
// cfg.RateLimit requests per second with a burst of cfg.RateBurst; a
// non-positive rate disables limiting.
//
// Returns ErrInvalidAddress (wrapped) if cfg.HTTPAddress is empty or cannot
// be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = rate.Inf
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	if log == nil {
		log = logger.Nop()
	}

	return &httpServerAdapter{
		client:  client,
		limiter: rate.NewLimiter(limit, burst),
		logger:  log.Named("adapter"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [TokenHolder]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [TokenHolder].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request waits for a limiter slot and returns a request bound to ctx with
// the bearer token attached, if one is set.
func (h *httpServerAdapter) request(ctx context.Context) (*resty.Request, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req, nil
}

// call performs a JSON request and decodes a 2xx answer into T.
func call[T any](ctx context.Context, h *httpServerAdapter, method, path string, body any, query url.Values) (T, *resty.Response, error) {
	var out T

	req, err := h.request(ctx)
	if err != nil {
		return out, nil, err
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.SetResult(&out).Execute(method, path)
	if err != nil {
		h.logger.Debug().
			Str("func", "httpServerAdapter.call").
			Str("method", method).
			Str("path", path).
			Err(err).
			Msg("request failed")
		return out, nil, fmt.Errorf("%s %s: %w", method, path, mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("func", "httpServerAdapter.call").
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("request rejected")
		return out, resp, err
	}

	return out, resp, nil
}

func get[T any](ctx context.Context, h *httpServerAdapter, path string) (T, error) {
	out, _, err := call[T](ctx, h, http.MethodGet, path, nil, nil)
	return out, err
}

func post[T any](ctx context.Context, h *httpServerAdapter, path string, body any) (T, error) {
	out, _, err := call[T](ctx, h, http.MethodPost, path, body, nil)
	return out, err
}

func put[T any](ctx context.Context, h *httpServerAdapter, path string, body any) (T, error) {
	out, _, err := call[T](ctx, h, http.MethodPut, path, body, nil)
	return out, err
}

// getPaged fetches one page of a paged collection.
func getPaged[T any](ctx context.Context, h *httpServerAdapter, path string, page models.PageRequest, extra url.Values) (models.Paged[T], error) {
	query := url.Values{}
	for k, v := range extra {
		query[k] = v
	}
	query.Set("page", strconv.Itoa(page.Page))
	query.Set("pageSize", strconv.Itoa(page.PageSize))

	out, _, err := call[models.Paged[T]](ctx, h, http.MethodGet, path, nil, query)
	return out, err
}

func idPath(format string, ids ...int64) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return fmt.Sprintf(format, args...)
}
