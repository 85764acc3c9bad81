package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pet-walker/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into a wrapped models sentinel
// so callers can classify it with models.KindOf.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", models.ErrBadRequest, body)
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", models.ErrUnauthorized, body)
	case code == http.StatusForbidden:
		return fmt.Errorf("%w: %s", models.ErrForbidden, body)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", models.ErrNotFound, body)
	case code == http.StatusConflict:
		return fmt.Errorf("%w: %s", models.ErrConflict, body)
	case code == http.StatusTooManyRequests, code == http.StatusBadGateway,
		code == http.StatusServiceUnavailable, code == http.StatusGatewayTimeout:
		return fmt.Errorf("%w: http %d: %s", models.ErrNetwork, code, body)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", models.ErrServerError, body)
	default:
		return fmt.Errorf("http %d: %s", code, body)
	}
}

// mapTransportError classifies errors returned by resty before any response
// arrived. Cancellation is passed through untouched.
func mapTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", models.ErrNetwork, err)
}
