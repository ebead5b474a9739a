package repositories

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/api"
)

// Common repository errors. Mapped from the transport layer so services can
// use errors.Is without knowing HTTP status codes.
var (
	ErrNotFound     = errors.New("requested resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network failure")
)

// classify wraps an *api.Error with the matching sentinel. Both the sentinel
// and the original *api.Error stay reachable through errors.Is/errors.As, so
// callers keep access to the localized message.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.Kind {
	case api.KindNetwork:
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	case api.KindStatus:
		switch apiErr.StatusCode {
		case http.StatusBadRequest:
			return fmt.Errorf("%w: %w", ErrBadRequest, err)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %w", ErrUnauthorized, err)
		case http.StatusForbidden:
			return fmt.Errorf("%w: %w", ErrForbidden, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		default:
			return fmt.Errorf("%w: %w", ErrServer, err)
		}
	default:
		return err
	}
}
