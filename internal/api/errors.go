package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a request failure per the client's error taxonomy.
type Kind int

const (
	// KindNetwork means no response was received (connection refused, DNS
	// failure, timeout). Always user-retryable, never auto-retried.
	KindNetwork Kind = iota
	// KindStatus means the server answered with a 4xx/5xx status.
	KindStatus
	// KindDecode means the response body could not be decoded.
	KindDecode
)

// Error is the structured failure surfaced by the HTTP client. It keeps the
// raw cause for logging and carries a localized user-facing message.
type Error struct {
	Kind          Kind
	StatusCode    int
	ServerMessage string
	Err           error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("api: network failure: %v", e.Err)
	case KindStatus:
		if e.ServerMessage != "" {
			return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.ServerMessage)
		}
		return fmt.Sprintf("api: status %d", e.StatusCode)
	default:
		return fmt.Sprintf("api: decode failure: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// User-facing Vietnamese messages, keyed by failure class. The table mirrors
// what the mobile app shows for each login failure mode.
const (
	msgCannotConnect    = "Không thể kết nối đến máy chủ. Vui lòng kiểm tra kết nối mạng."
	msgInvalidData      = "Dữ liệu đăng nhập không hợp lệ."
	msgWrongCredentials = "Sai tên đăng nhập hoặc mật khẩu."
	msgAccountLocked    = "Tài khoản đã bị khóa hoặc không có quyền truy cập."
	msgServerError      = "Lỗi máy chủ. Vui lòng thử lại sau."
	msgGenericFailure   = "Đã xảy ra lỗi. Vui lòng thử lại."
)

// LocalizedMessage maps the error to the user-facing string. A message sent
// by the server wins over the static table so backend-authored texts like
// "Sai tài khoản" reach the user unchanged.
func (e *Error) LocalizedMessage() string {
	if e.Kind == KindNetwork {
		return msgCannotConnect
	}
	if e.ServerMessage != "" {
		return e.ServerMessage
	}
	switch e.StatusCode {
	case http.StatusBadRequest:
		return msgInvalidData
	case http.StatusUnauthorized:
		return msgWrongCredentials
	case http.StatusForbidden:
		return msgAccountLocked
	case http.StatusInternalServerError:
		return msgServerError
	default:
		return msgGenericFailure
	}
}

// GenericFailureMessage is the fallback shown when a failure cannot be
// attributed to a request at all (storage faults, unexpected panics caught at
// the boundary).
const GenericFailureMessage = msgGenericFailure

// AsError extracts an *Error from err, or wraps err as a generic decode-class
// failure so callers always have a localizable error to show.
func AsError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &Error{Kind: KindDecode, Err: err}
}

// IsStatus reports whether err is an *Error carrying the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindStatus && apiErr.StatusCode == status
}
