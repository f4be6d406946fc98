package errutil

import "net/http"

// CoreStatus is the short error code carried on every typed error the
// backend returns. Codes map one-to-one onto HTTP status codes.
type CoreStatus string

const (
	StatusBadRequest       CoreStatus = "BAD_REQUEST"
	StatusUnauthorized     CoreStatus = "UNAUTHORIZED"
	StatusForbidden        CoreStatus = "FORBIDDEN"
	StatusNotFound         CoreStatus = "NOT_FOUND"
	StatusConflict         CoreStatus = "CONFLICT"
	StatusValidationFailed CoreStatus = "VALIDATION_FAILED"
	StatusInternal         CoreStatus = "INTERNAL"
	StatusNotImplemented   CoreStatus = "NOT_IMPLEMENTED"
	StatusUnknown          CoreStatus = "UNKNOWN"
)

// HTTPStatus converts the CoreStatus to its closest HTTP status code
// equivalent.
func (s CoreStatus) HTTPStatus() int {
	switch s {
	case StatusBadRequest:
		return http.StatusBadRequest
	case StatusUnauthorized:
		return http.StatusUnauthorized
	case StatusForbidden:
		return http.StatusForbidden
	case StatusNotFound:
		return http.StatusNotFound
	case StatusConflict:
		return http.StatusConflict
	case StatusValidationFailed:
		return http.StatusUnprocessableEntity
	case StatusNotImplemented:
		return http.StatusNotImplemented
	case StatusInternal, StatusUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
