package errutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[CoreStatus]int{
		StatusBadRequest:       http.StatusBadRequest,
		StatusUnauthorized:     http.StatusUnauthorized,
		StatusForbidden:        http.StatusForbidden,
		StatusNotFound:         http.StatusNotFound,
		StatusConflict:         http.StatusConflict,
		StatusValidationFailed: http.StatusUnprocessableEntity,
		StatusNotImplemented:   http.StatusNotImplemented,
		StatusInternal:         http.StatusInternalServerError,
		StatusUnknown:          http.StatusInternalServerError,
	}
	for code, want := range cases {
		require.Equal(t, want, code.HTTPStatus(), string(code))
	}
}

func TestStatusOf(t *testing.T) {
	require.Equal(t, StatusNotFound, StatusOf(NotFound("missing")))
	require.Equal(t, StatusForbidden, StatusOf(Forbidden("denied")))
	require.Equal(t, StatusUnknown, StatusOf(errors.New("plain")))

	wrapped := fmt.Errorf("context: %w", Conflict("already exists"))
	require.Equal(t, StatusConflict, StatusOf(wrapped))
}

func TestBaseErrorCarriesDetailsAndCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal("write failed",
		WithErr(cause),
		WithDetails(Detail{Field: "path", Message: "unwritable"}),
	)

	var be BaseError
	require.ErrorAs(t, err, &be)
	require.Equal(t, StatusInternal, be.Code)
	require.Len(t, be.Details, 1)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "disk full")
}
