package serrors_test

import (
	"errors"
	"fmt"
	"gmao/pkg/serrors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrConstraintViolation,
		serrors.ErrMethodNotAllowed,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "sensor %s not found", "S-1")
	require.Equal(t, "sensor S-1 not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "getting sensor")
	require.Equal(t, "getting sensor: db down", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrConflict, base, "storing")

	require.ErrorIs(t, e, serrors.ErrConflict)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrNotFound)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind serrors.Kind
		wantMsg  string
	}{
		{
			name:     "plain error is internal",
			err:      errors.New("connection refused"),
			wantKind: serrors.ErrInternal,
			wantMsg:  "internal error",
		},
		{
			name:     "semantic error keeps its message",
			err:      serrors.With(serrors.ErrNotFound, "sensor not found"),
			wantKind: serrors.ErrNotFound,
			wantMsg:  "sensor not found",
		},
		{
			name:     "wrapped semantic error is found through fmt wrapping",
			err:      fmt.Errorf("could not process return: %w", serrors.With(serrors.ErrConflict, "duplicate")),
			wantKind: serrors.ErrConflict,
			wantMsg:  "duplicate",
		},
		{
			name:     "bare kind gets the default message",
			err:      serrors.ErrForbidden,
			wantKind: serrors.ErrForbidden,
			wantMsg:  "forbidden",
		},
		{
			name:     "internal kind never leaks its message",
			err:      serrors.With(serrors.ErrInternal, "password=secret"),
			wantKind: serrors.ErrInternal,
			wantMsg:  "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, msg := serrors.KindOf(tt.err)
			require.Equal(t, tt.wantKind, k)
			require.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestStatusCode(t *testing.T) {
	require.Equal(t, http.StatusNotFound, serrors.StatusCode(serrors.ErrNotFound))
	require.Equal(t, http.StatusConflict, serrors.StatusCode(serrors.ErrConflict))
	require.Equal(t, http.StatusForbidden, serrors.StatusCode(serrors.ErrForbidden))
	require.Equal(t, http.StatusUnprocessableEntity, serrors.StatusCode(serrors.ErrConstraintViolation))
	require.Equal(t, http.StatusBadRequest, serrors.StatusCode(serrors.ErrBadRequest))
	require.Equal(t, http.StatusMethodNotAllowed, serrors.StatusCode(serrors.ErrMethodNotAllowed))
	require.Equal(t, http.StatusInternalServerError, serrors.StatusCode(nil))
}
