package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"gmao/internal/api/handler/v1handler"
	"gmao/internal/api/specs/v1specs"
	"os"
	"testing"

	"gmao/pkg/logger"
	"gmao/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Setup(logger.DevelopmentEnvironment, "error"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("pq: connection refused"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	// Pass the Kind sentinel directly
	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrBadRequest, "reference must not be blank")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "reference must not be blank", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized")
	res := h.NewError(ctx, err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.KindOnly(serrors.ErrInternal))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_WrappedKinds(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	tests := []struct {
		kind   serrors.Kind
		status int
	}{
		{serrors.ErrForbidden, 403},
		{serrors.ErrConflict, 409},
		{serrors.ErrConstraintViolation, 422},
	}
	for _, tt := range tests {
		t.Run(tt.kind.Error(), func(t *testing.T) {
			err := fmt.Errorf("could not do it: %w", serrors.Wrap(tt.kind, errors.New("cause"), "visible"))
			res := h.NewError(ctx, err)
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.kind.Error(), res.Response.Code)
			require.Equal(t, "visible", res.Response.Message)
		})
	}
}

func TestNewError_TransportErrors(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, &v1specs.DecodeRequestError{
		OperationContext: v1specs.OperationContext{Name: v1specs.CreateSensorOperation},
		Err:              errors.New(`field "type" is required`),
	})
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, `invalid request body: field "type" is required`, res.Response.Message)

	res = h.NewError(ctx, &v1specs.DecodeParamError{Name: "sensorID", In: "path", Err: errors.New("invalid UUID length: 3")})
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, `invalid path parameter "sensorID": invalid UUID length: 3`, res.Response.Message)

	res = h.NewError(ctx, &v1specs.SecurityError{Security: "BearerAuth", Err: v1specs.ErrSecurityRequirementIsNotSatisfied})
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
}
