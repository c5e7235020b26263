package v1handler

import (
	"context"
	"errors"
	"gmao/internal/accounts"
	"gmao/internal/api/specs/v1specs"
	"gmao/internal/dashboard"
	"gmao/internal/maintenance"
	"gmao/pkg/logger"
	"gmao/pkg/serrors"

	"go.uber.org/zap"
)

// Deps are the services the v1 handlers delegate to.
type Deps struct {
	Maintenance maintenance.Maintenance
	Dashboard   dashboard.Dashboard
	Accounts    accounts.Accounts
}

type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// NewError maps err to the error envelope. Transport and routing failures
// get their own kinds, errors without a semantic kind become an INTERNAL
// error whose cause is only logged.
func (h Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	var (
		decodeErr *v1specs.DecodeRequestError
		paramErr  *v1specs.DecodeParamError
		secErr    *v1specs.SecurityError
		methodErr *v1specs.MethodNotAllowedError
	)
	switch {
	case errors.As(err, &decodeErr):
		err = serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body: %s", decodeErr.Err)
	case errors.As(err, &paramErr):
		err = serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s parameter %q: %s", paramErr.In, paramErr.Name, paramErr.Err)
	case errors.As(err, &secErr):
		err = serrors.Wrap(serrors.ErrUnauthorized, err, "unauthorized")
	case errors.Is(err, v1specs.ErrRouteNotFound):
		err = serrors.Wrap(serrors.ErrNotFound, err, "route not found")
	case errors.As(err, &methodErr):
		err = serrors.Wrap(serrors.ErrMethodNotAllowed, err, "method %s not allowed", methodErr.Method)
	}

	kind, msg := serrors.KindOf(err)
	if kind == serrors.ErrInternal {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Info(ctx, "request rejected", zap.String("code", kind.Error()), zap.Error(err))
	}

	return &v1specs.ErrorStatusCode{
		StatusCode: serrors.StatusCode(kind),
		Response: v1specs.Error{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}
