package controller

import (
	"fmt"
	"gmao/pkg/logger"
	"net/http"

	"go.uber.org/zap"
)

// WithRecovery returns a middleware that recovers from panics in next, logs
// them with a stack trace and answers 500 with the API error envelope.
func WithRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			// net/http sentinel for aborting a response, must keep unwinding
			if rec == http.ErrAbortHandler { //nolint: errorlint
				panic(rec)
			}

			logger.Error(r.Context(), "panic while serving request",
				zap.String("panic", fmt.Sprint(rec)),
				zap.Stack("stack"),
			)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"internal error"}`))
		}()

		next.ServeHTTP(w, r)
	})
}
