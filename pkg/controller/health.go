package controller

import (
	"context"
	"gmao/pkg/logger"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const healthProbeTimeout = 2 * time.Second

// Health returns a handler answering 200 when probe succeeds and 503
// otherwise. A nil probe always reports healthy.
func Health(probe func(ctx context.Context) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")

		if probe != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
			defer cancel()

			if err := probe(ctx); err != nil {
				logger.Warn(r.Context(), "health probe failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"unavailable"}`))

				return
			}
		}

		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
}
