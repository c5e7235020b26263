package controller

import "net/http"

// WithCORS returns a middleware that sets permissive CORS headers on every
// response and short-circuits OPTIONS preflight requests with 204 No Content.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Headers",
			"Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Request-Id")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		// exports are downloaded by browsers which need the filename
		h.Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-Id")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
