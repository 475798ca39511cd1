package middleware

import (
	"log"
	"net/http"
	"runtime/debug"
)

// Recovery turns a panicking handler into a 500 JSON response
func Recovery(logger *log.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					logger.Printf("PANIC recovered on %s %s (request %s): %v\n%s",
						r.Method, r.URL.Path, RequestIDFromContext(r.Context()), err, debug.Stack())
					writeJSONError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
