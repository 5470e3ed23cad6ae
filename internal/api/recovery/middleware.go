// Package recovery keeps a panicking handler from taking the server down.
package recovery

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/brewnote/brewnote/internal/api/respond"
)

// Middleware converts downstream panics into 500 replies. The stack goes to
// the log, never to the client.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("handler panicked")

				respond.WriteInternalError(w, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
