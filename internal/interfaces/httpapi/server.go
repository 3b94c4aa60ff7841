package httpapi

import (
	"net/http"

	"github.com/binetime/binetime/internal/platform/logging"
)

// NewRouter wires every route behind tracing, request logging, CORS and
// panic recovery, outermost first.
func NewRouter(handler *Handler, verifier TokenVerifier, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerPublicRoutes(mux, handler)
	registerAccountRoutes(mux, handler, verifier)
	registerLeagueRoutes(mux, handler, verifier)
	registerAwardRoutes(mux, handler, verifier)

	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(r.Context(), "panic recovered", "panic", rec, "http_path", r.URL.Path)
				writeInternalError(r.Context(), w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
