package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-live/internal/platform/logging"
)

// NewRouter mounts every route on a ServeMux and wraps it with tracing,
// request logging, CORS and panic recovery, outermost first.
func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	swaggerEnabled bool,
	corsAllowedOrigins []string,
	internalJobToken string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, swaggerEnabled)
	registerLiveRoutes(mux, handler)
	registerInternalJobRoutes(mux, handler, internalJobToken)

	return chain(mux,
		RequestTracing(),
		RequestLogging(logger),
		CORS(corsAllowedOrigins),
		RecoverPanic(logger),
	)
}
