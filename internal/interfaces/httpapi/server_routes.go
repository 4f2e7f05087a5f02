package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerLiveRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/live/matches", handler.ListLiveMatches)
	mux.HandleFunc("GET /v1/live/matches/{matchID}", handler.GetLiveMatch)
	mux.HandleFunc("GET /v1/live/matches/{matchID}/events", handler.GetLiveEvents)
	mux.HandleFunc("GET /v1/live/matches/{matchID}/stats", handler.GetLiveStats)
	mux.HandleFunc("GET /v1/live/matches/{matchID}/lineups", handler.GetLiveLineups)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/live/matches/{matchID}/refresh", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RefreshLiveMatch)))
	mux.Handle("POST /v1/internal/jobs/ingest-competitions", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunCompetitionIngestion)))
}
