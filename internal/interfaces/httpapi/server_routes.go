package httpapi

import (
	"net/http"

	"github.com/riskibarqy/hockey-roster/internal/observability"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics *observability.HTTPMetrics, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics.Handler())
	}
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerRosterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("PUT /v1/players", handler.ReplacePlayers)
	mux.HandleFunc("POST /v1/players/reset", handler.ResetPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
}
