package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAnalyticsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/v1/schedule", handler.GetSchedule)
	mux.HandleFunc("GET /api/v1/recommendations", handler.GetRecommendations)
	mux.HandleFunc("GET /api/v1/standings", handler.GetStandings)
	mux.HandleFunc("GET /api/v1/managers/{managerID}/live", handler.GetManagerLive)
	mux.HandleFunc("GET /api/v1/managers/{managerID}/transfers", handler.GetManagerTransfers)
	mux.HandleFunc("GET /api/v1/players/compare", handler.ComparePlayers)
}

func registerConfigRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	// Configuration works anonymously; a bearer token is only required to
	// bind the session to a remote account.
	mux.HandleFunc("GET /api/v1/config", handler.GetConfig)
	mux.HandleFunc("PUT /api/v1/config", handler.UpdateConfig)
	mux.HandleFunc("PUT /api/v1/config/overrides", handler.UpdateConfigOverride)

	mux.Handle("POST /api/v1/session", RequireAuth(verifier, http.HandlerFunc(handler.SignIn)))
	mux.Handle("DELETE /api/v1/session", http.HandlerFunc(handler.SignOut))
}
