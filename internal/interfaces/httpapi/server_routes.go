package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedTeamRoutes(mux, handler, verifier)
	registerAuthorizedScoreRoutes(mux, handler, verifier)
	registerAuthorizedBoardRoutes(mux, handler, verifier)
}

func registerAuthorizedTeamRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("GET /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.ListMyTeams)))
	mux.Handle("GET /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.GetTeam)))
	mux.Handle("POST /v1/teams/{teamID}/players", RequireAuth(verifier, http.HandlerFunc(handler.AddTeamPlayer)))
}

func registerAuthorizedScoreRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/scores", RequireAuth(verifier, http.HandlerFunc(handler.SubmitScore)))
	mux.Handle("GET /v1/scores", RequireAuth(verifier, http.HandlerFunc(handler.ListMyScores)))
}

func registerAuthorizedBoardRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/teams/{teamID}/board", RequireAuth(verifier, http.HandlerFunc(handler.GetBoard)))
}
