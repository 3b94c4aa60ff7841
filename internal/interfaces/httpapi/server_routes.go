package httpapi

import "net/http"

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/default-league", handler.GetDefaultLeague)
	mux.HandleFunc("GET /v1/default-user", handler.GetDefaultUser)
	mux.HandleFunc("GET /v1/sleeper/leagues/{sleeperLeagueID}/teams", handler.ListSleeperTeams)
}

func registerAccountRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/user", RequireAuth(verifier, http.HandlerFunc(handler.GetCurrentUser)))
	mux.Handle("GET /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.ListMyTeams)))
	mux.Handle("GET /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.GetMyTeam)))
	mux.Handle("GET /v1/active-team", RequireAuth(verifier, http.HandlerFunc(handler.GetActiveTeam)))
	mux.Handle("POST /v1/active-team", RequireAuth(verifier, http.HandlerFunc(handler.SetActiveTeam)))
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.ListLeagues)))
	mux.Handle("POST /v1/leagues/join", RequireAuth(verifier, http.HandlerFunc(handler.JoinLeague)))
}

func registerAwardRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/leagues/{leagueID}/award-configs", RequireAuth(verifier, http.HandlerFunc(handler.ListAwardConfigs)))
	mux.Handle("GET /v1/leagues/{leagueID}/awards", RequireAuth(verifier, http.HandlerFunc(handler.GetAwardSettings)))
	mux.Handle("POST /v1/leagues/{leagueID}/awards", RequireAuth(verifier, http.HandlerFunc(handler.CustomizeAward)))
	mux.Handle("PUT /v1/leagues/{leagueID}/awards/{awardTypeID}", RequireAuth(verifier, http.HandlerFunc(handler.CustomizeAward)))
	mux.Handle("DELETE /v1/leagues/{leagueID}/awards/{awardTypeID}", RequireAuth(verifier, http.HandlerFunc(handler.DisableAward)))
	mux.Handle("GET /v1/leagues/{leagueID}/award-results", RequireAuth(verifier, http.HandlerFunc(handler.GetAwardResults)))
}
