package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/top-scorers", handler.ListTopScorers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/gameweeks", handler.ListGameweeks)
	mux.HandleFunc("GET /v1/gameweeks/current", handler.GetCurrentGameweek)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedFantasyRoutes(mux, handler, verifier)
	registerAuthorizedPlayerPoolRoutes(mux, handler, verifier)
}

func registerAuthorizedFantasyRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/fantasy/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateFantasyTeam)))
	mux.Handle("GET /v1/fantasy/teams", RequireAuth(verifier, http.HandlerFunc(handler.ListMyFantasyTeams)))
	mux.Handle("GET /v1/fantasy/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.GetFantasyTeam)))
	mux.Handle("PATCH /v1/fantasy/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.RenameFantasyTeam)))
	mux.Handle("POST /v1/fantasy/teams/{teamID}/players", RequireAuth(verifier, http.HandlerFunc(handler.AddPlayerToRoster)))
	mux.Handle("GET /v1/fantasy/teams/{teamID}/roster", RequireAuth(verifier, http.HandlerFunc(handler.GetRoster)))
}

// Player pool writes are an admin surface; they still ride bearer auth.
func registerAuthorizedPlayerPoolRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/players", RequireAuth(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("PUT /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("DELETE /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.DeletePlayer)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/recalculate-scores", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecalculateScoresJob)))
}
