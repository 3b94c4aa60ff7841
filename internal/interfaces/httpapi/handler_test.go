package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/binetime/binetime/internal/domain/sleeper"
	"github.com/binetime/binetime/internal/domain/user"
	"github.com/binetime/binetime/internal/infrastructure/repository/memory"
	"github.com/binetime/binetime/internal/platform/cache"
	"github.com/binetime/binetime/internal/platform/id"
	"github.com/binetime/binetime/internal/platform/logging"
	"github.com/binetime/binetime/internal/usecase"
)

const (
	demoToken     = "demo-token"
	strangerToken = "stranger-token"
	newcomerToken = "newcomer-token"
)

type staticSleeper struct {
	league  sleeper.League
	rosters []sleeper.Roster
	users   []sleeper.LeagueUser
	season  sleeper.Season
}

func (s staticSleeper) check(leagueID string) error {
	if leagueID != s.league.LeagueID {
		return fmt.Errorf("%w: sleeper league %s", usecase.ErrNotFound, leagueID)
	}
	return nil
}

func (s staticSleeper) GetLeague(_ context.Context, leagueID string) (sleeper.League, error) {
	return s.league, s.check(leagueID)
}

func (s staticSleeper) GetRosters(_ context.Context, leagueID string) ([]sleeper.Roster, error) {
	return s.rosters, s.check(leagueID)
}

func (s staticSleeper) GetUsers(_ context.Context, leagueID string) ([]sleeper.LeagueUser, error) {
	return s.users, s.check(leagueID)
}

func (s staticSleeper) GetSeasonMatchups(_ context.Context, leagueID string, _ int) (sleeper.Season, error) {
	return s.season, s.check(leagueID)
}

func bineToShrine() staticSleeper {
	teamName := "Galaxy Brains"
	one, two := 1, 1
	return staticSleeper{
		league: sleeper.League{
			LeagueID:     memory.SleeperLeagueIDBineToShrine,
			Name:         "Bine to Shrine",
			Season:       "2024",
			Status:       "complete",
			TotalRosters: 2,
		},
		rosters: []sleeper.Roster{
			{RosterID: 1, OwnerID: "u1", Settings: &sleeper.RosterSettings{Wins: 1, Fpts: 142, FptsDecimal: 30, FptsAgainst: 98, FptsAgainstDecimal: 10}},
			{RosterID: 2, OwnerID: "u2", Settings: &sleeper.RosterSettings{Losses: 1, Fpts: 98, FptsDecimal: 10, FptsAgainst: 142, FptsAgainstDecimal: 30}},
		},
		users: []sleeper.LeagueUser{
			{UserID: "u1", Username: "galaxy", Metadata: &sleeper.UserMetadata{TeamName: &teamName}},
			{UserID: "u2", Username: "hopshead"},
		},
		season: sleeper.Season{
			{
				{RosterID: 1, MatchupID: &one, Points: 142.3},
				{RosterID: 2, MatchupID: &two, Points: 98.1},
			},
		},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db := memory.NewDatabase(memory.DefaultSeed(), id.NewUUIDGenerator())
	idGen := id.NewUUIDGenerator()
	gateway := bineToShrine()

	userService := usecase.NewUserService(db.Users(), db.Teams(), db.Leagues(), idGen, false)
	teamService := usecase.NewTeamService(db.Users(), db.Teams())
	leagueService := usecase.NewLeagueService(db.Leagues(), db.Teams(), userService, gateway, idGen, memory.SleeperLeagueIDBineToShrine)
	configService := usecase.NewAwardConfigService(db.AwardTypes(), db.AwardCustomizations(), db.Users(), db.Teams(), db.Leagues(), idGen)
	awardService := usecase.NewAwardService(db.Leagues(), db.Teams(), db.Users(), configService, gateway, cache.NewStore(time.Minute), usecase.AwardServiceConfig{Weeks: 1})
	configService.OnChange(awardService.Invalidate)

	handler := NewHandler(userService, teamService, leagueService, configService, awardService, true, logging.NewNop())
	verifier := stubVerifier{principals: map[string]user.Principal{
		demoToken:     {UserID: "kp_demo", Email: memory.DefaultUserEmail},
		strangerToken: {UserID: "kp_stranger", Email: "stranger@binetime.invalid"},
		newcomerToken: {UserID: "kp_new", Email: "newcomer@binetime.invalid"},
	}}
	return NewRouter(handler, verifier, logging.NewNop(), []string{"*"})
}

func call(t *testing.T, router http.Handler, method, path, token, body string, cookies ...*http.Cookie) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("%s %s: decode body: %v (%s)", method, path, err, rec.Body.String())
	}
	return rec, envelope
}

func dataObject(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()
	data, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", envelope)
	}
	return data
}

func TestRouter_PublicRoutes(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, _ := call(t, router, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz: expected 200, got %d", rec.Code)
	}

	rec, body := call(t, router, http.MethodGet, "/v1/default-league", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("default league: expected 200, got %d", rec.Code)
	}
	if got := dataObject(t, body)["sleeper_league_id"]; got != memory.SleeperLeagueIDBineToShrine {
		t.Fatalf("unexpected default league: %v", got)
	}

	rec, body = call(t, router, http.MethodGet, "/v1/default-user", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("default user: expected 200, got %d", rec.Code)
	}
	teams, _ := dataObject(t, body)["teams"].([]any)
	if len(teams) != 2 {
		t.Fatalf("expected demo user to own 2 teams, got %d", len(teams))
	}

	rec, body = call(t, router, http.MethodGet, "/v1/sleeper/leagues/"+memory.SleeperLeagueIDBineToShrine+"/teams?q=galaxy", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("sleeper teams: expected 200, got %d", rec.Code)
	}
	sleeperTeams, _ := dataObject(t, body)["teams"].([]any)
	if len(sleeperTeams) != 1 {
		t.Fatalf("expected query to keep 1 team, got %d", len(sleeperTeams))
	}
	if got := sleeperTeams[0].(map[string]any)["team_name"]; got != "Galaxy Brains" {
		t.Fatalf("unexpected team name: %v", got)
	}
}

func TestRouter_AuthenticatedRoutesRequireToken(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	for _, path := range []string{"/v1/user", "/v1/teams", "/v1/active-team", "/v1/leagues"} {
		rec, _ := call(t, router, http.MethodGet, path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, rec.Code)
		}
	}
}

func TestRouter_UnregisteredAccount(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, body := call(t, router, http.MethodGet, "/v1/user", strangerToken, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	errorObj, _ := body["error"].(map[string]any)
	items, _ := errorObj["errors"].([]any)
	if len(items) == 0 || items[0].(map[string]any)["reason"] != "ACCOUNT_NOT_FOUND" {
		t.Fatalf("expected ACCOUNT_NOT_FOUND reason, got %v", errorObj)
	}
}

func TestRouter_ActiveTeamCookie(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, body := call(t, router, http.MethodGet, "/v1/active-team", demoToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get active team: expected 200, got %d", rec.Code)
	}
	active, _ := dataObject(t, body)["active_team"].(map[string]any)
	if active == nil {
		t.Fatalf("expected a fallback active team")
	}

	rec, _ = call(t, router, http.MethodPost, "/v1/active-team", demoToken, `{"team_id":"team-demo-sandbox"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("set active team: expected 200, got %d", rec.Code)
	}
	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == activeTeamCookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatalf("expected %s cookie to be set", activeTeamCookieName)
	}
	if cookie.Value != "team-demo-sandbox" || !cookie.HttpOnly || !cookie.Secure || cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
	if cookie.MaxAge != 30*24*60*60 {
		t.Fatalf("unexpected cookie max age: %d", cookie.MaxAge)
	}

	rec, body = call(t, router, http.MethodGet, "/v1/active-team", demoToken, "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("get active team with cookie: expected 200, got %d", rec.Code)
	}
	active, _ = dataObject(t, body)["active_team"].(map[string]any)
	if active["id"] != "team-demo-sandbox" {
		t.Fatalf("expected cookie team to be active, got %v", active["id"])
	}

	rec, _ = call(t, router, http.MethodPost, "/v1/active-team", demoToken, `{"team_id":"team-someone-else"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("set foreign team: expected 404, got %d", rec.Code)
	}
	rec, _ = call(t, router, http.MethodPost, "/v1/active-team", demoToken, `{"teamId":"team-demo-bine"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown field: expected 400, got %d", rec.Code)
	}
}

func TestRouter_AwardCustomizationFlow(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	base := "/v1/leagues/" + memory.LeagueIDBineToShrine

	rec, body := call(t, router, http.MethodGet, base+"/award-results", demoToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("award results: expected 200, got %d", rec.Code)
	}
	awards, _ := dataObject(t, body)["awards"].([]any)
	if len(awards) != 13 {
		t.Fatalf("expected 13 awards, got %d", len(awards))
	}

	rec, _ = call(t, router, http.MethodPut, base+"/awards/bestSingleGame", demoToken, `{"custom_name":"Hop Bomb","custom_icon":"🍺"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("customize award: expected 200, got %d", rec.Code)
	}

	rec, body = call(t, router, http.MethodGet, base+"/award-results", demoToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("award results after customize: expected 200, got %d", rec.Code)
	}
	var best map[string]any
	for _, raw := range dataObject(t, body)["awards"].([]any) {
		if item := raw.(map[string]any); item["id"] == "bestSingleGame" {
			best = item
		}
	}
	if best["name"] != "Hop Bomb" {
		t.Fatalf("expected customized name in recomputed sheet, got %v", best["name"])
	}
	winner, _ := best["winner"].(map[string]any)
	if winner["team_name"] != "Galaxy Brains" || winner["value"] != 142.3 {
		t.Fatalf("unexpected best single game winner: %v", winner)
	}

	rec, _ = call(t, router, http.MethodPut, base+"/awards/bestSingleGame", demoToken, `{"award_type_id":"biggestBlowout","custom_name":"Nope"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("mismatched award type: expected 400, got %d", rec.Code)
	}

	rec, body = call(t, router, http.MethodDelete, base+"/awards/bestSingleGame", demoToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("disable award: expected 200, got %d", rec.Code)
	}
	if active := dataObject(t, body)["is_active"]; active != false {
		t.Fatalf("expected customization to be inactive, got %v", active)
	}

	rec, body = call(t, router, http.MethodGet, base+"/award-configs", demoToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("award configs: expected 200, got %d", rec.Code)
	}
	for _, raw := range body["data"].([]any) {
		if item := raw.(map[string]any); item["id"] == "bestSingleGame" && item["customized"] != false {
			t.Fatalf("expected disabled customization to fall back to default")
		}
	}
}

func TestRouter_JoinLeagueConflicts(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	payload := fmt.Sprintf(`{"sleeper_league_id":%q,"sleeper_roster_id":2,"team_name":"Second Runnings"}`, memory.SleeperLeagueIDBineToShrine)
	rec, _ := call(t, router, http.MethodPost, "/v1/leagues/join", demoToken, payload)
	if rec.Code != http.StatusConflict {
		t.Fatalf("demo already in league: expected 409, got %d", rec.Code)
	}

	rec, _ = call(t, router, http.MethodPost, "/v1/leagues/join", demoToken, `{"sleeper_league_id":"abc","sleeper_roster_id":2,"team_name":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("non numeric league id: expected 400, got %d", rec.Code)
	}
}

func TestRouter_JoinLeagueRegistersNewcomer(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	payload := fmt.Sprintf(`{"sleeper_league_id":%q,"sleeper_roster_id":2,"team_name":"Second Runnings"}`, memory.SleeperLeagueIDBineToShrine)
	rec, body := call(t, router, http.MethodPost, "/v1/leagues/join", newcomerToken, payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("join league: expected 201, got %d (%v)", rec.Code, body)
	}
	created := dataObject(t, body)
	if created["league_id"] != memory.LeagueIDBineToShrine || created["sleeper_roster_id"] != float64(2) {
		t.Fatalf("unexpected joined team: %v", created)
	}

	rec, body = call(t, router, http.MethodGet, "/v1/teams", newcomerToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list teams: expected 200, got %d", rec.Code)
	}
	if teams, _ := body["data"].([]any); len(teams) != 1 {
		t.Fatalf("expected newcomer to own 1 team, got %v", body["data"])
	}

	rec, _ = call(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDBineToShrine+"/award-results", newcomerToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("award results for new member: expected 200, got %d", rec.Code)
	}
	rec, _ = call(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDSandbox+"/award-results", newcomerToken, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("award results for non member: expected 403, got %d", rec.Code)
	}
}
