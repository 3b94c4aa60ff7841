package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/binetime/binetime/internal/domain/league"
	"github.com/binetime/binetime/internal/domain/sleeper"
	"github.com/binetime/binetime/internal/domain/team"
	"github.com/binetime/binetime/internal/domain/user"
	"github.com/binetime/binetime/internal/infrastructure/repository/memory"
	leaguemock "github.com/binetime/binetime/internal/mocks/domain/league"
	teammock "github.com/binetime/binetime/internal/mocks/domain/team"
)

const hopYardSleeperID = "111222333"

func newLeagueFixture(t *testing.T) (*LeagueService, *memory.Database, *fakeSleeper) {
	t.Helper()

	db := memory.NewDatabase(memory.DefaultSeed(), nil)
	gateway := newFakeSleeper()
	seedSleeperLeague(gateway, hopYardSleeperID)
	ids := &sequenceIDs{prefix: "id"}
	users := NewUserService(db.Users(), db.Teams(), db.Leagues(), ids, true)
	service := NewLeagueService(db.Leagues(), db.Teams(), users, gateway, ids, memory.SleeperLeagueIDBineToShrine)
	return service, db, gateway
}

func TestLeagueService_List_SortsByNameUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	service := NewLeagueService(leagueRepo, teamRepo, nil, nil, nil, "")

	leagueRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return([]league.Summary{
			{League: league.League{ID: "b", Name: "Zymurgy"}, TeamCount: 3},
			{League: league.League{ID: "a", Name: "Amarillo"}, TeamCount: 10},
		}, nil).
		Once()

	got, err := service.List(ctx)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Amarillo" || got[0].TeamCount != 10 {
		t.Fatalf("unexpected leagues: %+v", got)
	}
}

func TestLeagueService_DefaultLeague_FallsBackToConfiguredID(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, nil, nil, nil, nil, "999")

	leagueRepo.
		On("GetDefault", mock.Anything).
		Return(league.League{}, false, nil).
		Once()

	got, err := service.DefaultLeague(context.Background())
	if err != nil {
		t.Fatalf("default league: %v", err)
	}
	if got.SleeperLeagueID != "999" {
		t.Fatalf("unexpected sleeper league id: %s", got.SleeperLeagueID)
	}
}

func TestLeagueService_JoinLeague(t *testing.T) {
	t.Parallel()

	service, db, _ := newLeagueFixture(t)
	owner := user.Principal{Email: "brewer@example.com", Name: "Brewer"}

	joined, err := service.JoinLeague(t.Context(), owner, JoinLeagueInput{
		SleeperLeagueID: hopYardSleeperID,
		SleeperRosterID: 3,
		TeamName:        "Mosaic Mashers",
	})
	if err != nil {
		t.Fatalf("join league: %v", err)
	}
	if joined.League.Name != "Hop Yard" || joined.League.Description != "Fantasy league for 2024 season" {
		t.Fatalf("unexpected created league: %+v", joined.League)
	}
	if joined.SleeperRosterID != 3 || joined.Name != "Mosaic Mashers" {
		t.Fatalf("unexpected team: %+v", joined.Team)
	}
	if _, ok, _ := db.Users().GetByEmail(t.Context(), owner.Email); !ok {
		t.Fatalf("expected user to be registered on join")
	}

	_, err = service.JoinLeague(t.Context(), owner, JoinLeagueInput{SleeperLeagueID: hopYardSleeperID, SleeperRosterID: 4, TeamName: "Second"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for second team, got %v", err)
	}

	_, err = service.JoinLeague(t.Context(), user.Principal{Email: "rival@example.com"}, JoinLeagueInput{SleeperLeagueID: hopYardSleeperID, SleeperRosterID: 3, TeamName: "Thief"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for claimed roster, got %v", err)
	}
}

func TestLeagueService_JoinLeague_LosesCreateRace(t *testing.T) {
	t.Parallel()

	db := memory.NewDatabase(memory.DefaultSeed(), nil)
	gateway := newFakeSleeper()
	seedSleeperLeague(gateway, hopYardSleeperID)
	ids := &sequenceIDs{prefix: "id"}
	users := NewUserService(db.Users(), db.Teams(), db.Leagues(), ids, true)
	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, db.Teams(), users, gateway, ids, "")

	winner := league.League{ID: "league-first", Name: "Hop Yard", SleeperLeagueID: hopYardSleeperID}
	leagueRepo.On("GetBySleeperID", mock.Anything, hopYardSleeperID).Return(league.League{}, false, nil).Once()
	leagueRepo.On("Create", mock.Anything, mock.Anything).Return(league.League{}, league.ErrDuplicate).Once()
	leagueRepo.On("GetBySleeperID", mock.Anything, hopYardSleeperID).Return(winner, true, nil).Once()

	joined, err := service.JoinLeague(t.Context(), user.Principal{Email: "late@example.com"}, JoinLeagueInput{
		SleeperLeagueID: hopYardSleeperID,
		SleeperRosterID: 2,
		TeamName:        "Second Runnings",
	})
	if err != nil {
		t.Fatalf("join league: %v", err)
	}
	if joined.League.ID != winner.ID || joined.LeagueID != winner.ID {
		t.Fatalf("expected team in the already registered league, got %+v", joined)
	}
}

func TestLeagueService_JoinLeague_ConcurrentFirstJoins(t *testing.T) {
	t.Parallel()

	service, db, _ := newLeagueFixture(t)

	var wg sync.WaitGroup
	joined := make([]team.WithLeague, 4)
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			joined[i], errs[i] = service.JoinLeague(t.Context(), user.Principal{Email: fmt.Sprintf("brewer%d@example.com", i)}, JoinLeagueInput{
				SleeperLeagueID: hopYardSleeperID,
				SleeperRosterID: i + 1,
				TeamName:        fmt.Sprintf("Batch %d", i),
			})
		}()
	}
	wg.Wait()

	lg, ok, err := db.Leagues().GetBySleeperID(t.Context(), hopYardSleeperID)
	if err != nil || !ok {
		t.Fatalf("expected registered league, ok=%v err=%v", ok, err)
	}
	for i, err := range errs {
		if err != nil {
			t.Fatalf("join %d: %v", i, err)
		}
		if joined[i].LeagueID != lg.ID {
			t.Fatalf("join %d landed in league %s, want %s", i, joined[i].LeagueID, lg.ID)
		}
	}
}

func TestLeagueService_JoinLeague_Rejects(t *testing.T) {
	t.Parallel()

	service, _, _ := newLeagueFixture(t)
	owner := user.Principal{Email: "brewer@example.com"}

	tests := []struct {
		name  string
		input JoinLeagueInput
		want  error
	}{
		{name: "missing league", input: JoinLeagueInput{SleeperRosterID: 1, TeamName: "x"}, want: ErrInvalidInput},
		{name: "missing roster", input: JoinLeagueInput{SleeperLeagueID: hopYardSleeperID, TeamName: "x"}, want: ErrInvalidInput},
		{name: "missing name", input: JoinLeagueInput{SleeperLeagueID: hopYardSleeperID, SleeperRosterID: 1}, want: ErrInvalidInput},
		{name: "unknown league", input: JoinLeagueInput{SleeperLeagueID: "404", SleeperRosterID: 1, TeamName: "x"}, want: ErrNotFound},
		{name: "unknown roster", input: JoinLeagueInput{SleeperLeagueID: hopYardSleeperID, SleeperRosterID: 9, TeamName: "x"}, want: ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.JoinLeague(t.Context(), owner, tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLeagueService_SleeperTeams(t *testing.T) {
	t.Parallel()

	service, _, _ := newLeagueFixture(t)

	got, err := service.SleeperTeams(t.Context(), hopYardSleeperID, "")
	if err != nil {
		t.Fatalf("sleeper teams: %v", err)
	}
	if got.League.Name != "Hop Yard" {
		t.Fatalf("unexpected league: %+v", got.League)
	}
	wantOrder := []string{"Citra King", "Cascade Crushers", "mosaic", "simcoe"}
	if len(got.Teams) != len(wantOrder) {
		t.Fatalf("unexpected team count: %d", len(got.Teams))
	}
	for i, want := range wantOrder {
		if got.Teams[i].TeamName != want {
			t.Fatalf("team %d: got=%s want=%s", i, got.Teams[i].TeamName, want)
		}
	}
	if got.Teams[0].Points != 230 || got.Teams[0].PointsAgainst != 180.5 {
		t.Fatalf("unexpected points: %+v", got.Teams[0])
	}

	filtered, err := service.SleeperTeams(t.Context(), hopYardSleeperID, "crush")
	if err != nil {
		t.Fatalf("filtered sleeper teams: %v", err)
	}
	if len(filtered.Teams) != 1 || filtered.Teams[0].RosterID != 1 {
		t.Fatalf("unexpected filtered teams: %+v", filtered.Teams)
	}
}

func TestLeagueService_SleeperTeams_UpstreamDown(t *testing.T) {
	t.Parallel()

	service, _, gateway := newLeagueFixture(t)
	gateway.failWith = ErrDependencyUnavailable

	if _, err := service.SleeperTeams(t.Context(), hopYardSleeperID, ""); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestBuildSleeperTeams_FallbackNames(t *testing.T) {
	t.Parallel()

	got := BuildSleeperTeams(
		[]sleeper.Roster{{RosterID: 5, OwnerID: "ghost"}},
		nil,
	)
	if len(got) != 1 || got[0].TeamName != "Team 5" || got[0].Username != "Unknown" {
		t.Fatalf("unexpected fallback team: %+v", got)
	}
}
