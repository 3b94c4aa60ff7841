package usecase

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/binetime/binetime/internal/domain/award"
	"github.com/binetime/binetime/internal/infrastructure/repository/memory"
	"github.com/binetime/binetime/internal/platform/cache"
	"github.com/binetime/binetime/internal/platform/logging"
)

type awardFixture struct {
	awards  *AwardService
	configs *AwardConfigService
	gateway *fakeSleeper
}

func newAwardFixture(t *testing.T) awardFixture {
	t.Helper()

	db := memory.NewDatabase(memory.DefaultSeed(), nil)
	gateway := newFakeSleeper()
	seedSleeperLeague(gateway, memory.SleeperLeagueIDBineToShrine)
	seedSleeperLeague(gateway, memory.SleeperLeagueIDSandbox)

	configs := NewAwardConfigService(db.AwardTypes(), db.AwardCustomizations(), db.Users(), db.Teams(), db.Leagues(), &sequenceIDs{prefix: "custom"})
	awards := NewAwardService(db.Leagues(), db.Teams(), db.Users(), configs, gateway, cache.NewStore(time.Hour), AwardServiceConfig{
		Weeks:  17,
		Logger: logging.NewNop(),
	})
	configs.OnChange(awards.Invalidate)
	return awardFixture{awards: awards, configs: configs, gateway: gateway}
}

func awardByID(awards []award.Award, id award.ID) award.Award {
	for _, a := range awards {
		if a.ID == id {
			return a
		}
	}
	return award.Award{}
}

func TestAwardService_LeagueAwards(t *testing.T) {
	t.Parallel()

	fx := newAwardFixture(t)
	got, err := fx.awards.LeagueAwards(t.Context(), demoPrincipal, memory.LeagueIDBineToShrine)
	if err != nil {
		t.Fatalf("league awards: %v", err)
	}
	if len(got.Awards) != 13 || got.Weeks != 2 {
		t.Fatalf("unexpected sheet: awards=%d weeks=%d", len(got.Awards), got.Weeks)
	}
	if got.SleeperLeague.Name != "Hop Yard" {
		t.Fatalf("unexpected sleeper league: %+v", got.SleeperLeague)
	}

	fewest := awardByID(got.Awards, award.FewestPointsAgainst)
	if fewest.Winner == nil || fewest.Winner.RosterID != 2 || fewest.Winner.Value != 180.5 {
		t.Fatalf("unexpected fewest points against winner: %+v", fewest.Winner)
	}
	if fewest.Winner.TeamName != "Citra King" {
		t.Fatalf("unexpected winner name: %s", fewest.Winner.TeamName)
	}

	loss := awardByID(got.Awards, award.HighestScoringLoss)
	if loss.Winner == nil || loss.Winner.RosterID != 1 || loss.Winner.Value != 110 {
		t.Fatalf("unexpected highest scoring loss winner: %+v", loss.Winner)
	}

	injuries := awardByID(got.Awards, award.MostInjuries)
	if injuries.Available || injuries.Winner != nil {
		t.Fatalf("expected unavailable injuries award: %+v", injuries)
	}
}

func TestAwardService_LeagueAwards_CachesUntilConfigChange(t *testing.T) {
	t.Parallel()

	fx := newAwardFixture(t)
	ctx := t.Context()

	for range 3 {
		if _, err := fx.awards.LeagueAwards(ctx, demoPrincipal, memory.LeagueIDSandbox); err != nil {
			t.Fatalf("league awards: %v", err)
		}
	}
	if calls := fx.gateway.callCount("GetSeasonMatchups"); calls != 1 {
		t.Fatalf("expected cached sheet, got %d season fetches", calls)
	}

	if _, err := fx.configs.Customize(ctx, demoPrincipal, CustomizeAwardInput{
		LeagueID:    memory.LeagueIDSandbox,
		AwardTypeID: string(award.BestSingleGame),
		CustomName:  "Double IPA",
		CustomIcon:  "🍺",
	}); err != nil {
		t.Fatalf("customize: %v", err)
	}

	got, err := fx.awards.LeagueAwards(ctx, demoPrincipal, memory.LeagueIDSandbox)
	if err != nil {
		t.Fatalf("league awards after customize: %v", err)
	}
	if calls := fx.gateway.callCount("GetSeasonMatchups"); calls != 2 {
		t.Fatalf("expected recompute after customize, got %d season fetches", calls)
	}
	best := awardByID(got.Awards, award.BestSingleGame)
	if best.Name != "Double IPA" || best.Icon != "🍺" {
		t.Fatalf("expected customized award, got name=%s icon=%s", best.Name, best.Icon)
	}
}

func TestAwardService_LeagueAwards_UpstreamFailure(t *testing.T) {
	t.Parallel()

	fx := newAwardFixture(t)
	fx.gateway.failWith = ErrDependencyUnavailable

	_, err := fx.awards.LeagueAwards(t.Context(), demoPrincipal, memory.LeagueIDBineToShrine)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestAwardService_RefreshAll(t *testing.T) {
	t.Parallel()

	fx := newAwardFixture(t)
	refreshed, err := fx.awards.RefreshAll(t.Context())
	if err != nil {
		t.Fatalf("refresh all: %v", err)
	}
	if refreshed != 2 {
		t.Fatalf("expected 2 refreshed leagues, got %d", refreshed)
	}

	if _, err := fx.awards.LeagueAwards(t.Context(), demoPrincipal, memory.LeagueIDSandbox); err != nil {
		t.Fatalf("league awards: %v", err)
	}
	if calls := fx.gateway.callCount("GetSeasonMatchups"); calls != 2 {
		t.Fatalf("expected warm cache after refresh, got %d season fetches", calls)
	}
}

func TestAwardService_RefreshAll_ReportsFailures(t *testing.T) {
	t.Parallel()

	fx := newAwardFixture(t)
	fx.gateway.failWith = ErrDependencyUnavailable

	refreshed, err := fx.awards.RefreshAll(t.Context())
	if refreshed != 0 || !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("unexpected refresh result: refreshed=%d err=%v", refreshed, err)
	}
}

func TestAwardService_ConfigChangeDuringComputeIsNotOverwritten(t *testing.T) {
	t.Parallel()

	fx := newAwardFixture(t)
	ctx := t.Context()

	var once sync.Once
	fx.gateway.duringSeason = func() {
		once.Do(func() {
			if _, err := fx.configs.Customize(ctx, demoPrincipal, CustomizeAwardInput{
				LeagueID:    memory.LeagueIDSandbox,
				AwardTypeID: string(award.BestSingleGame),
				CustomName:  "Fresh Hop",
			}); err != nil {
				t.Errorf("customize: %v", err)
			}
		})
	}

	if _, err := fx.awards.LeagueAwards(ctx, demoPrincipal, memory.LeagueIDSandbox); err != nil {
		t.Fatalf("league awards: %v", err)
	}

	got, err := fx.awards.LeagueAwards(ctx, demoPrincipal, memory.LeagueIDSandbox)
	if err != nil {
		t.Fatalf("league awards after customize: %v", err)
	}
	if calls := fx.gateway.callCount("GetSeasonMatchups"); calls != 2 {
		t.Fatalf("expected the sheet computed before the change to be dropped, got %d season fetches", calls)
	}
	if best := awardByID(got.Awards, award.BestSingleGame); best.Name != "Fresh Hop" {
		t.Fatalf("expected customized name, got %s", best.Name)
	}
}
