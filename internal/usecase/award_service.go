package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/binetime/binetime/internal/domain/award"
	"github.com/binetime/binetime/internal/domain/league"
	"github.com/binetime/binetime/internal/domain/sleeper"
	"github.com/binetime/binetime/internal/domain/team"
	"github.com/binetime/binetime/internal/domain/user"
	"github.com/binetime/binetime/internal/platform/cache"
	"github.com/binetime/binetime/internal/platform/logging"
)

const awardsCachePrefix = "awards:"

// LeagueAwards is one computed award sheet for a stored league.
type LeagueAwards struct {
	League        league.League
	SleeperLeague sleeper.League
	Weeks         int
	Awards        []award.Award
	GeneratedAt   time.Time
}

// SeasonSnapshot is everything the calculator needs from Sleeper.
type SeasonSnapshot struct {
	League  sleeper.League
	Rosters []sleeper.Roster
	Users   []sleeper.LeagueUser
	Season  sleeper.Season
}

type AwardConfigReader interface {
	ConfigsForLeague(ctx context.Context, leagueID string) ([]award.Config, error)
}

type AwardService struct {
	leagueRepo league.Repository
	members    membership
	configs    AwardConfigReader
	sleeper    SleeperGateway
	cache      *cache.Store
	weeks      int
	logger     *logging.Logger
	now        func() time.Time
}

type AwardServiceConfig struct {
	Weeks  int
	Logger *logging.Logger
}

func NewAwardService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	userRepo user.Repository,
	configs AwardConfigReader,
	sleeperGateway SleeperGateway,
	store *cache.Store,
	cfg AwardServiceConfig,
) *AwardService {
	if cfg.Weeks <= 0 {
		cfg.Weeks = 17
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &AwardService{
		leagueRepo: leagueRepo,
		members:    membership{userRepo: userRepo, teamRepo: teamRepo, leagueRepo: leagueRepo},
		configs:    configs,
		sleeper:    sleeperGateway,
		cache:      store,
		weeks:      cfg.Weeks,
		logger:     cfg.Logger,
		now:        time.Now,
	}
}

// LeagueAwards returns the league's award sheet to one of its members,
// serving a cached sheet when one is fresh. The store's TTL bounds how stale
// a sheet may get.
func (s *AwardService) LeagueAwards(ctx context.Context, principal user.Principal, leagueID string) (LeagueAwards, error) {
	ctx, span := startSpan(ctx, "usecase.AwardService.LeagueAwards")
	defer span.End()

	lg, err := s.members.require(ctx, principal, leagueID)
	if err != nil {
		return LeagueAwards{}, err
	}
	if s.cache == nil {
		return s.compute(ctx, lg)
	}
	return cache.Load(ctx, s.cache, awardsCachePrefix+lg.ID, func(ctx context.Context) (LeagueAwards, error) {
		return s.compute(ctx, lg)
	})
}

// Invalidate drops the cached sheet of one league.
func (s *AwardService) Invalidate(ctx context.Context, leagueID string) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(ctx, awardsCachePrefix+leagueID)
}

// RefreshAll recomputes the sheet of every stored league. One league failing
// does not stop the others; the joined error reports all failures.
func (s *AwardService) RefreshAll(ctx context.Context) (int, error) {
	ctx, span := startSpan(ctx, "usecase.AwardService.RefreshAll")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list leagues: %w", err)
	}

	var (
		refreshed int
		errs      []error
	)
	for _, summary := range leagues {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if _, err := s.computeAndStore(ctx, summary.League); err != nil {
			s.logger.WarnContext(ctx, "refresh league awards failed",
				"event", "awards.refresh",
				"league_id", summary.ID,
				"sleeper_league_id", summary.SleeperLeagueID,
				"error", err,
			)
			errs = append(errs, fmt.Errorf("league %s: %w", summary.ID, err))
			continue
		}
		refreshed++
	}
	return refreshed, errors.Join(errs...)
}

// computeAndStore skips the write when the league was invalidated while the
// sheet was being computed.
func (s *AwardService) computeAndStore(ctx context.Context, lg league.League) (LeagueAwards, error) {
	var gen uint64
	if s.cache != nil {
		gen = s.cache.Generation()
	}
	out, err := s.compute(ctx, lg)
	if err != nil {
		return LeagueAwards{}, err
	}
	if s.cache != nil {
		s.cache.SetIfGeneration(ctx, awardsCachePrefix+lg.ID, out, gen)
	}
	return out, nil
}

func (s *AwardService) compute(ctx context.Context, lg league.League) (LeagueAwards, error) {
	configs, err := s.configs.ConfigsForLeague(ctx, lg.ID)
	if err != nil {
		return LeagueAwards{}, err
	}

	snapshot, err := FetchSeasonSnapshot(ctx, s.sleeper, lg.SleeperLeagueID, s.weeks)
	if err != nil {
		return LeagueAwards{}, err
	}

	byID := make(map[award.ID]award.Config, len(configs))
	for _, cfg := range configs {
		byID[cfg.ID] = cfg
	}
	calc := award.NewCalculator(snapshot.Rosters, snapshot.Users, snapshot.Season, byID)

	return LeagueAwards{
		League:        lg,
		SleeperLeague: snapshot.League,
		Weeks:         len(snapshot.Season),
		Awards:        calc.All(),
		GeneratedAt:   s.now().UTC(),
	}, nil
}

// FetchSeasonSnapshot loads league, rosters, users and all weeks in parallel.
func FetchSeasonSnapshot(ctx context.Context, gateway SleeperGateway, sleeperLeagueID string, weeks int) (SeasonSnapshot, error) {
	if sleeperLeagueID == "" {
		return SeasonSnapshot{}, fmt.Errorf("%w: sleeper league id is required", ErrInvalidInput)
	}

	var snapshot SeasonSnapshot
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		snapshot.League, err = gateway.GetLeague(ctx, sleeperLeagueID)
		return wrapSleeper("league", err)
	})
	p.Go(func(ctx context.Context) (err error) {
		snapshot.Rosters, err = gateway.GetRosters(ctx, sleeperLeagueID)
		return wrapSleeper("rosters", err)
	})
	p.Go(func(ctx context.Context) (err error) {
		snapshot.Users, err = gateway.GetUsers(ctx, sleeperLeagueID)
		return wrapSleeper("users", err)
	})
	p.Go(func(ctx context.Context) (err error) {
		snapshot.Season, err = gateway.GetSeasonMatchups(ctx, sleeperLeagueID, weeks)
		return wrapSleeper("matchups", err)
	})
	if err := p.Wait(); err != nil {
		return SeasonSnapshot{}, err
	}
	return snapshot, nil
}

func wrapSleeper(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("fetch sleeper %s: %w", what, err)
}
