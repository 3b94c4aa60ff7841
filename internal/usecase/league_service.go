package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sourcegraph/conc/pool"

	"github.com/binetime/binetime/internal/domain/league"
	"github.com/binetime/binetime/internal/domain/sleeper"
	"github.com/binetime/binetime/internal/domain/team"
	"github.com/binetime/binetime/internal/domain/user"
	"github.com/binetime/binetime/internal/platform/id"
)

// AccountEnsurer resolves a principal to an account, creating it if needed.
type AccountEnsurer interface {
	EnsureUser(ctx context.Context, principal user.Principal) (user.User, error)
}

type JoinLeagueInput struct {
	SleeperLeagueID string
	SleeperRosterID int
	TeamName        string
	LeagueName      string
}

type SleeperLeagueTeams struct {
	League sleeper.League
	Teams  []SleeperTeam
}

// SleeperTeam is a roster in a Sleeper league with its owner and record.
type SleeperTeam struct {
	RosterID      int
	OwnerID       string
	TeamName      string
	Username      string
	DisplayName   string
	Avatar        string
	Wins          int
	Losses        int
	Ties          int
	Points        float64
	PointsAgainst float64
}

type LeagueService struct {
	leagueRepo       league.Repository
	teamRepo         team.Repository
	accounts         AccountEnsurer
	sleeper          SleeperGateway
	idGen            id.Generator
	defaultSleeperID string
	now              func() time.Time
}

func NewLeagueService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	accounts AccountEnsurer,
	sleeperGateway SleeperGateway,
	idGen id.Generator,
	defaultSleeperID string,
) *LeagueService {
	return &LeagueService{
		leagueRepo:       leagueRepo,
		teamRepo:         teamRepo,
		accounts:         accounts,
		sleeper:          sleeperGateway,
		idGen:            idGen,
		defaultSleeperID: strings.TrimSpace(defaultSleeperID),
		now:              time.Now,
	}
}

func (s *LeagueService) List(ctx context.Context) ([]league.Summary, error) {
	ctx, span := startSpan(ctx, "usecase.LeagueService.List")
	defer span.End()

	items, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// DefaultLeague returns the league flagged as default, or a stub carrying the
// configured Sleeper league id when none is stored.
func (s *LeagueService) DefaultLeague(ctx context.Context) (league.League, error) {
	lg, exists, err := s.leagueRepo.GetDefault(ctx)
	if err != nil {
		return league.League{}, fmt.Errorf("get default league: %w", err)
	}
	if exists {
		return lg, nil
	}
	if s.defaultSleeperID == "" {
		return league.League{}, fmt.Errorf("%w: no default league configured", ErrNotFound)
	}
	return league.League{SleeperLeagueID: s.defaultSleeperID, IsDefault: true}, nil
}

func (s *LeagueService) JoinLeague(ctx context.Context, principal user.Principal, input JoinLeagueInput) (team.WithLeague, error) {
	ctx, span := startSpan(ctx, "usecase.LeagueService.JoinLeague")
	defer span.End()

	input.SleeperLeagueID = strings.TrimSpace(input.SleeperLeagueID)
	input.TeamName = strings.TrimSpace(input.TeamName)
	input.LeagueName = strings.TrimSpace(input.LeagueName)
	switch {
	case input.SleeperLeagueID == "":
		return team.WithLeague{}, fmt.Errorf("%w: sleeper league id is required", ErrInvalidInput)
	case input.SleeperRosterID <= 0:
		return team.WithLeague{}, fmt.Errorf("%w: sleeper roster id is required", ErrInvalidInput)
	case input.TeamName == "":
		return team.WithLeague{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	remote, err := s.sleeper.GetLeague(ctx, input.SleeperLeagueID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return team.WithLeague{}, fmt.Errorf("%w: league not found on sleeper", ErrNotFound)
		}
		return team.WithLeague{}, fmt.Errorf("verify sleeper league: %w", err)
	}
	rosters, err := s.sleeper.GetRosters(ctx, input.SleeperLeagueID)
	if err != nil {
		return team.WithLeague{}, fmt.Errorf("verify sleeper roster: %w", err)
	}
	if !hasRoster(rosters, input.SleeperRosterID) {
		return team.WithLeague{}, fmt.Errorf("%w: roster not found in league", ErrNotFound)
	}

	owner, err := s.accounts.EnsureUser(ctx, principal)
	if err != nil {
		return team.WithLeague{}, err
	}

	lg, err := s.ensureLeague(ctx, remote, input)
	if err != nil {
		return team.WithLeague{}, err
	}

	if _, exists, err := s.teamRepo.GetByOwnerAndLeague(ctx, owner.ID, lg.ID); err != nil {
		return team.WithLeague{}, fmt.Errorf("get team by owner: %w", err)
	} else if exists {
		return team.WithLeague{}, fmt.Errorf("%w: you already have a team in this league", ErrConflict)
	}
	if _, exists, err := s.teamRepo.GetByRosterAndLeague(ctx, input.SleeperRosterID, lg.ID); err != nil {
		return team.WithLeague{}, fmt.Errorf("get team by roster: %w", err)
	} else if exists {
		return team.WithLeague{}, fmt.Errorf("%w: this team is already claimed by another user", ErrConflict)
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.WithLeague{}, fmt.Errorf("generate team id: %w", err)
	}
	now := s.now().UTC()
	candidate := team.Team{
		ID:              teamID,
		Name:            input.TeamName,
		SleeperRosterID: input.SleeperRosterID,
		OwnerID:         owner.ID,
		LeagueID:        lg.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := candidate.Validate(); err != nil {
		return team.WithLeague{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.teamRepo.Create(ctx, candidate)
	if err != nil {
		if errors.Is(err, team.ErrDuplicate) {
			return team.WithLeague{}, fmt.Errorf("%w: this team is already claimed by another user", ErrConflict)
		}
		return team.WithLeague{}, fmt.Errorf("create team: %w", err)
	}
	return team.WithLeague{Team: created, League: lg}, nil
}

func (s *LeagueService) ensureLeague(ctx context.Context, remote sleeper.League, input JoinLeagueInput) (league.League, error) {
	existing, exists, err := s.leagueRepo.GetBySleeperID(ctx, input.SleeperLeagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league by sleeper id: %w", err)
	}
	if exists {
		return existing, nil
	}

	leagueID, err := s.idGen.NewID()
	if err != nil {
		return league.League{}, fmt.Errorf("generate league id: %w", err)
	}
	now := s.now().UTC()
	candidate := league.League{
		ID:              leagueID,
		Name:            firstNonEmpty(input.LeagueName, strings.TrimSpace(remote.Name), "League "+input.SleeperLeagueID),
		Description:     fmt.Sprintf("Fantasy league for %s season", remote.Season),
		SleeperLeagueID: input.SleeperLeagueID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := candidate.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.leagueRepo.Create(ctx, candidate)
	if errors.Is(err, league.ErrDuplicate) {
		// A concurrent join registered the league first.
		existing, exists, getErr := s.leagueRepo.GetBySleeperID(ctx, input.SleeperLeagueID)
		if getErr != nil {
			return league.League{}, fmt.Errorf("get league by sleeper id: %w", getErr)
		}
		if exists {
			return existing, nil
		}
	}
	if err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}
	return created, nil
}

// SleeperTeams lists a Sleeper league's rosters ranked by wins then points.
// A non-empty query keeps teams whose team, display or user name fuzzily
// matches it.
func (s *LeagueService) SleeperTeams(ctx context.Context, sleeperLeagueID, query string) (SleeperLeagueTeams, error) {
	ctx, span := startSpan(ctx, "usecase.LeagueService.SleeperTeams")
	defer span.End()

	sleeperLeagueID = strings.TrimSpace(sleeperLeagueID)
	if sleeperLeagueID == "" {
		return SleeperLeagueTeams{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	var (
		remote  sleeper.League
		rosters []sleeper.Roster
		users   []sleeper.LeagueUser
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		remote, err = s.sleeper.GetLeague(ctx, sleeperLeagueID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		rosters, err = s.sleeper.GetRosters(ctx, sleeperLeagueID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		users, err = s.sleeper.GetUsers(ctx, sleeperLeagueID)
		return err
	})
	if err := p.Wait(); err != nil {
		return SleeperLeagueTeams{}, fmt.Errorf("load sleeper league %s: %w", sleeperLeagueID, err)
	}

	teams := BuildSleeperTeams(rosters, users)
	if q := strings.TrimSpace(query); q != "" {
		teams = filterTeams(teams, q)
	}
	return SleeperLeagueTeams{League: remote, Teams: teams}, nil
}

// BuildSleeperTeams joins rosters to their owners and sorts them by wins,
// then points for.
func BuildSleeperTeams(rosters []sleeper.Roster, users []sleeper.LeagueUser) []SleeperTeam {
	byID := make(map[string]sleeper.LeagueUser, len(users))
	for _, u := range users {
		byID[u.UserID] = u
	}

	teams := make([]SleeperTeam, 0, len(rosters))
	for _, r := range rosters {
		settings := r.Season()
		item := SleeperTeam{
			RosterID:      r.RosterID,
			OwnerID:       r.OwnerID,
			Username:      "Unknown",
			Wins:          settings.Wins,
			Losses:        settings.Losses,
			Ties:          settings.Ties,
			Points:        settings.PointsFor(),
			PointsAgainst: settings.PointsAgainst(),
		}

		var custom, display, username string
		if u, ok := byID[r.OwnerID]; ok {
			custom, _ = u.CustomTeamName()
			display, _ = u.Display()
			username = u.Username
			item.Avatar = u.Avatar
			item.DisplayName = display
			if username != "" {
				item.Username = username
			}
		}
		item.TeamName = firstNonEmpty(custom, display, username, "Team "+strconv.Itoa(r.RosterID))
		teams = append(teams, item)
	}

	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].Wins != teams[j].Wins {
			return teams[i].Wins > teams[j].Wins
		}
		return teams[i].Points > teams[j].Points
	})
	return teams
}

func filterTeams(teams []SleeperTeam, query string) []SleeperTeam {
	out := make([]SleeperTeam, 0, len(teams))
	for _, t := range teams {
		if fuzzy.MatchNormalizedFold(query, t.TeamName) ||
			fuzzy.MatchNormalizedFold(query, t.DisplayName) ||
			fuzzy.MatchNormalizedFold(query, t.Username) {
			out = append(out, t)
		}
	}
	return out
}

func hasRoster(rosters []sleeper.Roster, rosterID int) bool {
	for _, r := range rosters {
		if r.RosterID == rosterID {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
