package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/binetime/binetime/internal/domain/league"
	"github.com/binetime/binetime/internal/domain/team"
	"github.com/binetime/binetime/internal/domain/user"
)

// membership gates league-scoped operations to users owning a team in it.
type membership struct {
	userRepo   user.Repository
	teamRepo   team.Repository
	leagueRepo league.Repository
}

func (m membership) require(ctx context.Context, principal user.Principal, leagueID string) (league.League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	lg, exists, err := m.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	u, exists, err := resolveUser(ctx, m.userRepo, principal)
	if err != nil {
		return league.League{}, err
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: access denied to this league", ErrForbidden)
	}

	_, member, err := m.teamRepo.GetByOwnerAndLeague(ctx, u.ID, lg.ID)
	if err != nil {
		return league.League{}, fmt.Errorf("get team by owner: %w", err)
	}
	if !member {
		return league.League{}, fmt.Errorf("%w: access denied to this league", ErrForbidden)
	}
	return lg, nil
}
