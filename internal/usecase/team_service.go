package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/binetime/binetime/internal/domain/team"
	"github.com/binetime/binetime/internal/domain/user"
)

type ActiveTeam struct {
	Active *team.WithLeague
	All    []team.WithLeague
}

type TeamService struct {
	userRepo user.Repository
	teamRepo team.Repository
}

func NewTeamService(userRepo user.Repository, teamRepo team.Repository) *TeamService {
	return &TeamService{userRepo: userRepo, teamRepo: teamRepo}
}

func (s *TeamService) ListMine(ctx context.Context, principal user.Principal) ([]team.WithLeague, error) {
	ctx, span := startSpan(ctx, "usecase.TeamService.ListMine")
	defer span.End()

	owner, err := s.owner(ctx, principal)
	if err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("list teams by owner: %w", err)
	}
	return teams, nil
}

// GetMine hides other users' teams behind ErrNotFound.
func (s *TeamService) GetMine(ctx context.Context, principal user.Principal, teamID string) (team.WithLeague, error) {
	ctx, span := startSpan(ctx, "usecase.TeamService.GetMine")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.WithLeague{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	owner, err := s.owner(ctx, principal)
	if err != nil {
		return team.WithLeague{}, err
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.WithLeague{}, fmt.Errorf("get team: %w", err)
	}
	if !exists || t.OwnerID != owner.ID {
		return team.WithLeague{}, fmt.Errorf("%w: team not found or access denied", ErrNotFound)
	}
	return t, nil
}

// ActiveTeam resolves the preferred team id (from the client cookie) against
// the caller's teams, falling back to their first team.
func (s *TeamService) ActiveTeam(ctx context.Context, principal user.Principal, preferredID string) (ActiveTeam, error) {
	teams, err := s.ListMine(ctx, principal)
	if err != nil {
		return ActiveTeam{}, err
	}

	out := ActiveTeam{All: teams}
	preferredID = strings.TrimSpace(preferredID)
	for i := range teams {
		if preferredID != "" && teams[i].ID == preferredID {
			out.Active = &teams[i]
			return out, nil
		}
	}
	if len(teams) > 0 {
		out.Active = &teams[0]
	}
	return out, nil
}

func (s *TeamService) SetActiveTeam(ctx context.Context, principal user.Principal, teamID string) (team.WithLeague, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.WithLeague{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	teams, err := s.ListMine(ctx, principal)
	if err != nil {
		return team.WithLeague{}, err
	}
	for _, t := range teams {
		if t.ID == teamID {
			return t, nil
		}
	}
	return team.WithLeague{}, fmt.Errorf("%w: team not found or you do not own this team", ErrNotFound)
}

func (s *TeamService) owner(ctx context.Context, principal user.Principal) (user.User, error) {
	u, exists, err := resolveUser(ctx, s.userRepo, principal)
	if err != nil {
		return user.User{}, err
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: email=%s", ErrAccountNotFound, user.NormalizeEmail(principal.Email))
	}
	return u, nil
}
