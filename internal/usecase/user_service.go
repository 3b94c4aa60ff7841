package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/binetime/binetime/internal/domain/league"
	"github.com/binetime/binetime/internal/domain/team"
	"github.com/binetime/binetime/internal/domain/user"
	"github.com/binetime/binetime/internal/platform/id"
)

type UserProfile struct {
	User  user.User
	Teams []team.WithLeague
}

type DefaultProfile struct {
	User   user.User
	Teams  []team.WithLeague
	League league.League
}

type UserService struct {
	userRepo     user.Repository
	teamRepo     team.Repository
	leagueRepo   league.Repository
	idGen        id.Generator
	autoRegister bool
	now          func() time.Time
}

// NewUserService builds the account use cases. With autoRegister off, an
// authenticated caller without an account gets ErrAccountNotFound instead of
// a fresh account.
func NewUserService(
	userRepo user.Repository,
	teamRepo team.Repository,
	leagueRepo league.Repository,
	idGen id.Generator,
	autoRegister bool,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		teamRepo:     teamRepo,
		leagueRepo:   leagueRepo,
		idGen:        idGen,
		autoRegister: autoRegister,
		now:          time.Now,
	}
}

func (s *UserService) CurrentUser(ctx context.Context, principal user.Principal) (UserProfile, error) {
	ctx, span := startSpan(ctx, "usecase.UserService.CurrentUser")
	defer span.End()

	var (
		u   user.User
		err error
	)
	if s.autoRegister {
		u, err = s.EnsureUser(ctx, principal)
	} else {
		u, err = s.registeredUser(ctx, principal)
	}
	if err != nil {
		return UserProfile{}, err
	}

	teams, err := s.teamRepo.ListByOwner(ctx, u.ID)
	if err != nil {
		return UserProfile{}, fmt.Errorf("list teams by owner: %w", err)
	}
	return UserProfile{User: u, Teams: teams}, nil
}

// EnsureUser returns the caller's account, creating it on first sight.
func (s *UserService) EnsureUser(ctx context.Context, principal user.Principal) (user.User, error) {
	email := user.NormalizeEmail(principal.Email)
	if email == "" {
		return user.User{}, fmt.Errorf("%w: user email is required", ErrInvalidInput)
	}

	existing, exists, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by email: %w", err)
	}
	if exists {
		return existing, nil
	}

	userID, err := s.idGen.NewID()
	if err != nil {
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}
	now := s.now().UTC()
	candidate := user.User{
		ID:        userID,
		Email:     email,
		Name:      displayName(principal, email),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := candidate.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.userRepo.Create(ctx, candidate)
	if err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (s *UserService) registeredUser(ctx context.Context, principal user.Principal) (user.User, error) {
	u, exists, err := resolveUser(ctx, s.userRepo, principal)
	if err != nil {
		return user.User{}, err
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: email=%s", ErrAccountNotFound, user.NormalizeEmail(principal.Email))
	}
	return u, nil
}

// DefaultUser returns the seeded demo account and league shown to visitors.
func (s *UserService) DefaultUser(ctx context.Context) (DefaultProfile, error) {
	ctx, span := startSpan(ctx, "usecase.UserService.DefaultUser")
	defer span.End()

	u, exists, err := s.userRepo.GetDefault(ctx)
	if err != nil {
		return DefaultProfile{}, fmt.Errorf("get default user: %w", err)
	}
	if !exists {
		return DefaultProfile{}, fmt.Errorf("%w: default user is not seeded", ErrNotFound)
	}

	lg, exists, err := s.leagueRepo.GetDefault(ctx)
	if err != nil {
		return DefaultProfile{}, fmt.Errorf("get default league: %w", err)
	}
	if !exists {
		return DefaultProfile{}, fmt.Errorf("%w: default league is not seeded", ErrNotFound)
	}

	teams, err := s.teamRepo.ListByOwner(ctx, u.ID)
	if err != nil {
		return DefaultProfile{}, fmt.Errorf("list default user teams: %w", err)
	}
	return DefaultProfile{User: u, Teams: teams, League: lg}, nil
}

// resolveUser maps a principal to its account without creating one.
func resolveUser(ctx context.Context, repo user.Repository, principal user.Principal) (user.User, bool, error) {
	email := user.NormalizeEmail(principal.Email)
	if email == "" {
		return user.User{}, false, fmt.Errorf("%w: user email is required", ErrInvalidInput)
	}
	u, exists, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return user.User{}, false, fmt.Errorf("get user by email: %w", err)
	}
	return u, exists, nil
}

func displayName(principal user.Principal, email string) string {
	if name := strings.TrimSpace(principal.Name); name != "" {
		return name
	}
	return email
}
