package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/binetime/binetime/internal/domain/team"
	"github.com/binetime/binetime/internal/domain/user"
	"github.com/binetime/binetime/internal/infrastructure/repository/memory"
	teammock "github.com/binetime/binetime/internal/mocks/domain/team"
	usermock "github.com/binetime/binetime/internal/mocks/domain/user"
)

func TestUserService_CurrentUser_AccountNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userRepo := usermock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	service := NewUserService(userRepo, teamRepo, nil, &sequenceIDs{prefix: "user"}, false)

	userRepo.
		On("GetByEmail", mock.Anything, "stranger@example.com").
		Return(user.User{}, false, nil).
		Once()

	_, err := service.CurrentUser(ctx, user.Principal{Email: " Stranger@Example.com "})
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestUserService_CurrentUser_ReturnsTeamsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userRepo := usermock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	service := NewUserService(userRepo, teamRepo, nil, &sequenceIDs{prefix: "user"}, false)

	existing := user.User{ID: "user-1", Email: "owner@example.com", Name: "Owner"}
	userRepo.
		On("GetByEmail", mock.Anything, "owner@example.com").
		Return(existing, true, nil).
		Once()
	teamRepo.
		On("ListByOwner", mock.Anything, "user-1").
		Return([]team.WithLeague{{Team: team.Team{ID: "team-1", OwnerID: "user-1"}}}, nil).
		Once()

	profile, err := service.CurrentUser(ctx, user.Principal{Email: "owner@example.com"})
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if profile.User.ID != "user-1" || len(profile.Teams) != 1 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestUserService_CurrentUser_AutoRegisters(t *testing.T) {
	t.Parallel()

	db := memory.NewDatabase(memory.DefaultSeed(), nil)
	service := NewUserService(db.Users(), db.Teams(), db.Leagues(), &sequenceIDs{prefix: "user"}, true)

	profile, err := service.CurrentUser(t.Context(), user.Principal{Email: "New@Example.com"})
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if profile.User.ID != "user-1" {
		t.Fatalf("unexpected user id: %s", profile.User.ID)
	}
	if profile.User.Email != "new@example.com" || profile.User.Name != "new@example.com" {
		t.Fatalf("expected normalized email as name, got %+v", profile.User)
	}
	if len(profile.Teams) != 0 {
		t.Fatalf("expected no teams, got %d", len(profile.Teams))
	}

	again, err := service.EnsureUser(t.Context(), user.Principal{Email: "new@example.com", Name: "Later Name"})
	if err != nil {
		t.Fatalf("ensure user: %v", err)
	}
	if again.ID != profile.User.ID {
		t.Fatalf("expected existing user, got %s", again.ID)
	}
}

func TestUserService_EnsureUser_RequiresEmail(t *testing.T) {
	t.Parallel()

	db := memory.NewDatabase(memory.DefaultSeed(), nil)
	service := NewUserService(db.Users(), db.Teams(), db.Leagues(), &sequenceIDs{prefix: "user"}, true)

	if _, err := service.EnsureUser(t.Context(), user.Principal{Name: "No Email"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_DefaultUser(t *testing.T) {
	t.Parallel()

	db := memory.NewDatabase(memory.DefaultSeed(), nil)
	service := NewUserService(db.Users(), db.Teams(), db.Leagues(), &sequenceIDs{prefix: "user"}, false)

	profile, err := service.DefaultUser(t.Context())
	if err != nil {
		t.Fatalf("default user: %v", err)
	}
	if profile.User.ID != memory.DefaultUserID {
		t.Fatalf("unexpected default user: %s", profile.User.ID)
	}
	if profile.League.SleeperLeagueID != memory.SleeperLeagueIDBineToShrine {
		t.Fatalf("unexpected default league: %+v", profile.League)
	}
	if len(profile.Teams) != 2 {
		t.Fatalf("expected 2 seeded teams, got %d", len(profile.Teams))
	}
}
