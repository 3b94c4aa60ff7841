package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/binetime/binetime/internal/domain/award"
	"github.com/binetime/binetime/internal/domain/user"
	"github.com/binetime/binetime/internal/infrastructure/repository/memory"
	awardmock "github.com/binetime/binetime/internal/mocks/domain/award"
)

func newAwardConfigFixture(t *testing.T) (*AwardConfigService, *memory.Database) {
	t.Helper()

	db := memory.NewDatabase(memory.DefaultSeed(), nil)
	if _, err := db.Users().Create(t.Context(), user.User{ID: "user-outsider", Email: "outsider@example.com"}); err != nil {
		t.Fatalf("create outsider: %v", err)
	}
	service := NewAwardConfigService(db.AwardTypes(), db.AwardCustomizations(), db.Users(), db.Teams(), db.Leagues(), &sequenceIDs{prefix: "custom"})
	return service, db
}

func configByID(configs []award.Config, id award.ID) (award.Config, bool) {
	for _, cfg := range configs {
		if cfg.ID == id {
			return cfg, true
		}
	}
	return award.Config{}, false
}

func TestAwardConfigService_DefaultConfigs(t *testing.T) {
	t.Parallel()

	service, _ := newAwardConfigFixture(t)
	configs, err := service.DefaultConfigs(t.Context())
	if err != nil {
		t.Fatalf("default configs: %v", err)
	}
	if len(configs) != 13 {
		t.Fatalf("expected 13 configs, got %d", len(configs))
	}
	if configs[0].ID != award.FewestPointsAgainst || configs[0].Name != "The Easy Day" {
		t.Fatalf("unexpected first config: %+v", configs[0])
	}
	for _, cfg := range configs {
		if cfg.Customized {
			t.Fatalf("default config should not be customized: %+v", cfg)
		}
	}
}

func TestAwardConfigService_CustomizeAndDisable(t *testing.T) {
	t.Parallel()

	service, _ := newAwardConfigFixture(t)
	ctx := t.Context()

	var changed []string
	service.OnChange(func(_ context.Context, leagueID string) { changed = append(changed, leagueID) })

	saved, err := service.Customize(ctx, demoPrincipal, CustomizeAwardInput{
		LeagueID:    memory.LeagueIDBineToShrine,
		AwardTypeID: string(award.MostConsistent),
		CustomName:  "  Steady Pour  ",
	})
	if err != nil {
		t.Fatalf("customize: %v", err)
	}
	if !saved.IsActive || saved.CustomName != "Steady Pour" {
		t.Fatalf("unexpected customization: %+v", saved)
	}

	configs, err := service.ConfigsForLeague(ctx, memory.LeagueIDBineToShrine)
	if err != nil {
		t.Fatalf("configs: %v", err)
	}
	cfg, _ := configByID(configs, award.MostConsistent)
	if cfg.Name != "Steady Pour" || !cfg.Customized {
		t.Fatalf("expected custom name, got %+v", cfg)
	}
	defaults, _ := service.DefaultConfigs(ctx)
	def, _ := configByID(defaults, award.MostConsistent)
	if cfg.Icon != def.Icon {
		t.Fatalf("empty custom icon should keep default %q, got %q", def.Icon, cfg.Icon)
	}

	disabled, err := service.Disable(ctx, demoPrincipal, memory.LeagueIDBineToShrine, string(award.MostConsistent))
	if err != nil {
		t.Fatalf("disable: %v", err)
	}
	if disabled.IsActive {
		t.Fatalf("expected inactive customization")
	}

	configs, err = service.ConfigsForLeague(ctx, memory.LeagueIDBineToShrine)
	if err != nil {
		t.Fatalf("configs after disable: %v", err)
	}
	cfg, _ = configByID(configs, award.MostConsistent)
	if cfg.Name != def.Name || cfg.Customized {
		t.Fatalf("expected default after disable, got %+v", cfg)
	}

	settings, err := service.LeagueSettings(ctx, demoPrincipal, memory.LeagueIDBineToShrine)
	if err != nil {
		t.Fatalf("league settings: %v", err)
	}
	if len(settings.Customizations) != 1 || settings.Customizations[0].CustomName != "Steady Pour" {
		t.Fatalf("expected kept inactive row, got %+v", settings.Customizations)
	}
	if len(changed) != 2 {
		t.Fatalf("expected two change notifications, got %v", changed)
	}
}

func TestAwardConfigService_Rejects(t *testing.T) {
	t.Parallel()

	service, _ := newAwardConfigFixture(t)
	ctx := t.Context()
	outsider := user.Principal{Email: "outsider@example.com"}

	tests := []struct {
		name      string
		principal user.Principal
		input     CustomizeAwardInput
		want      error
	}{
		{
			name:      "missing name",
			principal: demoPrincipal,
			input:     CustomizeAwardInput{LeagueID: memory.LeagueIDSandbox, AwardTypeID: string(award.MostConsistent)},
			want:      ErrInvalidInput,
		},
		{
			name:      "not a member",
			principal: outsider,
			input:     CustomizeAwardInput{LeagueID: memory.LeagueIDSandbox, AwardTypeID: string(award.MostConsistent), CustomName: "x"},
			want:      ErrForbidden,
		},
		{
			name:      "unknown account",
			principal: user.Principal{Email: "ghost@example.com"},
			input:     CustomizeAwardInput{LeagueID: memory.LeagueIDSandbox, AwardTypeID: string(award.MostConsistent), CustomName: "x"},
			want:      ErrForbidden,
		},
		{
			name:      "unknown league",
			principal: demoPrincipal,
			input:     CustomizeAwardInput{LeagueID: "missing", AwardTypeID: string(award.MostConsistent), CustomName: "x"},
			want:      ErrNotFound,
		},
		{
			name:      "unknown award",
			principal: demoPrincipal,
			input:     CustomizeAwardInput{LeagueID: memory.LeagueIDSandbox, AwardTypeID: "mostHops", CustomName: "x"},
			want:      ErrNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.Customize(ctx, tc.principal, tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := service.LeagueConfigs(ctx, outsider, memory.LeagueIDSandbox); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for outsider configs, got %v", err)
	}
}

func TestAwardConfigService_ConfigsForLeague_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	typeRepo := awardmock.NewTypeRepository(t)
	customRepo := awardmock.NewCustomizationRepository(t)
	service := NewAwardConfigService(typeRepo, customRepo, nil, nil, nil, nil)

	typeRepo.
		On("ListTypes", mock.Anything).
		Return(award.DefaultTypes(), nil).
		Once()
	customRepo.
		On("ListByLeague", mock.Anything, "league-1").
		Return(nil, errors.New("connection reset")).
		Once()

	if _, err := service.ConfigsForLeague(ctx, "league-1"); err == nil {
		t.Fatalf("expected repository error")
	}
}
