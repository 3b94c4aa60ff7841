package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/binetime/binetime/internal/domain/award"
	"github.com/binetime/binetime/internal/domain/league"
	"github.com/binetime/binetime/internal/domain/team"
	"github.com/binetime/binetime/internal/domain/user"
	"github.com/binetime/binetime/internal/platform/id"
)

type CustomizeAwardInput struct {
	LeagueID    string
	AwardTypeID string
	CustomName  string
	CustomIcon  string
}

// LeagueAwardSettings is a league's effective award configs plus its raw
// customization rows.
type LeagueAwardSettings struct {
	Configs        []award.Config
	Customizations []award.Customization
}

type AwardConfigService struct {
	typeRepo   award.TypeRepository
	customRepo award.CustomizationRepository
	members    membership
	idGen      id.Generator
	onChange   func(ctx context.Context, leagueID string)
	now        func() time.Time
}

func NewAwardConfigService(
	typeRepo award.TypeRepository,
	customRepo award.CustomizationRepository,
	userRepo user.Repository,
	teamRepo team.Repository,
	leagueRepo league.Repository,
	idGen id.Generator,
) *AwardConfigService {
	return &AwardConfigService{
		typeRepo:   typeRepo,
		customRepo: customRepo,
		members:    membership{userRepo: userRepo, teamRepo: teamRepo, leagueRepo: leagueRepo},
		idGen:      idGen,
		now:        time.Now,
	}
}

// OnChange registers a hook run after a league's award configuration changes.
func (s *AwardConfigService) OnChange(fn func(ctx context.Context, leagueID string)) {
	s.onChange = fn
}

// ConfigsForLeague resolves every award type against the league's active
// customizations, in catalog order.
func (s *AwardConfigService) ConfigsForLeague(ctx context.Context, leagueID string) ([]award.Config, error) {
	ctx, span := startSpan(ctx, "usecase.AwardConfigService.ConfigsForLeague")
	defer span.End()

	types, err := s.types(ctx)
	if err != nil {
		return nil, err
	}
	customs, err := s.customRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list award customizations: %w", err)
	}
	return orderedConfigs(types, award.Configs(types, customs)), nil
}

func (s *AwardConfigService) DefaultConfigs(ctx context.Context) ([]award.Config, error) {
	types, err := s.types(ctx)
	if err != nil {
		return nil, err
	}
	return orderedConfigs(types, award.Configs(types, nil)), nil
}

// LeagueConfigs is ConfigsForLeague for league members only.
func (s *AwardConfigService) LeagueConfigs(ctx context.Context, principal user.Principal, leagueID string) ([]award.Config, error) {
	lg, err := s.members.require(ctx, principal, leagueID)
	if err != nil {
		return nil, err
	}
	return s.ConfigsForLeague(ctx, lg.ID)
}

func (s *AwardConfigService) LeagueSettings(ctx context.Context, principal user.Principal, leagueID string) (LeagueAwardSettings, error) {
	lg, err := s.members.require(ctx, principal, leagueID)
	if err != nil {
		return LeagueAwardSettings{}, err
	}
	configs, err := s.ConfigsForLeague(ctx, lg.ID)
	if err != nil {
		return LeagueAwardSettings{}, err
	}
	customs, err := s.customRepo.ListByLeague(ctx, lg.ID)
	if err != nil {
		return LeagueAwardSettings{}, fmt.Errorf("list award customizations: %w", err)
	}
	return LeagueAwardSettings{Configs: configs, Customizations: customs}, nil
}

// Customize creates or replaces the league's override for one award and
// marks it active.
func (s *AwardConfigService) Customize(ctx context.Context, principal user.Principal, input CustomizeAwardInput) (award.Customization, error) {
	ctx, span := startSpan(ctx, "usecase.AwardConfigService.Customize")
	defer span.End()

	input.AwardTypeID = strings.TrimSpace(input.AwardTypeID)
	input.CustomName = strings.TrimSpace(input.CustomName)
	input.CustomIcon = strings.TrimSpace(input.CustomIcon)
	if input.AwardTypeID == "" || input.CustomName == "" {
		return award.Customization{}, fmt.Errorf("%w: award type id and custom name are required", ErrInvalidInput)
	}

	lg, err := s.members.require(ctx, principal, input.LeagueID)
	if err != nil {
		return award.Customization{}, err
	}
	if err := s.requireType(ctx, award.ID(input.AwardTypeID)); err != nil {
		return award.Customization{}, err
	}

	customID, err := s.idGen.NewID()
	if err != nil {
		return award.Customization{}, fmt.Errorf("generate customization id: %w", err)
	}
	now := s.now().UTC()
	saved, err := s.customRepo.Upsert(ctx, award.Customization{
		ID:          customID,
		LeagueID:    lg.ID,
		AwardTypeID: award.ID(input.AwardTypeID),
		CustomName:  input.CustomName,
		CustomIcon:  input.CustomIcon,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return award.Customization{}, fmt.Errorf("upsert award customization: %w", err)
	}
	s.changed(ctx, lg.ID)
	return saved, nil
}

// Disable deactivates the league's override so the award shows its catalog
// name and icon again.
func (s *AwardConfigService) Disable(ctx context.Context, principal user.Principal, leagueID, awardTypeID string) (award.Customization, error) {
	ctx, span := startSpan(ctx, "usecase.AwardConfigService.Disable")
	defer span.End()

	awardTypeID = strings.TrimSpace(awardTypeID)
	if awardTypeID == "" {
		return award.Customization{}, fmt.Errorf("%w: award type id is required", ErrInvalidInput)
	}
	lg, err := s.members.require(ctx, principal, leagueID)
	if err != nil {
		return award.Customization{}, err
	}
	if err := s.requireType(ctx, award.ID(awardTypeID)); err != nil {
		return award.Customization{}, err
	}

	saved, err := s.customRepo.Deactivate(ctx, lg.ID, award.ID(awardTypeID))
	if err != nil {
		return award.Customization{}, fmt.Errorf("deactivate award customization: %w", err)
	}
	s.changed(ctx, lg.ID)
	return saved, nil
}

func (s *AwardConfigService) types(ctx context.Context) ([]award.Type, error) {
	types, err := s.typeRepo.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list award types: %w", err)
	}
	return types, nil
}

func (s *AwardConfigService) requireType(ctx context.Context, typeID award.ID) error {
	_, exists, err := s.typeRepo.GetType(ctx, typeID)
	if err != nil {
		return fmt.Errorf("get award type: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: award type=%s", ErrNotFound, typeID)
	}
	return nil
}

func (s *AwardConfigService) changed(ctx context.Context, leagueID string) {
	if s.onChange != nil {
		s.onChange(ctx, leagueID)
	}
}

func orderedConfigs(types []award.Type, byID map[award.ID]award.Config) []award.Config {
	sorted := append([]award.Type(nil), types...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SortOrder < sorted[j].SortOrder })

	out := make([]award.Config, 0, len(sorted))
	for _, t := range sorted {
		out = append(out, byID[t.ID])
	}
	return out
}
