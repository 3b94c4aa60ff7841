package app

import (
	"context"
	"fmt"

	"github.com/binetime/binetime/internal/config"
	"github.com/binetime/binetime/internal/domain/award"
	"github.com/binetime/binetime/internal/domain/league"
	"github.com/binetime/binetime/internal/domain/team"
	"github.com/binetime/binetime/internal/domain/user"
	cacherepo "github.com/binetime/binetime/internal/infrastructure/repository/cache"
	"github.com/binetime/binetime/internal/infrastructure/repository/memory"
	"github.com/binetime/binetime/internal/infrastructure/repository/postgres"
	"github.com/binetime/binetime/internal/platform/cache"
	"github.com/binetime/binetime/internal/platform/id"
	"github.com/binetime/binetime/internal/platform/logging"
)

type repositories struct {
	users          user.Repository
	leagues        league.Repository
	teams          team.Repository
	awardTypes     award.TypeRepository
	customizations award.CustomizationRepository
	close          func() error
}

// openRepositories picks the storage driver and, when enabled, puts the
// read-mostly league and award type lookups behind a TTL cache.
func openRepositories(ctx context.Context, cfg config.Config, idGen id.Generator, logger *logging.Logger) (repositories, error) {
	var repos repositories

	switch cfg.StorageDriver {
	case config.StorageMemory:
		db := memory.NewDatabase(memory.DefaultSeed(), idGen)
		repos = repositories{
			users:          db.Users(),
			leagues:        db.Leagues(),
			teams:          db.Teams(),
			awardTypes:     db.AwardTypes(),
			customizations: db.AwardCustomizations(),
			close:          func() error { return nil },
		}
		logger.Warn("using in-memory storage; data is lost on restart")
	case config.StoragePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		repos = repositories{
			users:          postgres.NewUserRepository(db),
			leagues:        postgres.NewLeagueRepository(db),
			teams:          postgres.NewTeamRepository(db),
			awardTypes:     postgres.NewAwardTypeRepository(db),
			customizations: postgres.NewAwardCustomizationRepository(db),
			close:          db.Close,
		}
		logger.Info("postgres connected", "db_name", dbNameFromURL(cfg.DBURL))
	default:
		return repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		repos.leagues = cacherepo.NewLeagueRepository(repos.leagues, store)
		repos.awardTypes = cacherepo.NewAwardTypeRepository(repos.awardTypes, store)
	}
	return repos, nil
}
