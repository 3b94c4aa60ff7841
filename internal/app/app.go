// Package app wires configuration, storage, upstream clients and the HTTP
// surface into a runnable process.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/binetime/binetime/external/anubis"
	"github.com/binetime/binetime/external/sleeperapi"
	"github.com/binetime/binetime/internal/config"
	"github.com/binetime/binetime/internal/interfaces/httpapi"
	"github.com/binetime/binetime/internal/platform/cache"
	"github.com/binetime/binetime/internal/platform/id"
	"github.com/binetime/binetime/internal/platform/logging"
	"github.com/binetime/binetime/internal/usecase"
)

// Runtime owns everything the api process starts and must stop.
type Runtime struct {
	Server   *http.Server
	Awards   *usecase.AwardService
	schedule *RefreshSchedule
	closers  []func() error
	logger   *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	idGen := id.NewUUIDGenerator()
	repos, err := openRepositories(ctx, cfg, idGen, logger)
	if err != nil {
		return nil, err
	}

	sleeperClient := sleeperapi.NewClient(sleeperapi.ClientConfig{
		BaseURL:        cfg.SleeperBaseURL,
		Timeout:        cfg.SleeperTimeout,
		MaxRetries:     cfg.SleeperMaxRetries,
		RetryBackoff:   cfg.SleeperRetryBackoff,
		Workers:        cfg.SleeperFetchWorkers,
		Logger:         logger,
		CircuitBreaker: cfg.SleeperCircuit,
	})
	anubisClient := anubis.NewClient(anubis.ClientConfig{
		BaseURL:        cfg.AnubisBaseURL,
		IntrospectPath: cfg.AnubisIntrospectPath,
		AdminKey:       cfg.AnubisAdminKey,
		Timeout:        cfg.AnubisTimeout,
		CacheTTL:       cfg.AnubisCacheTTL,
		CircuitBreaker: cfg.AnubisCircuit,
		Logger:         logger,
	})

	userSvc := usecase.NewUserService(repos.users, repos.teams, repos.leagues, idGen, cfg.AccountAutoRegister)
	teamSvc := usecase.NewTeamService(repos.users, repos.teams)
	leagueSvc := usecase.NewLeagueService(repos.leagues, repos.teams, userSvc, sleeperClient, idGen, cfg.SleeperDefaultLeagueID)
	configSvc := usecase.NewAwardConfigService(repos.awardTypes, repos.customizations, repos.users, repos.teams, repos.leagues, idGen)
	awardSvc := usecase.NewAwardService(
		repos.leagues,
		repos.teams,
		repos.users,
		configSvc,
		sleeperClient,
		cache.NewStore(cfg.AwardsCacheTTL),
		usecase.AwardServiceConfig{Weeks: cfg.SleeperSeasonWeeks, Logger: logger},
	)
	configSvc.OnChange(awardSvc.Invalidate)

	handler := httpapi.NewHandler(userSvc, teamSvc, leagueSvc, configSvc, awardSvc, cfg.ActiveTeamCookieSecure, logger)
	router := httpapi.NewRouter(handler, anubisClient, logger, cfg.CORSAllowedOrigins)

	rt := &Runtime{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Awards:  awardSvc,
		closers: []func() error{repos.close},
		logger:  logger,
	}

	if cfg.AwardsRefreshEnabled {
		schedule, err := NewRefreshSchedule(awardSvc, cfg.AwardsRefreshTimezone, logger)
		if err != nil {
			_ = repos.close()
			return nil, err
		}
		rt.schedule = schedule
	}
	return rt, nil
}

// Start begins background jobs. The caller runs Server.ListenAndServe.
func (rt *Runtime) Start() {
	if rt.schedule == nil {
		return
	}
	rt.schedule.Start()
	if next, ok := rt.schedule.NextRun(); ok {
		rt.logger.Info("award refresh scheduled", "next_run", next)
	}
}

func (rt *Runtime) Shutdown(ctx context.Context) error {
	var errs []error
	if err := rt.Server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if rt.schedule != nil {
		if err := rt.schedule.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop award refresh: %w", err))
		}
	}
	for _, closeFn := range rt.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
