package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/wordle-teams/internal/config"
	"github.com/riskibarqy/wordle-teams/internal/domain/player"
	"github.com/riskibarqy/wordle-teams/internal/domain/score"
	"github.com/riskibarqy/wordle-teams/internal/domain/team"
	"github.com/riskibarqy/wordle-teams/internal/infrastructure/account"
	cacherepo "github.com/riskibarqy/wordle-teams/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/wordle-teams/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/wordle-teams/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/wordle-teams/internal/interfaces/httpapi"
	platformcache "github.com/riskibarqy/wordle-teams/internal/platform/cache"
	idgen "github.com/riskibarqy/wordle-teams/internal/platform/id"
	"github.com/riskibarqy/wordle-teams/internal/platform/resilience"
	"github.com/riskibarqy/wordle-teams/internal/usecase"
)

// Application bundles the wired HTTP server with the background pieces
// main has to own: the board warmer and the database handle.
type Application struct {
	Server *http.Server
	Warm   *usecase.WarmService

	db     *sqlx.DB
	logger *slog.Logger
}

func New(cfg config.Config, logger *slog.Logger) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var (
		db         *sqlx.DB
		teamRepo   team.Repository
		playerRepo player.Repository
		scoreRepo  score.Repository
	)
	if cfg.DBURL != "" {
		var err error
		db, err = openDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		teamRepo = postgres.NewTeamRepository(db)
		playerRepo = postgres.NewPlayerRepository(db)
		scoreRepo = postgres.NewScoreRepository(db)
		logger.Info("repositories ready", "backend", "postgres", "db", dbNameFromURL(cfg.DBURL))
	} else {
		teamRepo = memory.NewTeamRepository(memory.SeedTeams())
		playerRepo = memory.NewPlayerRepository(memory.SeedPlayers())
		scoreRepo = memory.NewScoreRepository(memory.SeedScores())
		logger.Info("repositories ready", "backend", "memory", "seeded", true)
	}

	if cfg.CacheEnabled {
		repoCache := platformcache.NewStore(cfg.CacheTTL)
		teamRepo = cacherepo.NewTeamRepository(teamRepo, repoCache)
		playerRepo = cacherepo.NewPlayerRepository(playerRepo, repoCache)
		scoreRepo = cacherepo.NewScoreRepository(scoreRepo, repoCache)
	}

	boardMemo := platformcache.NewStore(cfg.CacheTTL)
	boardSvc := usecase.NewBoardService(teamRepo, playerRepo, scoreRepo, boardMemo, cfg.MaxGuesses, nil)
	teamSvc := usecase.NewTeamService(teamRepo, playerRepo, idgen.NewRandomGenerator(), boardSvc, nil)
	scoreSvc := usecase.NewScoreService(scoreRepo, teamRepo, idgen.NewRandomGenerator(), boardSvc, cfg.MaxGuesses, nil)

	var warmSvc *usecase.WarmService
	if cfg.WarmEnabled {
		warmSvc = usecase.NewWarmService(teamRepo, boardSvc, cfg.WarmWorkers, cfg.WarmInterval, nil)
	}

	verifier := account.NewClient(account.ClientConfig{
		BaseURL:        cfg.AccountBaseURL,
		IntrospectPath: cfg.AccountIntrospectPath,
		Timeout:        cfg.AccountTimeout,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AccountCircuitEnabled,
			FailureThreshold: cfg.AccountCircuitFailureCount,
			OpenTimeout:      cfg.AccountCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AccountCircuitHalfOpenMaxReq,
		},
	}, logger)

	handler := httpapi.NewHandler(teamSvc, scoreSvc, boardSvc, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Application{
		Server: server,
		Warm:   warmSvc,
		db:     db,
		logger: logger,
	}, nil
}

func (a *Application) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}
