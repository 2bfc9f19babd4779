package app

import (
	"context"
	"log"
	"os"
	"time"

	"balikerja/internal/config"
	"balikerja/internal/database"
	dbpostgres "balikerja/internal/database/postgres"
	"balikerja/internal/infrastructure/cache"
	"balikerja/internal/pkg/jwt"
	"balikerja/internal/repository"
	"balikerja/internal/usecase"
	"balikerja/internal/ws"
)

// Container owns every long-lived dependency: the pool, the cache client,
// the hub, and the wired usecases on top of them.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	JWT   jwt.Service
	Hub   *ws.Hub

	Jobs         repository.JobRepository
	Workers      repository.WorkerRepository
	Applications repository.ApplicationRepository
	Ledger       repository.LedgerRepository

	Matching            usecase.MatchingUsecase
	JobWorkflow         usecase.JobUsecase
	ApplicationWorkflow usecase.ApplicationUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn)
	hub := ws.NewHub(logger)

	jobs := repository.NewPostgresJobRepository(db)
	workers := repository.NewPostgresWorkerRepository(db)
	applications := repository.NewPostgresApplicationRepository(db)
	ledger := repository.NewPostgresLedgerRepository(db)

	notifier := ws.NewNotifier(hub)

	return &Container{
		Config: cfg,
		Logger: logger,

		DB:    db,
		Cache: redisCache,
		JWT:   jwtSvc,
		Hub:   hub,

		Jobs:         jobs,
		Workers:      workers,
		Applications: applications,
		Ledger:       ledger,

		Matching:            usecase.NewMatchingUsecase(jobs, workers, applications, redisCache, cfg.Redis.TTL),
		JobWorkflow:         usecase.NewJobWorkflow(jobs),
		ApplicationWorkflow: usecase.NewApplicationWorkflow(jobs, applications, ledger, notifier, redisCache),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
