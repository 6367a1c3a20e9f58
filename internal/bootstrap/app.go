package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-store/internal/resumes"
	"resume-store/internal/services/health"
	"resume-store/internal/shared/config"
	"resume-store/internal/shared/server"
	"resume-store/internal/shared/storage/db"
	"resume-store/internal/shared/storage/object"
	localstore "resume-store/internal/shared/storage/object/local"
)

// App holds shared dependencies, constructed once at process start and
// passed to handlers by injection.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Store          object.FileStore
	ResumesRepo    resumes.Repo
	ResumesService *resumes.Service
	ResumesHandler *resumes.Handler
	HealthService  *health.Service
}

// Build prepares shared dependencies and wires routes. A missing or
// unreachable database is fatal outside dev-like environments.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := localstore.New(cfg.DataDir)

	var repo resumes.Repo
	if sqlDB != nil {
		repo = &resumes.PGRepo{DB: sqlDB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	svc := &resumes.Service{Repo: repo, Store: store}
	handler := resumes.NewHandler(svc)
	healthSvc := health.NewService(sqlDB)

	app := &App{
		Config:         cfg,
		DB:             sqlDB,
		Store:          store,
		ResumesRepo:    repo,
		ResumesService: svc,
		ResumesHandler: handler,
		HealthService:  healthSvc,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:  cfg,
		Resumes: handler,
		Health:  healthSvc,
	})

	return app, nil
}

// Close releases process-wide resources.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
