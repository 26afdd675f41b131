package container

import (
	"context"
	"fmt"
	"time"

	"authors-backend/internal/config"
	"authors-backend/internal/infrastructure/database"
	"authors-backend/pkg/logger"

	"authors-backend/internal/domains/author"
	authorHandler "authors-backend/internal/domains/author/handler"
	authorRepo "authors-backend/internal/domains/author/repository"
	authorService "authors-backend/internal/domains/author/service"

	"authors-backend/internal/domains/authorinfo"
	infoHandler "authors-backend/internal/domains/authorinfo/handler"
	infoRepo "authors-backend/internal/domains/authorinfo/repository"
	infoService "authors-backend/internal/domains/authorinfo/service"
)

// Container holds the whole dependency graph. Composition is explicit:
// config first, then infrastructure, then repositories, services and
// handlers - each layer constructed with the previous one.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	AuthorRepo    author.Repository
	AuthorService author.Service
	AuthorHandler *authorHandler.AuthorHandler

	AuthorInfoRepo    authorinfo.Repository
	AuthorInfoService authorinfo.Service
	AuthorInfoHandler *infoHandler.AuthorInfoHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	// ========================================
	// STEP 1: CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// ========================================
	// STEP 2: DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)

	connectCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := c.DB.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// ========================================
	// STEP 3: REPOSITORIES
	// ========================================
	c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool)
	c.AuthorInfoRepo = infoRepo.NewPostgresRepository(c.DB.Pool)

	// ========================================
	// STEP 4: SERVICES
	// ========================================
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.AuthorInfoService = infoService.NewAuthorInfoService(c.AuthorInfoRepo)

	// ========================================
	// STEP 5: HANDLERS
	// ========================================
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.AuthorInfoHandler = infoHandler.NewAuthorInfoHandler(c.AuthorInfoService)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases shared resources. Deferred from Serve.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
