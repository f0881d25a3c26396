package store

import (
	"context"
	"fmt"

	"github.com/avelkin/courses-api/internal/config"
	"github.com/avelkin/courses-api/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository   UserRepository
	CourseRepository CourseRepository
}

// NewStorages connects to the configured database, applies pending
// migrations and constructs the repositories.
//
// The driver comes from cfg.DB.Driver: "pgx" for PostgreSQL (the default)
// or "sqlite3" for a local file-backed database.
func NewStorages(ctx context.Context, cfg config.Storage, appCfg config.App, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, err
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, appCfg.CaseInsensitiveEmail, log),
		CourseRepository: NewCourseRepository(db, log),
	}, nil
}
