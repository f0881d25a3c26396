package store

import (
	"database/sql"

	"github.com/avelkin/courses-api/internal/logger"
	"github.com/avelkin/courses-api/migrations"
)

type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify maps a driver error onto an [ErrorClassification].
// A nil classifier (as in sqlite or some tests) reports NonRetryable.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
