package commands

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"userposts-api/internal/config"
)

// getDB opens the configured database: Postgres when DATABASE_URL is set,
// otherwise a local sqlite file.
func getDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(cfg.SqlitePath), &gorm.Config{})
}
