package infra

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tripmate/internal/models/db_models"
)

var ErrMissingDSN = errors.New("POSTGRES_URL is not set")

// InitPostgresql opens the connection pool and migrates the history tables.
func InitPostgresql(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Error().Err(err).Msg("error connecting to database")
		return nil, err
	}

	if err := connectionPool.AutoMigrate(db_models.AllModels()...); err != nil {
		log.Error().Err(err).Msg("error migrating history tables")
		return nil, err
	}

	log.Info().Msg("PostgreSQL connected")
	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("error closing database connection")
	} else {
		log.Info().Msg("PostgreSQL database connection closed successfully")
	}
}
