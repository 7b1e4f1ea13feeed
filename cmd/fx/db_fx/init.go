package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/config"
	"tripmate/internal/infra"
	"tripmate/internal/repositories"
)

var Module = fx.Provide(
	provideDB, provideHistoryRepo)

func provideDB(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg.PostgresURL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db, nil
}

func provideHistoryRepo(db *gorm.DB) repositories.IHistoryRepository {
	return repositories.NewHistoryRepository(db)
}
