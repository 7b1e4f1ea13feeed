package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
	"tripmate/pkg/utils"
)

// HistoryRecord is a pointer to one of the db_models history rows.
type HistoryRecord interface {
	TableName() string
	RecordID() uuid.UUID
}

// IHistoryRepository is an append-only store: rows are created and listed, never updated.
type IHistoryRepository interface {
	Create(ctx context.Context, record HistoryRecord) (uuid.UUID, error)
	FindHistoryByUserId(ctx context.Context, userID string) (*db_models.History, error)
}

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) IHistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Create(ctx context.Context, record HistoryRecord) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return uuid.Nil, utils.Classify(utils.ErrDatabaseError, errors.Wrapf(err, "insert into %s", record.TableName()))
	}
	return record.RecordID(), nil
}

func (r *HistoryRepository) FindHistoryByUserId(ctx context.Context, userID string) (*db_models.History, error) {
	history := &db_models.History{}
	g, gctx := errgroup.WithContext(ctx)

	byUser := func(dest interface{}) func() error {
		return func() error {
			return r.db.WithContext(gctx).
				Where("user_id = ?", userID).
				Order("created_at DESC").
				Find(dest).Error
		}
	}
	tripsOfType := func(dest *[]db_models.Trip, tripType db_models.TripType) func() error {
		return func() error {
			return r.db.WithContext(gctx).
				Where("user_id = ? AND type = ?", userID, tripType).
				Order("created_at DESC").
				Find(dest).Error
		}
	}

	g.Go(byUser(&history.QuickTrips))
	g.Go(tripsOfType(&history.BudgetTrips, db_models.TripTypeBudgetOptimiser))
	g.Go(tripsOfType(&history.ComprehensiveTrips, db_models.TripTypeComprehensive))
	g.Go(tripsOfType(&history.DailyBudgetTrips, db_models.TripTypeDailyBudget))
	g.Go(byUser(&history.VisaQueries))
	g.Go(byUser(&history.PackingQueries))
	g.Go(byUser(&history.FlightSearches))
	g.Go(byUser(&history.WeatherLogs))
	g.Go(byUser(&history.CityReviews))

	if err := g.Wait(); err != nil {
		return nil, utils.Classify(utils.ErrDatabaseError, errors.Wrap(err, "load search history"))
	}
	return history, nil
}
