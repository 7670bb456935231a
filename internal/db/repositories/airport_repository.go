package repositories

import (
	"context"
	"fmt"
	"strings"

	gormModels "skydesk/aerodrome/internal/models/gorm"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortColumns is the set of real columns on the airports table. Sort
// parameters are checked against it before reaching ORDER BY.
var sortColumns = map[string]bool{
	"icao":      true,
	"iata":      true,
	"name":      true,
	"city":      true,
	"state":     true,
	"country":   true,
	"elevation": true,
	"lat":       true,
	"lon":       true,
	"tz":        true,
}

// AirportRepository handles airport table operations
type AirportRepository struct {
	db *gormlib.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gormlib.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// FindByICAO finds an airport by ICAO code; (nil, nil) when absent
func (r *AirportRepository) FindByICAO(ctx context.Context, icao string) (*gormModels.Airport, error) {
	var airport gormModels.Airport

	err := r.db.WithContext(ctx).
		Where("icao = ?", icao).
		First(&airport).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch airport: %w", err)
	}

	return &airport, nil
}

// ExistsByICAO reports whether a record with the given key exists
func (r *AirportRepository) ExistsByICAO(ctx context.Context, icao string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.Airport{}).
		Where("icao = ?", icao).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check airport existence: %w", err)
	}
	return count > 0, nil
}

// Create inserts a single airport record
func (r *AirportRepository) Create(ctx context.Context, airport *gormModels.Airport) error {
	if err := r.db.WithContext(ctx).Create(airport).Error; err != nil {
		return fmt.Errorf("failed to insert airport: %w", err)
	}
	return nil
}

// DeleteByICAO removes the record with the given key
func (r *AirportRepository) DeleteByICAO(ctx context.Context, icao string) error {
	err := r.db.WithContext(ctx).
		Where("icao = ?", icao).
		Delete(&gormModels.Airport{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete airport: %w", err)
	}
	return nil
}

// FindAll returns all airports, sorted by the given column when sortBy is
// non-empty, in store-native order otherwise.
func (r *AirportRepository) FindAll(ctx context.Context, sortBy string) ([]gormModels.Airport, error) {
	query := r.db.WithContext(ctx)
	if sortBy != "" {
		if !sortColumns[sortBy] {
			return nil, fmt.Errorf("unknown sort column: %s", sortBy)
		}
		query = query.Order(sortBy)
	}

	var airports []gormModels.Airport
	if err := query.Find(&airports).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch airports: %w", err)
	}
	return airports, nil
}

// FindPage returns one zero-based page of the sorted listing plus the
// total record count.
func (r *AirportRepository) FindPage(ctx context.Context, page, size int, sortBy string) ([]gormModels.Airport, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&gormModels.Airport{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count airports: %w", err)
	}

	query := r.db.WithContext(ctx)
	if sortBy != "" {
		if !sortColumns[sortBy] {
			return nil, 0, fmt.Errorf("unknown sort column: %s", sortBy)
		}
		query = query.Order(sortBy)
	}

	airports := make([]gormModels.Airport, 0, size)
	err := query.
		Limit(size).
		Offset(page * size).
		Find(&airports).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch airport page: %w", err)
	}

	return airports, total, nil
}

// FindByNameContains matches names containing the substring,
// case-insensitively. An empty substring matches every record.
func (r *AirportRepository) FindByNameContains(ctx context.Context, name string) ([]gormModels.Airport, error) {
	var airports []gormModels.Airport

	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%").
		Find(&airports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search airports by name: %w", err)
	}

	return airports, nil
}

// BatchInsert inserts multiple airports, skipping keys that already exist
// so a bulk reload is idempotent
func (r *AirportRepository) BatchInsert(ctx context.Context, airports []gormModels.Airport) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(airports, 100).Error
	if err != nil {
		return fmt.Errorf("failed to insert airports: %w", err)
	}
	return nil
}

// Count returns total number of airports
func (r *AirportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Airport{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count airports: %w", err)
	}
	return count, nil
}
