package db

import (
	"fmt"

	gormModels "skydesk/aerodrome/internal/models/gorm"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var PgDB *gorm.DB

func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(&gormModels.Airport{}); err != nil {
		return nil, fmt.Errorf("failed to migrate airports table: %w", err)
	}

	PgDB = db
	return db, nil
}
