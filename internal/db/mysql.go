package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"geometa/internal/model"
)

// models lists tables in dependency order.
var models = []interface{}{
	&model.User{},
	&model.Insight{},
	&model.Feedback{},
	&model.ApiKey{},
}

// NewMySQL returns a connected GORM DB instance. Driver errors are translated
// to gorm sentinels such as gorm.ErrDuplicatedKey.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema. With reset, existing tables are dropped first.
func Migrate(db *gorm.DB, reset bool) error {
	if reset {
		for i := len(models) - 1; i >= 0; i-- {
			if err := db.Migrator().DropTable(models[i]); err != nil {
				return fmt.Errorf("drop table: %w", err)
			}
		}
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
