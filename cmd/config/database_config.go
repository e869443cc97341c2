package config

import (
	"context"
	"fmt"
	"time"

	"galeana-pepper/internal/utils"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	connectAttempts = 10
	connectBackoff  = 2 * time.Second
)

func DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
		utils.GetConfig("DB_SSLMODE"),
		utils.GetConfig("PLANT_TIMEZONE"),
	)
}

// ConnectDB opens the Postgres pool, retrying while the database comes up.
func ConnectDB(ctx context.Context, log *zap.Logger) (*gorm.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err := open(ctx)
		if err == nil {
			return db, nil
		}
		lastErr = err
		log.Warn("database not ready",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt == connectAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(connectBackoff):
		}
	}
	return nil, fmt.Errorf("database connection failed after %d attempts: %w", connectAttempts, lastErr)
}

func open(ctx context.Context) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}
