package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

// NewSQLiteService opens a file (or ":memory:") database for local runs.
func NewSQLiteService(baseLog *logger.Logger, path string) (*Service, error) {
	serviceLog := baseLog.With("service", "SQLiteService")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newGormLogger(serviceLog),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %q: %w", path, err)
	}
	// one writer avoids SQLITE_BUSY under concurrent requests
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	serviceLog.Info("opened sqlite database", "path", path)
	return &Service{db: db, log: serviceLog, driver: "sqlite"}, nil
}
