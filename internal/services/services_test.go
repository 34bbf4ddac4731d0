package services

import (
	"log/slog"
	"os"

	"recollect/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database: " + err.Error())
	}
	// :memory: databases are per-connection; keep the pool at one.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	err = db.AutoMigrate(&models.User{}, &models.Content{}, &models.ShareLink{}, &models.AuditLog{}, &models.RecallView{})
	if err != nil {
		panic("failed to migrate database: " + err.Error())
	}
	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
