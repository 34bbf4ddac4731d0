package services

import (
	"context"
	"testing"
	"time"

	"recollect/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAuditService(t *testing.T) {
	db := setupTestDB()
	service := NewAuditService(db, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)

	t.Run("Log Action", func(t *testing.T) {
		userID := uint(1)
		service.LogAction(&userID, AuditShare, "abc123XYZ0", map[string]string{"created": "true"}, "127.0.0.1")

		// Wait for worker to process
		time.Sleep(100 * time.Millisecond)

		var entry models.AuditLog
		err := db.First(&entry).Error
		assert.NoError(t, err)
		assert.Equal(t, AuditShare, entry.Action)
		assert.Equal(t, "abc123XYZ0", entry.EntityID)
		assert.Contains(t, entry.Details, "created")
	})

	t.Run("Channel Full", func(t *testing.T) {
		service := NewAuditService(db, testLogger())
		// Fill channel; no worker is draining this instance
		for i := 0; i < 100; i++ {
			service.LogAction(nil, AuditLogin, "ID", nil, "IP")
		}
		// Should drop without blocking
		service.LogAction(nil, "DROP", "ID", nil, "IP")
	})

	t.Run("DB Error", func(t *testing.T) {
		dbErr := setupTestDB()
		dbErr.Migrator().DropTable(&models.AuditLog{})
		serviceErr := NewAuditService(dbErr, testLogger())

		ctxErr, cancelErr := context.WithCancel(context.Background())
		go serviceErr.Start(ctxErr)

		serviceErr.LogAction(nil, "ERROR", "ID", nil, "IP")
		time.Sleep(100 * time.Millisecond)
		cancelErr()
	})
}
