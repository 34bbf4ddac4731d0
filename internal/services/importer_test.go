package services

import (
	"testing"
	"time"

	"recollect/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupImportFixture(t *testing.T) (*gorm.DB, *ImportService, *ContentService, *ShareService) {
	t.Helper()
	db := setupTestDB()
	logger := testLogger()
	content := NewContentService(db)
	shares := NewShareService(db, nil, logger, 10)
	importer := NewImportService(db, shares, content, logger)
	return db, importer, content, shares
}

func seedContent(t *testing.T, content *ContentService, userID uint, links ...string) {
	t.Helper()
	for _, link := range links {
		_, err := content.Create(CreateContentDTO{
			UserID: userID,
			Link:   link,
			Type:   models.ContentTypeArticle,
			Title:  "item " + link,
			Tags:   []string{"shared"},
		})
		assert.NoError(t, err)
	}
}

func TestImportService_Import(t *testing.T) {
	const (
		sourceUser   = uint(1)
		importerUser = uint(2)
	)

	t.Run("Link not found", func(t *testing.T) {
		_, importer, _, _ := setupImportFixture(t)
		_, err := importer.Import(importerUser, "missing123")
		assert.ErrorIs(t, err, ErrLinkNotFound)
	})

	t.Run("Empty source collection", func(t *testing.T) {
		_, importer, _, shares := setupImportFixture(t)
		hash, _, _ := shares.EnsureLink(sourceUser)

		result, err := importer.Import(importerUser, hash)
		assert.NoError(t, err)
		assert.Equal(t, 0, result.ImportedCount)
		assert.Equal(t, ImportReasonNoContent, result.Reason)
	})

	t.Run("Dedup by link URL", func(t *testing.T) {
		_, importer, content, shares := setupImportFixture(t)
		seedContent(t, content, sourceUser, "https://a.com", "https://b.com", "https://c.com")
		seedContent(t, content, importerUser, "https://b.com")
		hash, _, _ := shares.EnsureLink(sourceUser)

		result, err := importer.Import(importerUser, hash)
		assert.NoError(t, err)
		assert.Equal(t, 2, result.ImportedCount)
		assert.Equal(t, 1, result.SkippedDuplicates)

		own, _ := content.ListByOwner(importerUser)
		assert.Len(t, own, 3)
	})

	t.Run("Second import is all duplicates", func(t *testing.T) {
		_, importer, content, shares := setupImportFixture(t)
		seedContent(t, content, sourceUser, "https://a.com", "https://b.com", "https://c.com")
		hash, _, _ := shares.EnsureLink(sourceUser)

		first, err := importer.Import(importerUser, hash)
		assert.NoError(t, err)
		assert.Equal(t, 3, first.ImportedCount)

		second, err := importer.Import(importerUser, hash)
		assert.NoError(t, err)
		assert.Equal(t, 0, second.ImportedCount)
		assert.Equal(t, 3, second.SkippedDuplicates)
		assert.Equal(t, ImportReasonAllDuplicates, second.Reason)
	})

	t.Run("Imported items are re-owned with fresh timestamps", func(t *testing.T) {
		db, importer, content, shares := setupImportFixture(t)

		old := models.Content{
			UserID:    sourceUser,
			Link:      "https://old.com",
			Type:      models.ContentTypeTwitter,
			Title:     "old tweet",
			CreatedAt: time.Now().Add(-48 * time.Hour),
		}
		old.SetTags([]string{"archive"})
		assert.NoError(t, db.Create(&old).Error)

		hash, _, _ := shares.EnsureLink(sourceUser)
		result, err := importer.Import(importerUser, hash)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.ImportedCount)

		own, _ := content.ListByOwner(importerUser)
		assert.Len(t, own, 1)
		copied := own[0]
		assert.Equal(t, importerUser, copied.UserID)
		assert.Equal(t, "https://old.com", copied.Link)
		assert.Equal(t, models.ContentTypeTwitter, copied.Type)
		assert.Equal(t, "old tweet", copied.Title)
		assert.Equal(t, []string{"archive"}, copied.TagList())
		assert.WithinDuration(t, time.Now(), copied.CreatedAt, time.Minute)
		assert.NotEqual(t, old.ID, copied.ID)
	})

	t.Run("Source collection is untouched", func(t *testing.T) {
		_, importer, content, shares := setupImportFixture(t)
		seedContent(t, content, sourceUser, "https://a.com", "https://b.com")
		hash, _, _ := shares.EnsureLink(sourceUser)

		_, err := importer.Import(importerUser, hash)
		assert.NoError(t, err)

		source, _ := content.ListByOwner(sourceUser)
		assert.Len(t, source, 2)
	})
}
