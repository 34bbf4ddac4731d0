package services

import (
	"log/slog"

	"recollect/internal/models"

	"gorm.io/gorm"
)

// Import outcome reasons.
const (
	ImportReasonNoContent     = "no content"
	ImportReasonAllDuplicates = "all duplicates"
)

type ImportResult struct {
	ImportedCount     int    `json:"importedCount"`
	SkippedDuplicates int    `json:"skippedDuplicates"`
	Reason            string `json:"reason,omitempty"`
}

// ImportService copies another user's shared collection into the caller's
// own, deduplicated by exact link URL. The read-then-write sequence is not
// wrapped in a transaction: a concurrent create by the importer between the
// dedup read and the bulk insert can slip in one duplicate. Accepted race.
type ImportService struct {
	db      *gorm.DB
	shares  *ShareService
	content *ContentService
	logger  *slog.Logger
}

func NewImportService(db *gorm.DB, shares *ShareService, content *ContentService, logger *slog.Logger) *ImportService {
	return &ImportService{
		db:      db,
		shares:  shares,
		content: content,
		logger:  logger,
	}
}

// Import runs the per-request state machine: resolve the hash, load the
// source collection, drop items whose link the importer already owns, and
// bulk-insert the rest re-owned to the importer with fresh timestamps.
func (s *ImportService) Import(importerID uint, hash string) (*ImportResult, error) {
	link, err := s.shares.Resolve(hash)
	if err != nil {
		return nil, err
	}

	sourceContent, err := s.content.ListByOwner(link.UserID)
	if err != nil {
		return nil, err
	}
	if len(sourceContent) == 0 {
		return &ImportResult{ImportedCount: 0, Reason: ImportReasonNoContent}, nil
	}

	ownContent, err := s.content.ListByOwner(importerID)
	if err != nil {
		return nil, err
	}
	existingLinks := make(map[string]bool, len(ownContent))
	for _, c := range ownContent {
		existingLinks[c.Link] = true
	}

	toImport := make([]models.Content, 0, len(sourceContent))
	for _, c := range sourceContent {
		if existingLinks[c.Link] {
			continue
		}
		copied := models.Content{
			UserID: importerID,
			Link:   c.Link,
			Type:   c.Type,
			Title:  c.Title,
			Tags:   c.Tags,
		}
		toImport = append(toImport, copied)
	}

	skipped := len(sourceContent) - len(toImport)
	if len(toImport) == 0 {
		return &ImportResult{ImportedCount: 0, SkippedDuplicates: skipped, Reason: ImportReasonAllDuplicates}, nil
	}

	if err := s.db.Create(&toImport).Error; err != nil {
		return nil, err
	}

	s.logger.Info("collection imported",
		"importer_id", importerID,
		"source_user_id", link.UserID,
		"imported", len(toImport),
		"skipped", skipped,
	)

	return &ImportResult{ImportedCount: len(toImport), SkippedDuplicates: skipped}, nil
}
