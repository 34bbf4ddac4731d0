package services

import (
	"context"
	"log/slog"

	"recollect/internal/models"

	"github.com/mssola/user_agent"
	"gorm.io/gorm"
)

// RecallStatsService records anonymous visits to public share pages.
// Views are queued on a channel and enriched off the request path.
type RecallStatsService struct {
	db          *gorm.DB
	logger      *slog.Logger
	viewChannel chan models.RecallView
}

func NewRecallStatsService(db *gorm.DB, logger *slog.Logger) *RecallStatsService {
	return &RecallStatsService{
		db:          db,
		logger:      logger,
		viewChannel: make(chan models.RecallView, 1000),
	}
}

func (s *RecallStatsService) Start(ctx context.Context) {
	s.logger.Info("Recall stats worker starting")
	for {
		select {
		case view := <-s.viewChannel:
			s.enrichView(&view)

			if err := s.db.Create(&view).Error; err != nil {
				s.logger.Error("Failed to record recall view", "error", err)
			}
		case <-ctx.Done():
			s.logger.Info("Recall stats worker stopping")
			return
		}
	}
}

func (s *RecallStatsService) RecordViewAsync(view models.RecallView) {
	select {
	case s.viewChannel <- view:
		// Sent
	default:
		s.logger.Warn("Recall stats channel full, dropping view event")
	}
}

// CountViews returns the number of recorded visits for a share link.
func (s *RecallStatsService) CountViews(shareLinkID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.RecallView{}).
		Where("share_link_id = ?", shareLinkID).
		Count(&count).Error
	return count, err
}

func (s *RecallStatsService) enrichView(view *models.RecallView) {
	ua := user_agent.New(view.UserAgent)
	browserName, browserVer := ua.Browser()
	view.Browser = browserName + " " + browserVer
	view.OS = ua.OS()

	if ua.Mobile() {
		view.DeviceType = "Mobile"
	} else if ua.Bot() {
		view.DeviceType = "Bot"
	} else {
		view.DeviceType = "Desktop"
	}

	if view.Referrer == "" {
		view.Referrer = "Direct"
	}
}
