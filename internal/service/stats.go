package service

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/svw-wertheim/spielbericht/internal/models"
)

// StatsService computes dashboard counters from the live tables. Nothing
// is materialized; the volumes here are a village club's, not a CDN's.
type StatsService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewStatsService(db *gorm.DB, logger *zap.Logger) *StatsService {
	return &StatsService{
		db:     db,
		logger: logger,
	}
}

// Summary is the admin dashboard snapshot.
type Summary struct {
	PendingEntries    int64                  `json:"pending_entries"`
	CompletedEntries  int64                  `json:"completed_entries"`
	FailedEntries     int64                  `json:"failed_entries"`
	GeneratedArticles int64                  `json:"generated_articles"`
	TotalMatches      int64                  `json:"total_matches"`
	RecentFailures    []models.GenerationLog `json:"recent_failures"`
}

// GetSummary returns current queue/article counters and the most recent
// failed entries with their error messages.
func (s *StatsService) GetSummary() (*Summary, error) {
	summary := &Summary{}

	if err := s.db.Model(&models.GenerationLog{}).Where("status = ?", models.GenerationStatusPending).Count(&summary.PendingEntries).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending entries: %w", err)
	}
	if err := s.db.Model(&models.GenerationLog{}).Where("status = ?", models.GenerationStatusCompleted).Count(&summary.CompletedEntries).Error; err != nil {
		return nil, fmt.Errorf("failed to count completed entries: %w", err)
	}
	if err := s.db.Model(&models.GenerationLog{}).Where("status = ?", models.GenerationStatusFailed).Count(&summary.FailedEntries).Error; err != nil {
		return nil, fmt.Errorf("failed to count failed entries: %w", err)
	}

	if err := s.db.Model(&models.NewsArticle{}).Where("category = ?", matchReportCategory).Count(&summary.GeneratedArticles).Error; err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}
	if err := s.db.Model(&models.Match{}).Count(&summary.TotalMatches).Error; err != nil {
		return nil, fmt.Errorf("failed to count matches: %w", err)
	}

	if err := s.db.Where("status = ?", models.GenerationStatusFailed).
		Order("updated_at desc").
		Limit(5).
		Find(&summary.RecentFailures).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent failures: %w", err)
	}

	return summary, nil
}
