package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/svw-wertheim/spielbericht/internal/models"
	"github.com/svw-wertheim/spielbericht/pkg/util"
)

// Category assigned to every generated match report.
const matchReportCategory = "Spielbericht"

// NewsService owns article persistence. The generation pipeline only ever
// creates articles through it; there is no update path for generated ones.
type NewsService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewNewsService(db *gorm.DB, logger *zap.Logger) *NewsService {
	return &NewsService{
		db:     db,
		logger: logger,
	}
}

// CreateMatchReport persists a generated match report as a published
// article and returns it with its id set.
func (s *NewsService) CreateMatchReport(title, content, excerpt string, result models.MatchResult) (*models.NewsArticle, error) {
	slugDate := time.Now()
	if result.MatchDate != nil {
		slugDate = *result.MatchDate
	}

	article := models.NewsArticle{
		Title:       title,
		Slug:        s.uniqueSlug(util.ArticleSlug(title, slugDate)),
		Content:     content,
		Excerpt:     excerpt,
		Category:    matchReportCategory,
		Tags:        models.StringArray{result.HomeTeam, result.AwayTeam, matchReportCategory},
		IsFeatured:  false,
		IsPublished: true,
		Views:       0,
	}

	if err := s.db.Create(&article).Error; err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	s.logger.Info("Created match report",
		zap.Uint("article_id", article.ID),
		zap.String("title", article.Title))

	return &article, nil
}

// uniqueSlug appends a numeric suffix when the slug is already taken.
// Duplicate triggers for the same match legitimately produce a second
// article, which must not trip the unique index.
func (s *NewsService) uniqueSlug(base string) string {
	slug := base
	for i := 2; ; i++ {
		var count int64
		if err := s.db.Model(&models.NewsArticle{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			s.logger.Warn("Failed to check slug uniqueness", zap.Error(err))
			return slug
		}
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// ListArticles returns articles newest first, optionally filtered by
// category.
func (s *NewsService) ListArticles(category string, limit int) ([]models.NewsArticle, error) {
	query := s.db.Order("created_at desc")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var articles []models.NewsArticle
	if err := query.Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}
