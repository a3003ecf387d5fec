package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/svw-wertheim/spielbericht/internal/config"
	"github.com/svw-wertheim/spielbericht/internal/models"
	"github.com/svw-wertheim/spielbericht/internal/service/generator"
)

// GenerationService orchestrates the match-report pipeline: it drains the
// generation log, runs classification, template resolution, enrichment and
// rendering, and records the outcome per entry. Every entry that enters a
// run leaves it in a terminal state; a failure in one entry never aborts
// the rest of the batch.
type GenerationService struct {
	db           *gorm.DB
	logger       *zap.Logger
	generator    *generator.Generator
	newsService  *NewsService
	clubName     string
	nameKeyword  string
	batchSize    int
	entryTimeout time.Duration
}

func NewGenerationService(cfg *config.Config, db *gorm.DB, logger *zap.Logger, newsService *NewsService) *GenerationService {
	timeout, err := time.ParseDuration(cfg.Generation.EntryTimeout)
	if err != nil || timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &GenerationService{
		db:           db,
		logger:       logger,
		generator:    generator.New(cfg.Club.NameKeyword),
		newsService:  newsService,
		clubName:     cfg.Club.Name,
		nameKeyword:  cfg.Club.NameKeyword,
		batchSize:    cfg.Generation.BatchSize,
		entryTimeout: timeout,
	}
}

// EnqueueMatchResult inserts a pending generation log entry for a
// completed match. Duplicate submissions for the same match produce
// duplicate articles; deduplication is the producer's responsibility.
func (s *GenerationService) EnqueueMatchResult(result models.MatchResult) (*models.GenerationLog, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal trigger data: %w", err)
	}

	entry := models.GenerationLog{
		TriggerType:          models.TriggerTypeMatchCompleted,
		TriggerData:          string(payload),
		GeneratedContentType: models.ContentTypeNewsArticle,
		Status:               models.GenerationStatusPending,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to enqueue match result: %w", err)
	}

	s.logger.Info("Enqueued match result for content generation",
		zap.Uint("entry_id", entry.ID),
		zap.String("match_id", result.MatchID))

	return &entry, nil
}

// ProcessPending drains one batch of pending generation log entries,
// oldest first. Each entry is claimed with a run token before processing
// so that overlapping invocations do not both process the same row.
func (s *GenerationService) ProcessPending(ctx context.Context) error {
	runID := uuid.NewString()

	var entries []models.GenerationLog
	if err := s.db.WithContext(ctx).
		Where("status = ?", models.GenerationStatusPending).
		Order("created_at asc").
		Limit(s.batchSize).
		Find(&entries).Error; err != nil {
		return fmt.Errorf("failed to load pending entries: %w", err)
	}

	if len(entries) == 0 {
		s.logger.Debug("No pending generation entries")
		return nil
	}

	s.logger.Info("Processing pending generation entries",
		zap.String("run_id", runID),
		zap.Int("count", len(entries)))

	for i := range entries {
		entry := &entries[i]

		claim := s.db.WithContext(ctx).
			Model(&models.GenerationLog{}).
			Where("id = ? AND status = ? AND (claimed_by = '' OR claimed_by IS NULL)",
				entry.ID, models.GenerationStatusPending).
			Update("claimed_by", runID)
		if claim.Error != nil {
			s.logger.Error("Failed to claim entry", zap.Uint("entry_id", entry.ID), zap.Error(claim.Error))
			continue
		}
		if claim.RowsAffected == 0 {
			// Already claimed or moved to a terminal state by another run.
			continue
		}

		s.processEntry(ctx, entry)
	}

	return nil
}

// processEntry runs the pipeline for one claimed entry under the entry
// timeout and writes exactly one terminal transition.
func (s *GenerationService) processEntry(ctx context.Context, entry *models.GenerationLog) {
	entryCtx, cancel := context.WithTimeout(ctx, s.entryTimeout)
	defer cancel()

	article, err := s.generate(entryCtx, entry.TriggerData)
	if err != nil {
		if errors.Is(entryCtx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("processing timed out after %s", s.entryTimeout)
		}
		s.logger.Error("Content generation failed",
			zap.Uint("entry_id", entry.ID),
			zap.Error(err))
		s.markFailed(entry, err.Error())
		return
	}

	s.markCompleted(entry, article.ID)
	s.logger.Info("Content generation completed",
		zap.Uint("entry_id", entry.ID),
		zap.Uint("article_id", article.ID))
}

// generate runs classification, template resolution, enrichment, rendering
// and article creation for one trigger payload.
func (s *GenerationService) generate(ctx context.Context, triggerData string) (*models.NewsArticle, error) {
	var result models.MatchResult
	if err := json.Unmarshal([]byte(triggerData), &result); err != nil {
		return nil, fmt.Errorf("invalid trigger data: %w", err)
	}

	category := s.generator.Classify(result)
	if category == generator.CategoryNoResult {
		// Missing scores must never reach template resolution.
		return nil, fmt.Errorf("match %s has no usable result", result.MatchID)
	}

	template, err := s.resolveTemplate(ctx, category)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, fmt.Errorf("no template for category %s", category)
	}

	enrichment := s.enrich(ctx)

	rendered, err := s.generator.Render(template, result, category, enrichment)
	if err != nil {
		return nil, err
	}

	article, err := s.newsService.CreateMatchReport(rendered.Title, rendered.Content, rendered.Excerpt, result)
	if err != nil {
		return nil, err
	}

	return article, nil
}

// resolveTemplate returns the first active template for the category, or
// nil when none is configured. Ordering by id makes the tie-break among
// duplicate templates stable.
func (s *GenerationService) resolveTemplate(ctx context.Context, category generator.ResultCategory) (*models.NewsTemplate, error) {
	var template models.NewsTemplate
	err := s.db.WithContext(ctx).
		Where("template_type = ? AND is_active = ?", string(category), true).
		Order("id asc").
		First(&template).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve template: %w", err)
	}
	return &template, nil
}

// GenerateForMatch runs the pipeline synchronously for a single match by
// its external id, bypassing the queue. Used for manual regeneration.
func (s *GenerationService) GenerateForMatch(ctx context.Context, externalID string) (*models.NewsArticle, error) {
	var match models.Match
	if err := s.db.WithContext(ctx).Where("external_id = ?", externalID).First(&match).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("match %s not found", externalID)
		}
		return nil, fmt.Errorf("failed to load match: %w", err)
	}

	payload, err := json.Marshal(models.ResultOf(&match))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal match result: %w", err)
	}

	return s.generate(ctx, string(payload))
}

// SmokeTestResult is the outcome of a generation smoke test.
type SmokeTestResult struct {
	Category      generator.ResultCategory `json:"category"`
	TemplateFound bool                     `json:"template_found"`
	TemplateID    uint                     `json:"template_id,omitempty"`
}

// SmokeTest classifies a fixed synthetic result and checks that a template
// is available for it, without writing anything.
func (s *GenerationService) SmokeTest(ctx context.Context) (*SmokeTestResult, error) {
	homeScore, awayScore := 2, 1
	synthetic := models.MatchResult{
		MatchID:   "smoke-test",
		HomeTeam:  s.clubName,
		AwayTeam:  "FC Testheim",
		HomeScore: &homeScore,
		AwayScore: &awayScore,
	}

	category := s.generator.Classify(synthetic)

	template, err := s.resolveTemplate(ctx, category)
	if err != nil {
		return nil, err
	}

	testResult := &SmokeTestResult{
		Category:      category,
		TemplateFound: template != nil,
	}
	if template != nil {
		testResult.TemplateID = template.ID
	}
	return testResult, nil
}

// ListEntries returns generation log entries newest first, optionally
// filtered by status.
func (s *GenerationService) ListEntries(status string, limit int) ([]models.GenerationLog, error) {
	query := s.db.Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var entries []models.GenerationLog
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list generation log: %w", err)
	}
	return entries, nil
}

func (s *GenerationService) markCompleted(entry *models.GenerationLog, articleID uint) {
	s.transition(entry, map[string]interface{}{
		"status":               models.GenerationStatusCompleted,
		"generated_content_id": articleID,
		"processed_at":         time.Now(),
	})
}

func (s *GenerationService) markFailed(entry *models.GenerationLog, message string) {
	s.transition(entry, map[string]interface{}{
		"status":        models.GenerationStatusFailed,
		"error_message": message,
		"processed_at":  time.Now(),
	})
}

// transition writes the terminal status, retrying once. If both attempts
// fail the entry stays pending with its claim token set; it will not be
// picked up again and needs the same manual reset as a failed entry.
func (s *GenerationService) transition(entry *models.GenerationLog, updates map[string]interface{}) {
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		err = s.db.Model(entry).Updates(updates).Error
		if err == nil {
			return
		}
	}
	s.logger.Error("Failed to write terminal status, entry needs manual reset",
		zap.Uint("entry_id", entry.ID),
		zap.Any("updates", updates),
		zap.Error(err))
}
