package models

import (
	"time"
)

// Generation log statuses. Entries start pending and end in exactly one of
// the two terminal states; there is no transition back to pending.
const (
	GenerationStatusPending   = "pending"
	GenerationStatusCompleted = "completed"
	GenerationStatusFailed    = "failed"
)

// Trigger and content type discriminators.
const (
	TriggerTypeMatchCompleted = "match_completed"
	ContentTypeNewsArticle    = "news_article"
)

// GenerationLog is the persisted work queue for automated content
// generation. A row is inserted with status pending when a match result
// arrives; the orchestrator moves it to completed (linking the created
// article) or failed (recording the reason). Terminal rows are never
// picked up again; the status filter is the sole idempotency guard.
type GenerationLog struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	TriggerType          string     `gorm:"not null;size:100;index" json:"trigger_type"`
	TriggerData          string     `gorm:"not null;type:text" json:"trigger_data"`
	GeneratedContentType string     `gorm:"size:100" json:"generated_content_type"`
	GeneratedContentID   *uint      `json:"generated_content_id"`
	Status               string     `gorm:"size:50;default:'pending';index" json:"status"`
	ErrorMessage         string     `gorm:"type:text" json:"error_message"`
	ClaimedBy            string     `gorm:"size:64;index" json:"claimed_by"`
	CreatedAt            time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	ProcessedAt          *time.Time `json:"processed_at"`
}
