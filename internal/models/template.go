package models

import (
	"time"
)

// NewsTemplate is an authored title/content template for generated match
// reports. TemplateType matches a result category string. Conditions is
// stored for forward compatibility but is not evaluated during selection.
type NewsTemplate struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TemplateType    string    `gorm:"not null;size:50;index" json:"template_type"`
	TitleTemplate   string    `gorm:"not null;size:500" json:"title_template"`
	ContentTemplate string    `gorm:"not null;type:text" json:"content_template"`
	Conditions      string    `gorm:"type:text" json:"conditions"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
