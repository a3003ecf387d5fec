package service

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/svw-wertheim/spielbericht/internal/models"
	"github.com/svw-wertheim/spielbericht/internal/service/generator"
)

// defaultTemplates keeps a fresh installation runnable. In production the
// editorial team maintains templates directly in the database; seeding only
// happens when the table is empty.
var defaultTemplates = []models.NewsTemplate{
	{
		TemplateType:  string(generator.CategoryVictory),
		TitleTemplate: "Sieg gegen {opponent}!",
		ContentTemplate: "**Was für ein Spiel!** Mit {score} setzte sich unsere Mannschaft gegen {opponent} durch.\n\n" +
			"{match_summary}\n\n" +
			"In der Tabelle stehen wir damit auf Platz {table_position} mit {points} Punkten.\n\n" +
			"{next_match}",
	},
	{
		TemplateType:  string(generator.CategoryBigVictory),
		TitleTemplate: "Kantersieg! {score} gegen {opponent}",
		ContentTemplate: "**Ein Fest für alle Fans!** Unsere Mannschaft fegte {opponent} mit {score} vom Platz.\n\n" +
			"{match_summary}\n\n" +
			"Mit {points} Punkten stehen wir jetzt auf Platz {table_position} der Tabelle.\n\n" +
			"{next_match}",
	},
	{
		TemplateType:  string(generator.CategoryDraw),
		TitleTemplate: "Unentschieden gegen {opponent}",
		ContentTemplate: "Am Ende stand es {score} gegen {opponent}.\n\n" +
			"{match_summary}\n\n" +
			"In der Tabelle bedeutet das Platz {table_position} mit {points} Punkten.\n\n" +
			"{next_match}",
	},
	{
		TemplateType:  string(generator.CategoryDefeat),
		TitleTemplate: "Niederlage gegen {opponent}",
		ContentTemplate: "Mit {score} musste sich unsere Mannschaft {opponent} geschlagen geben.\n\n" +
			"{match_summary}\n\n" +
			"Wir bleiben auf Platz {table_position} mit {points} Punkten und greifen beim nächsten Mal wieder an.\n\n" +
			"{next_match}",
	},
}

// EnsureDefaultTemplates seeds the template table when it is empty.
func EnsureDefaultTemplates(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&models.NewsTemplate{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, template := range defaultTemplates {
		template.IsActive = true
		if err := db.Create(&template).Error; err != nil {
			return fmt.Errorf("failed to seed template %s: %w", template.TemplateType, err)
		}
	}

	logger.Info("Seeded default news templates", zap.Int("count", len(defaultTemplates)))
	return nil
}
