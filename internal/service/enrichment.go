package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/svw-wertheim/spielbericht/internal/models"
	"github.com/svw-wertheim/spielbericht/internal/service/generator"
)

// enrich gathers the optional supporting facts for rendering. Both lookups
// are independent and a miss yields nil, never an error: the renderer has
// fallback wording for missing data.
func (s *GenerationService) enrich(ctx context.Context) generator.Enrichment {
	return generator.Enrichment{
		OwnTeam:   s.lookupOwnStanding(ctx),
		NextMatch: s.lookupNextMatch(ctx),
	}
}

// lookupOwnStanding finds the club's row in the league table by the same
// name-keyword heuristic the classifier uses.
func (s *GenerationService) lookupOwnStanding(ctx context.Context) *generator.OwnStanding {
	pattern := "%" + strings.ToLower(s.nameKeyword) + "%"

	var standing models.LeagueStanding
	err := s.db.WithContext(ctx).
		Where("LOWER(team_name) LIKE ?", pattern).
		Order("position asc").
		First(&standing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Failed to look up own standing", zap.Error(err))
		}
		return nil
	}

	return &generator.OwnStanding{
		Position: standing.Position,
		Points:   standing.Points,
	}
}

// lookupNextMatch finds the next scheduled fixture by date ascending.
func (s *GenerationService) lookupNextMatch(ctx context.Context) *generator.NextMatch {
	var match models.Match
	err := s.db.WithContext(ctx).
		Where("status = ? AND match_date > ?", models.MatchStatusScheduled, time.Now()).
		Order("match_date asc").
		First(&match).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Failed to look up next match", zap.Error(err))
		}
		return nil
	}

	return &generator.NextMatch{
		HomeTeam: match.HomeTeam,
		AwayTeam: match.AwayTeam,
		Date:     match.MatchDate,
	}
}
