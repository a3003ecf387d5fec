package generator

import (
	"strings"

	"github.com/svw-wertheim/spielbericht/internal/models"
)

// ResultCategory is the outcome of a match from the club's perspective.
type ResultCategory string

const (
	CategoryVictory    ResultCategory = "victory"
	CategoryBigVictory ResultCategory = "big_victory"
	CategoryDraw       ResultCategory = "draw"
	CategoryDefeat     ResultCategory = "defeat"
	CategoryNoResult   ResultCategory = "no_result"
)

// Goal difference at or above this margin upgrades a victory to big_victory.
const bigVictoryMargin = 3

// Generator holds the pure match-report logic: result classification and
// template rendering. It carries no I/O dependencies.
type Generator struct {
	// teamKeyword identifies the club's own side by case-insensitive
	// substring match against team display names. The feed carries no
	// stable team ids, so name matching is all we have.
	teamKeyword string
}

func New(teamKeyword string) *Generator {
	return &Generator{
		teamKeyword: strings.ToLower(teamKeyword),
	}
}

// IsHomeGame reports whether the club's own team is listed as the home
// side. Classification and rendering must agree on this, so both go
// through here.
func (g *Generator) IsHomeGame(result models.MatchResult) bool {
	return strings.Contains(strings.ToLower(result.HomeTeam), g.teamKeyword)
}

// Opponent returns the display name of the other side.
func (g *Generator) Opponent(result models.MatchResult) string {
	if g.IsHomeGame(result) {
		return result.AwayTeam
	}
	return result.HomeTeam
}

// Classify maps a match result to a category. It is total: any well-formed
// input yields one of the five categories, and a missing score always
// yields CategoryNoResult regardless of the other fields.
func (g *Generator) Classify(result models.MatchResult) ResultCategory {
	if result.HomeScore == nil || result.AwayScore == nil {
		return CategoryNoResult
	}

	homeScore := *result.HomeScore
	awayScore := *result.AwayScore

	if homeScore == awayScore {
		return CategoryDraw
	}

	isHomeGame := g.IsHomeGame(result)
	weWon := (isHomeGame && homeScore > awayScore) || (!isHomeGame && awayScore > homeScore)
	if !weWon {
		return CategoryDefeat
	}

	diff := homeScore - awayScore
	if diff < 0 {
		diff = -diff
	}
	if diff >= bigVictoryMargin {
		return CategoryBigVictory
	}
	return CategoryVictory
}
