package generator

import (
	"fmt"
	"strings"

	"github.com/svw-wertheim/spielbericht/internal/models"
)

// Excerpts are cut to this many runes before the ellipsis is appended.
const excerptLimit = 200

// Fallback wording used when enrichment data is missing.
const (
	fallbackPosition  = "unbekannt"
	fallbackNextMatch = "Das nächste Spiel wird rechtzeitig bekannt gegeben."
)

// matchSummaries is the fixed narrative per category. CategoryNoResult has
// no summary because such results never reach rendering.
var matchSummaries = map[ResultCategory]string{
	CategoryVictory:    "Unsere Mannschaft zeigte eine starke Leistung und belohnte sich mit drei wichtigen Punkten.",
	CategoryBigVictory: "Ein Spiel zum Genießen: Unsere Mannschaft dominierte von Beginn an und feierte einen Kantersieg.",
	CategoryDraw:       "In einem umkämpften Spiel trennten sich beide Mannschaften mit einem leistungsgerechten Unentschieden.",
	CategoryDefeat:     "Trotz kämpferischer Leistung musste sich unsere Mannschaft am Ende geschlagen geben.",
}

var germanWeekdays = [...]string{
	"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
}

// Render substitutes every placeholder token in the template's title and
// content and derives the excerpt. Rendering is deterministic: the same
// template, result and enrichment always produce identical output.
func (g *Generator) Render(tpl *models.NewsTemplate, result models.MatchResult, category ResultCategory, enrichment Enrichment) (*Rendered, error) {
	if result.HomeScore == nil || result.AwayScore == nil {
		return nil, fmt.Errorf("match %s has no usable result", result.MatchID)
	}
	summary, ok := matchSummaries[category]
	if !ok {
		return nil, fmt.Errorf("no match summary for category %s", category)
	}

	position := fallbackPosition
	points := "0"
	if enrichment.OwnTeam != nil {
		position = fmt.Sprintf("%d", enrichment.OwnTeam.Position)
		points = fmt.Sprintf("%d", enrichment.OwnTeam.Points)
	}

	replacer := strings.NewReplacer(
		"{score}", fmt.Sprintf("%d:%d", *result.HomeScore, *result.AwayScore),
		"{opponent}", g.Opponent(result),
		"{table_position}", position,
		"{points}", points,
		"{match_summary}", summary,
		"{next_match}", formatNextMatch(enrichment.NextMatch),
	)

	content := replacer.Replace(tpl.ContentTemplate)

	return &Rendered{
		Title:   replacer.Replace(tpl.TitleTemplate),
		Content: content,
		Excerpt: deriveExcerpt(content),
	}, nil
}

// formatNextMatch renders the next fixture as a German sentence, falling
// back to a neutral announcement when no fixture is scheduled.
func formatNextMatch(next *NextMatch) string {
	if next == nil {
		return fallbackNextMatch
	}
	return fmt.Sprintf("Das nächste Spiel: %s gegen %s am %s, den %s um %s Uhr.",
		next.HomeTeam,
		next.AwayTeam,
		germanWeekdays[next.Date.Weekday()],
		next.Date.Format("02.01.2006"),
		next.Date.Format("15:04"),
	)
}

// deriveExcerpt takes the first paragraph of the content, strips bold
// markers and truncates to the excerpt limit. The ellipsis is appended
// unconditionally, matching the established look of generated teasers
// even when the excerpt ends naturally.
func deriveExcerpt(content string) string {
	paragraph := content
	if idx := strings.Index(content, "\n\n"); idx >= 0 {
		paragraph = content[:idx]
	}

	paragraph = strings.ReplaceAll(paragraph, "**", "")

	runes := []rune(paragraph)
	if len(runes) > excerptLimit {
		runes = runes[:excerptLimit]
	}

	return string(runes) + "..."
}
