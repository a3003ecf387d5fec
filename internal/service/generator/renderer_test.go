package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svw-wertheim/spielbericht/internal/models"
)

var knownPlaceholders = []string{
	"{score}", "{opponent}", "{table_position}", "{points}", "{match_summary}", "{next_match}",
}

func fullTemplate() *models.NewsTemplate {
	return &models.NewsTemplate{
		ID:            1,
		TemplateType:  string(CategoryVictory),
		TitleTemplate: "Sieg gegen {opponent}!",
		ContentTemplate: "**Was für ein Spiel!** Mit {score} gegen {opponent}.\n\n" +
			"{match_summary}\n\n" +
			"Platz {table_position} mit {points} Punkten.\n\n" +
			"{next_match}",
	}
}

func fullEnrichment() Enrichment {
	return Enrichment{
		OwnTeam: &OwnStanding{Position: 3, Points: 42},
		NextMatch: &NextMatch{
			HomeTeam: "SV Viktoria Wertheim",
			AwayTeam: "TSV Beispielstadt",
			Date:     time.Date(2025, 11, 2, 15, 0, 0, 0, time.UTC),
		},
	}
}

func TestRenderSubstitutesAllPlaceholders(t *testing.T) {
	g := New("viktoria")
	matchResult := result("SV Viktoria Wertheim", "FC Testheim", intPtr(2), intPtr(1))

	rendered, err := g.Render(fullTemplate(), matchResult, CategoryVictory, fullEnrichment())
	require.NoError(t, err)

	for _, token := range knownPlaceholders {
		assert.NotContains(t, rendered.Title, token)
		assert.NotContains(t, rendered.Content, token)
	}

	assert.Equal(t, "Sieg gegen FC Testheim!", rendered.Title)
	assert.Contains(t, rendered.Content, "2:1")
	assert.Contains(t, rendered.Content, "Platz 3 mit 42 Punkten")
	assert.Contains(t, rendered.Content, "Sonntag, den 02.11.2025 um 15:00 Uhr")
}

func TestRenderIsDeterministic(t *testing.T) {
	g := New("viktoria")
	matchResult := result("SV Viktoria Wertheim", "FC Testheim", intPtr(2), intPtr(1))

	first, err := g.Render(fullTemplate(), matchResult, CategoryVictory, fullEnrichment())
	require.NoError(t, err)
	second, err := g.Render(fullTemplate(), matchResult, CategoryVictory, fullEnrichment())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderFallbacks(t *testing.T) {
	g := New("viktoria")
	matchResult := result("SV Viktoria Wertheim", "FC Testheim", intPtr(1), intPtr(1))

	rendered, err := g.Render(fullTemplate(), matchResult, CategoryDraw, Enrichment{})
	require.NoError(t, err)

	assert.Contains(t, rendered.Content, "Platz unbekannt mit 0 Punkten")
	assert.Contains(t, rendered.Content, "wird rechtzeitig bekannt gegeben")
}

func TestRenderRepeatedPlaceholders(t *testing.T) {
	g := New("viktoria")
	matchResult := result("SV Viktoria Wertheim", "FC Testheim", intPtr(2), intPtr(1))

	tpl := fullTemplate()
	tpl.ContentTemplate = "{opponent} und nochmal {opponent}, Endstand {score} ({score})."

	rendered, err := g.Render(tpl, matchResult, CategoryVictory, fullEnrichment())
	require.NoError(t, err)

	assert.Equal(t, "FC Testheim und nochmal FC Testheim, Endstand 2:1 (2:1).", rendered.Content)
}

func TestRenderMatchSummaryPerCategory(t *testing.T) {
	g := New("viktoria")
	tpl := fullTemplate()
	tpl.ContentTemplate = "{match_summary}"

	scores := map[ResultCategory][2]int{
		CategoryVictory:    {2, 1},
		CategoryBigVictory: {4, 0},
		CategoryDraw:       {1, 1},
		CategoryDefeat:     {0, 2},
	}

	seen := map[string]bool{}
	for category, score := range scores {
		matchResult := result("SV Viktoria Wertheim", "FC Testheim", intPtr(score[0]), intPtr(score[1]))
		rendered, err := g.Render(tpl, matchResult, category, Enrichment{})
		require.NoError(t, err)
		assert.NotEmpty(t, rendered.Content)
		assert.False(t, seen[rendered.Content], "summary for %s duplicates another category", category)
		seen[rendered.Content] = true
	}
}

func TestRenderRejectsMissingScores(t *testing.T) {
	g := New("viktoria")
	matchResult := result("SV Viktoria Wertheim", "FC Testheim", nil, nil)

	_, err := g.Render(fullTemplate(), matchResult, CategoryNoResult, Enrichment{})
	assert.Error(t, err)
}

func TestExcerptBounds(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"short single paragraph", "Kurzer Text."},
		{"long single paragraph without break", strings.Repeat("ä", 500)},
		{"long first paragraph", strings.Repeat("a", 400) + "\n\nZweiter Absatz."},
		{"first paragraph exactly at limit", strings.Repeat("b", 200) + "\n\nRest."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			excerpt := deriveExcerpt(tt.content)
			assert.LessOrEqual(t, len([]rune(excerpt)), 203)
			assert.True(t, strings.HasSuffix(excerpt, "..."))
		})
	}
}

func TestExcerptStripsBoldAndStopsAtParagraph(t *testing.T) {
	excerpt := deriveExcerpt("**Was für ein Spiel!** Toller Sieg.\n\nZweiter Absatz mit Details.")

	assert.Equal(t, "Was für ein Spiel! Toller Sieg....", excerpt)
	assert.NotContains(t, excerpt, "**")
	assert.NotContains(t, excerpt, "Zweiter Absatz")
}
