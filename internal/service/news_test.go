package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/svw-wertheim/spielbericht/internal/models"
)

func TestCreateMatchReport(t *testing.T) {
	db := newTestDB(t)
	svc := NewNewsService(db, zap.NewNop())

	matchDate := time.Date(2025, 11, 2, 15, 0, 0, 0, time.UTC)
	result := models.MatchResult{
		MatchID:   "m-1",
		HomeTeam:  "SV Viktoria Wertheim",
		AwayTeam:  "FC Testheim",
		MatchDate: &matchDate,
	}

	article, err := svc.CreateMatchReport("Sieg gegen FC Testheim!", "Inhalt", "Auszug...", result)
	require.NoError(t, err)

	assert.NotZero(t, article.ID)
	assert.Equal(t, "2025-11-02-sieg-gegen-fc-testheim", article.Slug)
	assert.Equal(t, "Spielbericht", article.Category)
	assert.True(t, article.IsPublished)
}

func TestListArticlesFiltersByCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewNewsService(db, zap.NewNop())

	require.NoError(t, db.Create(&models.NewsArticle{Title: "A", Slug: "a", Category: "Spielbericht"}).Error)
	require.NoError(t, db.Create(&models.NewsArticle{Title: "B", Slug: "b", Category: "Vereinsleben"}).Error)

	articles, err := svc.ListArticles("Spielbericht", 0)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "A", articles[0].Title)

	all, err := svc.ListArticles("", 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
