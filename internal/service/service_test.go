package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/svw-wertheim/spielbericht/internal/config"
	"github.com/svw-wertheim/spielbericht/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A second connection would get its own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Club: config.ClubConfig{
			Name:        "SV Viktoria Wertheim",
			NameKeyword: "viktoria",
		},
		Generation: config.GenerationConfig{
			BatchSize:    10,
			EntryTimeout: "10s",
		},
	}
}

func newTestGenerationService(t *testing.T, db *gorm.DB) *GenerationService {
	t.Helper()

	logger := zap.NewNop()
	newsService := NewNewsService(db, logger)
	return NewGenerationService(testConfig(), db, logger, newsService)
}

func seedTemplates(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, EnsureDefaultTemplates(db, zap.NewNop()))
}

func seedStanding(t *testing.T, db *gorm.DB, position, points int) {
	t.Helper()
	require.NoError(t, db.Create(&models.LeagueStanding{
		Position: position,
		TeamName: "SV Viktoria Wertheim",
		Points:   points,
	}).Error)
}

func seedUpcomingMatch(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.Match{
		ExternalID: "upcoming-1",
		HomeTeam:   "SV Viktoria Wertheim",
		AwayTeam:   "TSV Beispielstadt",
		MatchDate:  time.Now().Add(7 * 24 * time.Hour),
		Status:     models.MatchStatusScheduled,
	}).Error)
}
