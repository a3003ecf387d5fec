package models

import (
	"time"

	"gorm.io/gorm"
)

// Match statuses as delivered by the league results feed.
const (
	MatchStatusScheduled = "scheduled"
	MatchStatusCompleted = "completed"
)

// Match is a fixture synced from the league results feed. Scores are
// pointers because an unknown result is distinct from 0:0.
type Match struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	ExternalID string         `gorm:"uniqueIndex;not null;size:255" json:"external_id"`
	HomeTeam   string         `gorm:"not null;size:255" json:"home_team"`
	AwayTeam   string         `gorm:"not null;size:255" json:"away_team"`
	HomeScore  *int           `json:"home_score"`
	AwayScore  *int           `json:"away_score"`
	MatchDate  time.Time      `gorm:"index" json:"match_date"`
	Venue      string         `gorm:"size:255" json:"venue"`
	Matchday   int            `json:"matchday"`
	Status     string         `gorm:"size:50;default:'scheduled';index" json:"status"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

// MatchResult is the trigger payload serialized into a generation log
// entry when a match completes. It carries everything the pipeline needs
// so that processing does not depend on the match row still existing.
type MatchResult struct {
	MatchID   string     `json:"match_id"`
	HomeTeam  string     `json:"home_team"`
	AwayTeam  string     `json:"away_team"`
	HomeScore *int       `json:"home_score"`
	AwayScore *int       `json:"away_score"`
	MatchDate *time.Time `json:"match_date"`
}

// ResultOf builds the trigger payload for a match row.
func ResultOf(m *Match) MatchResult {
	date := m.MatchDate
	return MatchResult{
		MatchID:   m.ExternalID,
		HomeTeam:  m.HomeTeam,
		AwayTeam:  m.AwayTeam,
		HomeScore: m.HomeScore,
		AwayScore: m.AwayScore,
		MatchDate: &date,
	}
}
