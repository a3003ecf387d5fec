package models

import (
	"time"
)

// LeagueStanding is one row of the current league table, replaced
// wholesale on every league sync.
type LeagueStanding struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Position     int       `gorm:"not null;index" json:"position"`
	TeamName     string    `gorm:"not null;size:255" json:"team_name"`
	Played       int       `gorm:"default:0" json:"played"`
	Won          int       `gorm:"default:0" json:"won"`
	Drawn        int       `gorm:"default:0" json:"drawn"`
	Lost         int       `gorm:"default:0" json:"lost"`
	GoalsFor     int       `gorm:"default:0" json:"goals_for"`
	GoalsAgainst int       `gorm:"default:0" json:"goals_against"`
	Points       int       `gorm:"default:0" json:"points"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
