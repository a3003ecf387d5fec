package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/svw-wertheim/spielbericht/internal/config"
	"github.com/svw-wertheim/spielbericht/internal/models"
)

// LeagueSyncService pulls fixtures and the league table from the
// association's results API. When a match transitions to completed with
// both scores present it enqueues a content-generation entry, which is the
// external trigger the pipeline runs on.
type LeagueSyncService struct {
	config            *config.LeagueAPIConfig
	db                *gorm.DB
	logger            *zap.Logger
	client            *http.Client
	generationService *GenerationService
}

type leagueMatchesResponse struct {
	Matches []LeagueMatch `json:"matches"`
}

// LeagueMatch is one fixture as delivered by the results API.
type LeagueMatch struct {
	ID        string `json:"id"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
	Kickoff   string `json:"kickoff"`
	Venue     string `json:"venue"`
	Matchday  int    `json:"matchday"`
	Status    string `json:"status"`
}

type leagueStandingsResponse struct {
	Standings []LeagueStandingRow `json:"standings"`
}

// LeagueStandingRow is one league table row as delivered by the API.
type LeagueStandingRow struct {
	Position     int    `json:"position"`
	TeamName     string `json:"team_name"`
	Played       int    `json:"played"`
	Won          int    `json:"won"`
	Drawn        int    `json:"drawn"`
	Lost         int    `json:"lost"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	Points       int    `json:"points"`
}

func NewLeagueSyncService(cfg *config.LeagueAPIConfig, db *gorm.DB, logger *zap.Logger, generationService *GenerationService) *LeagueSyncService {
	return &LeagueSyncService{
		config:            cfg,
		db:                db,
		logger:            logger,
		generationService: generationService,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Sync pulls matches and standings once. Per-match failures are logged and
// skipped; a transport failure aborts the sync.
func (s *LeagueSyncService) Sync() error {
	s.logger.Info("Starting league sync")

	matches, err := s.fetchMatches()
	if err != nil {
		return fmt.Errorf("failed to fetch matches: %w", err)
	}

	for _, match := range matches {
		if err := s.processMatch(match); err != nil {
			s.logger.Error("Failed to process match", zap.String("match_id", match.ID), zap.Error(err))
			continue
		}
	}

	if err := s.syncStandings(); err != nil {
		return err
	}

	s.logger.Info("League sync completed", zap.Int("matches", len(matches)))
	return nil
}

func (s *LeagueSyncService) fetchMatches() ([]LeagueMatch, error) {
	url := fmt.Sprintf("%s/seasons/%s/matches", s.config.BaseURL, s.config.SeasonID)

	var response leagueMatchesResponse
	if err := s.get(url, &response); err != nil {
		return nil, err
	}
	return response.Matches, nil
}

// processMatch upserts a fixture and enqueues content generation when the
// stored fixture transitions to completed with both scores present.
func (s *LeagueSyncService) processMatch(incoming LeagueMatch) error {
	kickoff, err := time.Parse(time.RFC3339, incoming.Kickoff)
	if err != nil {
		return fmt.Errorf("failed to parse kickoff time: %w", err)
	}

	status := models.MatchStatusScheduled
	if incoming.Status == "finished" {
		status = models.MatchStatusCompleted
	}

	var existing models.Match
	result := s.db.Where("external_id = ?", incoming.ID).First(&existing)
	if result.Error != nil && result.Error != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to query existing match: %w", result.Error)
	}

	if result.Error == gorm.ErrRecordNotFound {
		match := models.Match{
			ExternalID: incoming.ID,
			HomeTeam:   incoming.HomeTeam,
			AwayTeam:   incoming.AwayTeam,
			HomeScore:  incoming.HomeScore,
			AwayScore:  incoming.AwayScore,
			MatchDate:  kickoff,
			Venue:      incoming.Venue,
			Matchday:   incoming.Matchday,
			Status:     status,
		}
		if err := s.db.Create(&match).Error; err != nil {
			return fmt.Errorf("failed to create match: %w", err)
		}

		s.logger.Info("Created match",
			zap.String("match_id", incoming.ID),
			zap.String("home", incoming.HomeTeam),
			zap.String("away", incoming.AwayTeam))

		if status == models.MatchStatusCompleted {
			return s.enqueueIfScored(&match)
		}
		return nil
	}

	wasCompleted := existing.Status == models.MatchStatusCompleted

	existing.HomeTeam = incoming.HomeTeam
	existing.AwayTeam = incoming.AwayTeam
	existing.HomeScore = incoming.HomeScore
	existing.AwayScore = incoming.AwayScore
	existing.MatchDate = kickoff
	existing.Venue = incoming.Venue
	existing.Matchday = incoming.Matchday
	existing.Status = status

	if err := s.db.Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}

	if !wasCompleted && status == models.MatchStatusCompleted {
		return s.enqueueIfScored(&existing)
	}
	return nil
}

// enqueueIfScored enqueues generation only when both scores are known; a
// completed match without scores would classify as no_result anyway.
func (s *LeagueSyncService) enqueueIfScored(match *models.Match) error {
	if match.HomeScore == nil || match.AwayScore == nil {
		s.logger.Warn("Completed match has no scores, skipping generation",
			zap.String("match_id", match.ExternalID))
		return nil
	}

	_, err := s.generationService.EnqueueMatchResult(models.ResultOf(match))
	return err
}

// syncStandings replaces the league table wholesale.
func (s *LeagueSyncService) syncStandings() error {
	url := fmt.Sprintf("%s/seasons/%s/standings", s.config.BaseURL, s.config.SeasonID)

	var response leagueStandingsResponse
	if err := s.get(url, &response); err != nil {
		return fmt.Errorf("failed to fetch standings: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.LeagueStanding{}).Error; err != nil {
			return fmt.Errorf("failed to clear standings: %w", err)
		}

		for _, row := range response.Standings {
			standing := models.LeagueStanding{
				Position:     row.Position,
				TeamName:     row.TeamName,
				Played:       row.Played,
				Won:          row.Won,
				Drawn:        row.Drawn,
				Lost:         row.Lost,
				GoalsFor:     row.GoalsFor,
				GoalsAgainst: row.GoalsAgainst,
				Points:       row.Points,
			}
			if err := tx.Create(&standing).Error; err != nil {
				return fmt.Errorf("failed to insert standing: %w", err)
			}
		}
		return nil
	})
}

func (s *LeagueSyncService) get(url string, out interface{}) error {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if s.config.APIKey != "" {
		req.Header.Set("X-API-Key", s.config.APIKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("league API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
