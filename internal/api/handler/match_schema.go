package handler

import "time"

type matchRequest struct {
	MatchDate  time.Time `json:"match_date" validate:"required"`
	HomeScore  int       `json:"home_score" validate:"gte=0"`
	AwayScore  int       `json:"away_score" validate:"gte=0"`
	HomeTeamID int64     `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID int64     `json:"away_team_id" validate:"required,gt=0"`
}

type matchResponse struct {
	MatchID    int64     `json:"match_id"`
	MatchDate  time.Time `json:"match_date"`
	HomeScore  int       `json:"home_score"`
	AwayScore  int       `json:"away_score"`
	HomeTeamID int64     `json:"home_team_id"`
	AwayTeamID int64     `json:"away_team_id"`
}
