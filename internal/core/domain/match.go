package domain

import "time"

// Match references two existing teams. Home and away may not be resolved
// lazily: both must exist before the row is written.
type Match struct {
	MatchID    int64     `json:"match_id" gorm:"primaryKey;column:match_id"`
	MatchDate  time.Time `json:"match_date"`
	HomeScore  int       `json:"home_score"`
	AwayScore  int       `json:"away_score"`
	HomeTeamID int64     `json:"home_team_id" gorm:"not null;index"`
	AwayTeamID int64     `json:"away_team_id" gorm:"not null;index"`
	HomeTeam   Team      `json:"-" gorm:"foreignKey:HomeTeamID;references:TeamID"`
	AwayTeam   Team      `json:"-" gorm:"foreignKey:AwayTeamID;references:TeamID"`
}

func (Match) TableName() string { return "matches" }
