package domain

// PlayerStats is a per-player, per-match statistics row. Both references
// must resolve before the row is written.
type PlayerStats struct {
	StatID        int64  `json:"stat_id" gorm:"primaryKey;column:stat_id"`
	PlayerID      int64  `json:"player_id" gorm:"not null;index"`
	MatchID       int64  `json:"match_id" gorm:"not null;index"`
	Player        Player `json:"-" gorm:"foreignKey:PlayerID;references:PlayerID"`
	Match         Match  `json:"-" gorm:"foreignKey:MatchID;references:MatchID"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	YellowCards   int    `json:"yellow_cards"`
	RedCards      int    `json:"red_cards"`
	MinutesPlayed int    `json:"minutes_played"`
}

func (PlayerStats) TableName() string { return "player_stats" }
