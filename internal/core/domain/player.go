package domain

// Player always belongs to an existing team.
type Player struct {
	PlayerID    int64  `json:"player_id" gorm:"primaryKey;column:player_id"`
	Name        string `json:"name" gorm:"not null"`
	Position    string `json:"position"`
	Age         int    `json:"age"`
	Nationality string `json:"nationality"`
	Height      int    `json:"height"`
	Weight      int    `json:"weight"`
	TeamID      int64  `json:"team_id" gorm:"not null;index"`
	Team        Team   `json:"-" gorm:"foreignKey:TeamID;references:TeamID"`
}

func (Player) TableName() string { return "players" }
