package domain

// Team is referenced by players, matches, and news items.
type Team struct {
	TeamID      int64  `json:"team_id" gorm:"primaryKey;column:team_id"`
	Name        string `json:"name" gorm:"not null"`
	City        string `json:"city"`
	Stadium     string `json:"stadium"`
	FoundedYear int    `json:"founded_year"`
}

func (Team) TableName() string { return "teams" }
