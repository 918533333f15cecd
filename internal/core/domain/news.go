package domain

import "time"

// News is always linked to an existing team.
type News struct {
	NewsID      int64     `json:"news_id" gorm:"primaryKey;column:news_id"`
	Title       string    `json:"title" gorm:"not null"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"published_at"`
	TeamID      int64     `json:"team_id" gorm:"not null;index"`
	Team        Team      `json:"-" gorm:"foreignKey:TeamID;references:TeamID"`
}

func (News) TableName() string { return "news" }
