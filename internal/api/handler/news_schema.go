package handler

import "time"

type newsRequest struct {
	Title       string    `json:"title" validate:"required"`
	Content     string    `json:"content" validate:"required"`
	PublishedAt time.Time `json:"published_at"`
	TeamID      int64     `json:"team_id" validate:"required,gt=0"`
}

type newsResponse struct {
	NewsID      int64     `json:"news_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"published_at"`
	TeamID      int64     `json:"team_id"`
}
