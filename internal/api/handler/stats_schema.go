package handler

type playerStatsRequest struct {
	PlayerID      int64 `json:"player_id" validate:"required,gt=0"`
	MatchID       int64 `json:"match_id" validate:"required,gt=0"`
	Goals         int   `json:"goals" validate:"gte=0"`
	Assists       int   `json:"assists" validate:"gte=0"`
	YellowCards   int   `json:"yellow_cards" validate:"gte=0"`
	RedCards      int   `json:"red_cards" validate:"gte=0"`
	MinutesPlayed int   `json:"minutes_played" validate:"gte=0"`
}

type playerStatsResponse struct {
	StatID        int64 `json:"stat_id"`
	PlayerID      int64 `json:"player_id"`
	MatchID       int64 `json:"match_id"`
	Goals         int   `json:"goals"`
	Assists       int   `json:"assists"`
	YellowCards   int   `json:"yellow_cards"`
	RedCards      int   `json:"red_cards"`
	MinutesPlayed int   `json:"minutes_played"`
}
