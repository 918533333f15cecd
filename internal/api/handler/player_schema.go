package handler

type playerRequest struct {
	Name        string `json:"name" validate:"required"`
	Position    string `json:"position" validate:"required"`
	Age         int    `json:"age" validate:"required,gt=0"`
	Nationality string `json:"nationality"`
	Height      int    `json:"height" validate:"omitempty,gt=0"`
	Weight      int    `json:"weight" validate:"omitempty,gt=0"`
	TeamID      int64  `json:"team_id" validate:"required,gt=0"`
}

type playerResponse struct {
	PlayerID    int64  `json:"player_id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Age         int    `json:"age"`
	Nationality string `json:"nationality"`
	Height      int    `json:"height"`
	Weight      int    `json:"weight"`
	TeamID      int64  `json:"team_id"`
}
