package handler

type teamRequest struct {
	Name        string `json:"name" validate:"required"`
	City        string `json:"city"`
	Stadium     string `json:"stadium"`
	FoundedYear int    `json:"founded_year" validate:"omitempty,gte=1850"`
}

type teamResponse struct {
	TeamID      int64  `json:"team_id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Stadium     string `json:"stadium"`
	FoundedYear int    `json:"founded_year"`
}
