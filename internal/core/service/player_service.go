package service

import (
	"context"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

type PlayerService struct {
	players ports.PlayerRepository
	teams   ports.TeamRepository
}

func NewPlayerService(players ports.PlayerRepository, teams ports.TeamRepository) *PlayerService {
	return &PlayerService{players: players, teams: teams}
}

func (s *PlayerService) GetByID(ctx context.Context, id int64) (*domain.Player, error) {
	return s.players.FindByID(ctx, id)
}

func (s *PlayerService) GetAll(ctx context.Context) ([]domain.Player, error) {
	return s.players.FindAllList(ctx)
}

func (s *PlayerService) GetAllPaged(ctx context.Context, spec ports.PageSpec) (*ports.Page[domain.Player], error) {
	return s.players.FindAll(ctx, spec.Normalize())
}

func (s *PlayerService) GetByNationality(ctx context.Context, nationality string, spec ports.PageSpec) (*ports.Page[domain.Player], error) {
	return s.players.FindByNationality(ctx, nationality, spec.Normalize())
}

func (s *PlayerService) GetByTeam(ctx context.Context, teamID int64, spec ports.PageSpec) (*ports.Page[domain.Player], error) {
	return s.players.FindByTeamID(ctx, teamID, spec.Normalize())
}

// Create validates the team reference before anything is written.
func (s *PlayerService) Create(ctx context.Context, in ports.PlayerInput) (*domain.Player, error) {
	team, err := Resolve(ctx, s.teams, "Team", in.TeamID)
	if err != nil {
		return nil, err
	}

	player := &domain.Player{
		Name:        in.Name,
		Position:    in.Position,
		Age:         in.Age,
		Nationality: in.Nationality,
		Height:      in.Height,
		Weight:      in.Weight,
		TeamID:      team.TeamID,
	}
	return s.players.Create(ctx, player)
}

// Update re-resolves the team reference only when it changed.
func (s *PlayerService) Update(ctx context.Context, id int64, in ports.PlayerInput) (*domain.Player, error) {
	player, err := s.players.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := ResolveChanged(ctx, s.teams, "Team", in.TeamID, player.TeamID); err != nil {
		return nil, err
	}

	player.Name = in.Name
	player.Position = in.Position
	player.Age = in.Age
	player.Nationality = in.Nationality
	player.Height = in.Height
	player.Weight = in.Weight
	player.TeamID = in.TeamID

	return s.players.Update(ctx, player)
}

func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	exists, err := s.players.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFound("Player", id)
	}
	return s.players.DeleteByID(ctx, id)
}
