package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

type PlayerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) FindByID(ctx context.Context, id int64) (*domain.Player, error) {
	var player domain.Player
	err := r.db.WithContext(ctx).First(&player, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("Player", id)
		}
		return nil, fmt.Errorf("find player: %w", err)
	}
	return &player, nil
}

func (r *PlayerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Player{}).Where("player_id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count players: %w", err)
	}
	return count > 0, nil
}

func (r *PlayerRepository) FindAll(ctx context.Context, spec ports.PageSpec) (*ports.Page[domain.Player], error) {
	return r.page(ctx, r.db.WithContext(ctx).Model(&domain.Player{}), spec)
}

func (r *PlayerRepository) FindAllList(ctx context.Context) ([]domain.Player, error) {
	var players []domain.Player
	if err := r.db.WithContext(ctx).Order("player_id").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (r *PlayerRepository) FindByNationality(ctx context.Context, nationality string, spec ports.PageSpec) (*ports.Page[domain.Player], error) {
	q := r.db.WithContext(ctx).Model(&domain.Player{}).Where("nationality = ?", nationality)
	return r.page(ctx, q, spec)
}

func (r *PlayerRepository) FindByTeamID(ctx context.Context, teamID int64, spec ports.PageSpec) (*ports.Page[domain.Player], error) {
	q := r.db.WithContext(ctx).Model(&domain.Player{}).Where("team_id = ?", teamID)
	return r.page(ctx, q, spec)
}

func (r *PlayerRepository) Create(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	if err := r.db.WithContext(ctx).Omit("Team").Create(player).Error; err != nil {
		return nil, fmt.Errorf("insert player: %w", err)
	}
	return player, nil
}

func (r *PlayerRepository) Update(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	if err := r.db.WithContext(ctx).Omit("Team").Save(player).Error; err != nil {
		return nil, fmt.Errorf("update player: %w", err)
	}
	return player, nil
}

func (r *PlayerRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Player{}, id).Error; err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) page(ctx context.Context, q *gorm.DB, spec ports.PageSpec) (*ports.Page[domain.Player], error) {
	var (
		players []domain.Player
		total   int64
	)
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count players: %w", err)
	}
	err := q.Order("player_id").Offset(spec.Offset()).Limit(spec.Size).Find(&players).Error
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return ports.NewPage(players, total, spec), nil
}
