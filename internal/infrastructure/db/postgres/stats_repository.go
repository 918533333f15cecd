package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

type PlayerStatsRepository struct {
	db *gorm.DB
}

func NewPlayerStatsRepository(db *gorm.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) FindByID(ctx context.Context, id int64) (*domain.PlayerStats, error) {
	var stats domain.PlayerStats
	err := r.db.WithContext(ctx).First(&stats, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("PlayerStats", id)
		}
		return nil, fmt.Errorf("find player stats: %w", err)
	}
	return &stats, nil
}

func (r *PlayerStatsRepository) FindAll(ctx context.Context, spec ports.PageSpec) (*ports.Page[domain.PlayerStats], error) {
	var (
		items []domain.PlayerStats
		total int64
	)
	q := r.db.WithContext(ctx).Model(&domain.PlayerStats{})
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count player stats: %w", err)
	}
	err := q.Order("stat_id").Offset(spec.Offset()).Limit(spec.Size).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list player stats: %w", err)
	}
	return ports.NewPage(items, total, spec), nil
}

func (r *PlayerStatsRepository) FindAllList(ctx context.Context) ([]domain.PlayerStats, error) {
	var items []domain.PlayerStats
	if err := r.db.WithContext(ctx).Order("stat_id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list player stats: %w", err)
	}
	return items, nil
}

func (r *PlayerStatsRepository) FindWithRedCards(ctx context.Context) ([]domain.PlayerStats, error) {
	var items []domain.PlayerStats
	err := r.db.WithContext(ctx).Where("red_cards > ?", 0).Order("stat_id").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list player stats with red cards: %w", err)
	}
	return items, nil
}

func (r *PlayerStatsRepository) FindWithMinGoals(ctx context.Context, minGoals int) ([]domain.PlayerStats, error) {
	var items []domain.PlayerStats
	err := r.db.WithContext(ctx).Where("goals >= ?", minGoals).Order("stat_id").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list player stats by goals: %w", err)
	}
	return items, nil
}

func (r *PlayerStatsRepository) Create(ctx context.Context, stats *domain.PlayerStats) (*domain.PlayerStats, error) {
	if err := r.db.WithContext(ctx).Omit("Player", "Match").Create(stats).Error; err != nil {
		return nil, fmt.Errorf("insert player stats: %w", err)
	}
	return stats, nil
}
