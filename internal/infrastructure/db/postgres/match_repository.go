package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) FindByID(ctx context.Context, id int64) (*domain.Match, error) {
	var match domain.Match
	err := r.db.WithContext(ctx).First(&match, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("Match", id)
		}
		return nil, fmt.Errorf("find match: %w", err)
	}
	return &match, nil
}

func (r *MatchRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Match{}).Where("match_id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count matches: %w", err)
	}
	return count > 0, nil
}

func (r *MatchRepository) FindAll(ctx context.Context, spec ports.PageSpec) (*ports.Page[domain.Match], error) {
	var (
		matches []domain.Match
		total   int64
	)
	q := r.db.WithContext(ctx).Model(&domain.Match{})
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count matches: %w", err)
	}
	err := q.Order("match_id").Offset(spec.Offset()).Limit(spec.Size).Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return ports.NewPage(matches, total, spec), nil
}

func (r *MatchRepository) FindByHomeTeamID(ctx context.Context, teamID int64) ([]domain.Match, error) {
	var matches []domain.Match
	err := r.db.WithContext(ctx).Where("home_team_id = ?", teamID).Order("match_date").Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("list matches by home team: %w", err)
	}
	return matches, nil
}

func (r *MatchRepository) FindByAwayTeamID(ctx context.Context, teamID int64) ([]domain.Match, error) {
	var matches []domain.Match
	err := r.db.WithContext(ctx).Where("away_team_id = ?", teamID).Order("match_date").Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("list matches by away team: %w", err)
	}
	return matches, nil
}

func (r *MatchRepository) Create(ctx context.Context, match *domain.Match) (*domain.Match, error) {
	if err := r.db.WithContext(ctx).Omit("HomeTeam", "AwayTeam").Create(match).Error; err != nil {
		return nil, fmt.Errorf("insert match: %w", err)
	}
	return match, nil
}
