package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) FindByID(ctx context.Context, id int64) (*domain.Team, error) {
	var team domain.Team
	err := r.db.WithContext(ctx).First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("Team", id)
		}
		return nil, fmt.Errorf("find team: %w", err)
	}
	return &team, nil
}

func (r *TeamRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Team{}).Where("team_id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count teams: %w", err)
	}
	return count > 0, nil
}

func (r *TeamRepository) FindAll(ctx context.Context, spec ports.PageSpec) (*ports.Page[domain.Team], error) {
	var (
		teams []domain.Team
		total int64
	)
	q := r.db.WithContext(ctx).Model(&domain.Team{})
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count teams: %w", err)
	}
	err := q.Order("team_id").Offset(spec.Offset()).Limit(spec.Size).Find(&teams).Error
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return ports.NewPage(teams, total, spec), nil
}

func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		return nil, fmt.Errorf("insert team: %w", err)
	}
	return team, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	if err := r.db.WithContext(ctx).Save(team).Error; err != nil {
		return nil, fmt.Errorf("update team: %w", err)
	}
	return team, nil
}

func (r *TeamRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Team{}, id).Error; err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}
