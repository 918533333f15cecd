package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

type NewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) FindByID(ctx context.Context, id int64) (*domain.News, error) {
	var news domain.News
	err := r.db.WithContext(ctx).First(&news, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("News", id)
		}
		return nil, fmt.Errorf("find news: %w", err)
	}
	return &news, nil
}

func (r *NewsRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.News{}).Where("news_id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count news: %w", err)
	}
	return count > 0, nil
}

func (r *NewsRepository) FindAll(ctx context.Context, spec ports.PageSpec) (*ports.Page[domain.News], error) {
	var (
		items []domain.News
		total int64
	)
	q := r.db.WithContext(ctx).Model(&domain.News{})
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count news: %w", err)
	}
	err := q.Order("news_id").Offset(spec.Offset()).Limit(spec.Size).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return ports.NewPage(items, total, spec), nil
}

func (r *NewsRepository) FindAllList(ctx context.Context) ([]domain.News, error) {
	var items []domain.News
	if err := r.db.WithContext(ctx).Order("news_id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return items, nil
}

func (r *NewsRepository) FindByTeamID(ctx context.Context, teamID int64) ([]domain.News, error) {
	var items []domain.News
	err := r.db.WithContext(ctx).Where("team_id = ?", teamID).Order("published_at desc").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list news by team: %w", err)
	}
	return items, nil
}

func (r *NewsRepository) Create(ctx context.Context, news *domain.News) (*domain.News, error) {
	if err := r.db.WithContext(ctx).Omit("Team").Create(news).Error; err != nil {
		return nil, fmt.Errorf("insert news: %w", err)
	}
	return news, nil
}

func (r *NewsRepository) Update(ctx context.Context, news *domain.News) (*domain.News, error) {
	if err := r.db.WithContext(ctx).Omit("Team").Save(news).Error; err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}
	return news, nil
}

func (r *NewsRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&domain.News{}, id).Error; err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	return nil
}
