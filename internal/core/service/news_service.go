package service

import (
	"context"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

type NewsService struct {
	news  ports.NewsRepository
	teams ports.TeamRepository
}

func NewNewsService(news ports.NewsRepository, teams ports.TeamRepository) *NewsService {
	return &NewsService{news: news, teams: teams}
}

func (s *NewsService) GetByID(ctx context.Context, id int64) (*domain.News, error) {
	return s.news.FindByID(ctx, id)
}

func (s *NewsService) GetAll(ctx context.Context) ([]domain.News, error) {
	return s.news.FindAllList(ctx)
}

func (s *NewsService) GetAllPaged(ctx context.Context, spec ports.PageSpec) (*ports.Page[domain.News], error) {
	return s.news.FindAll(ctx, spec.Normalize())
}

func (s *NewsService) GetByTeam(ctx context.Context, teamID int64) ([]domain.News, error) {
	return s.news.FindByTeamID(ctx, teamID)
}

func (s *NewsService) Create(ctx context.Context, in ports.NewsInput) (*domain.News, error) {
	team, err := Resolve(ctx, s.teams, "Team", in.TeamID)
	if err != nil {
		return nil, err
	}

	news := &domain.News{
		Title:       in.Title,
		Content:     in.Content,
		PublishedAt: in.PublishedAt,
		TeamID:      team.TeamID,
	}
	return s.news.Create(ctx, news)
}

// Update re-resolves the team reference only when it changed.
func (s *NewsService) Update(ctx context.Context, id int64, in ports.NewsInput) (*domain.News, error) {
	news, err := s.news.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := ResolveChanged(ctx, s.teams, "Team", in.TeamID, news.TeamID); err != nil {
		return nil, err
	}

	news.Title = in.Title
	news.Content = in.Content
	news.PublishedAt = in.PublishedAt
	news.TeamID = in.TeamID

	return s.news.Update(ctx, news)
}

func (s *NewsService) Delete(ctx context.Context, id int64) error {
	exists, err := s.news.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFound("News", id)
	}
	return s.news.DeleteByID(ctx, id)
}
