package category

import "context"

// Service defines the business logic for menu categories.
type Service interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	GetCategory(ctx context.Context, id int) (*Category, error)
	CreateCategory(ctx context.Context, name string) (*Category, error)
	UpdateCategory(ctx context.Context, id int, name string) (*Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []*Category{}
	}
	return categories, nil
}

func (s *service) GetCategory(ctx context.Context, id int) (*Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *service) CreateCategory(ctx context.Context, name string) (*Category, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	return s.repo.CreateCategory(ctx, name)
}

func (s *service) UpdateCategory(ctx context.Context, id int, name string) (*Category, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	return s.repo.UpdateCategory(ctx, id, name)
}

func (s *service) DeleteCategory(ctx context.Context, id int) error {
	return s.repo.DeleteCategory(ctx, id)
}
