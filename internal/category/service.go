package category

import (
	"context"

	"finanzas/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	ListCategories(ctx context.Context) ([]*Category, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name string
	Type transaction.Type
	Icon string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Category, error) {
	icon := params.Icon
	if icon == "" {
		icon = DefaultIcon
	}

	c := &Category{
		Name: params.Name,
		Type: params.Type,
		Icon: icon,
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// List returns every category ordered by type then name.
func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}
