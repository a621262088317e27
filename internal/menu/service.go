package menu

import (
	"context"

	"cafeteria-be/internal/logger"
	"cafeteria-be/internal/user"
	"cafeteria-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	ListMenuItems(ctx context.Context, filter MenuItemFilter) ([]*MenuItem, error)
	GetMenuItem(ctx context.Context, id int) (*MenuItem, error)
	CreateMenuItem(ctx context.Context, params CreateMenuItemParams) (*MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int, params UpdateMenuItemParams) (*MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListMenuItems(ctx context.Context, filter MenuItemFilter) ([]*MenuItem, error) {
	items, err := s.repo.ListMenuItems(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*MenuItem{}
	}
	return items, nil
}

func (s *service) GetMenuItem(ctx context.Context, id int) (*MenuItem, error) {
	return s.repo.GetMenuItem(ctx, id)
}

func (s *service) CreateMenuItem(ctx context.Context, params CreateMenuItemParams) (*MenuItem, error) {
	if params.Name == "" {
		return nil, ErrNameRequired
	}
	if params.Price < 0 {
		return nil, ErrInvalidPrice
	}

	exists, err := s.repo.CategoryExists(ctx, params.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCategoryNotFound
	}

	item := &MenuItem{
		CategoryID:   params.CategoryID,
		Name:         params.Name,
		Description:  params.Description,
		Price:        params.Price,
		Availability: true,
		Image:        params.Image,
	}
	if params.Availability != nil {
		item.Availability = *params.Availability
	}

	if err := s.repo.CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// maskForRole narrows a patch to the fields the role is allowed to change.
// Fields outside the allowed set are dropped, not applied and not an error.
func maskForRole(role string, params UpdateMenuItemParams) (UpdateMenuItemParams, error) {
	switch user.Role(role) {
	case user.RoleAdmin:
		return params, nil
	case user.RoleStaff:
		if params.Availability == nil {
			return UpdateMenuItemParams{}, ErrAvailabilityRequired
		}
		return UpdateMenuItemParams{Availability: params.Availability}, nil
	default:
		return UpdateMenuItemParams{}, ErrForbiddenRole
	}
}

// UpdateMenuItem applies a role-masked patch. Staff may only toggle
// availability; Admin may change any field.
func (s *service) UpdateMenuItem(ctx context.Context, id int, params UpdateMenuItemParams) (*MenuItem, error) {
	role := utils.GetUserRoleFromContext(ctx)

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateMenuItem"),
		zap.Int("menu_item_id", id),
		zap.String("role", role),
	)

	masked, err := maskForRole(role, params)
	if err != nil {
		log.Warn("patch rejected by role mask", zap.Error(err))
		return nil, err
	}

	if masked.Price != nil && *masked.Price < 0 {
		log.Warn("negative price rejected")
		return nil, ErrInvalidPrice
	}

	if masked.CategoryID != nil {
		exists, err := s.repo.CategoryExists(ctx, *masked.CategoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			log.Warn("category not found", zap.Int("category_id", *masked.CategoryID))
			return nil, ErrCategoryNotFound
		}
	}

	item, err := s.repo.UpdateMenuItem(ctx, id, masked)
	if err != nil {
		log.Error("failed to update menu item", zap.Error(err))
		return nil, err
	}

	log.Info("menu item updated")
	return item, nil
}

func (s *service) DeleteMenuItem(ctx context.Context, id int) error {
	return s.repo.DeleteMenuItem(ctx, id)
}
