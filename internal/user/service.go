package user

import (
	"context"

	"cafeteria-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Authenticate(ctx context.Context, email, password string) (*User, string, error)
	ListStaff(ctx context.Context) ([]*User, error)
	CreateStaff(ctx context.Context, params CreateStaffParams) (*User, error)
	UpdateStaff(ctx context.Context, id int, params UpdateStaffParams) (*User, error)
	DeleteStaff(ctx context.Context, actorID, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Authenticate(ctx context.Context, email, password string) (*User, string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Authenticate"),
	)

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		log.Warn("login attempt for unknown email", zap.Error(err))
		return nil, "", ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Warn("login attempt with wrong password", zap.Int("user_id", u.ID))
		return nil, "", ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		log.Error("failed to sign token", zap.Error(err))
		return nil, "", err
	}

	log.Info("login success", zap.Int("user_id", u.ID), zap.String("role", string(u.Role)))
	return u, token, nil
}

func (s *service) ListStaff(ctx context.Context) ([]*User, error) {
	return s.repo.ListStaff(ctx)
}

func (s *service) CreateStaff(ctx context.Context, params CreateStaffParams) (*User, error) {
	if params.Role != RoleStaff && params.Role != RoleAdmin {
		return nil, ErrInvalidRole
	}
	if len(params.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	hash, err := HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Name:     params.Name,
		Email:    params.Email,
		Password: hash,
		Role:     params.Role,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) UpdateStaff(ctx context.Context, id int, params UpdateStaffParams) (*User, error) {
	if params.Role != nil && *params.Role != RoleStaff && *params.Role != RoleAdmin {
		return nil, ErrInvalidRole
	}

	if params.Password != nil {
		if len(*params.Password) < 8 {
			return nil, ErrPasswordTooShort
		}
		hash, err := HashPassword(*params.Password)
		if err != nil {
			return nil, err
		}
		params.Password = &hash
	}

	return s.repo.Update(ctx, id, params)
}

func (s *service) DeleteStaff(ctx context.Context, actorID, id int) error {
	if actorID == id {
		return ErrSelfDelete
	}
	return s.repo.Delete(ctx, id)
}
