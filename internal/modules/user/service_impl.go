package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kaletesis/stoktakip-backend/internal/apperr"
)

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, apperr.Validation("Kullanıcı adı ve şifre boş olamaz")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	u := &User{
		ID:                 uuid.New(),
		Username:           username,
		PasswordHash:       string(hashedPassword),
		IsAdmin:            req.IsAdmin,
		CanAddProduct:      req.CanAddProduct,
		CanViewReports:     req.CanViewReports,
		CanManageInventory: req.CanManageInventory,
	}

	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.String("user_id", u.ID.String()),
		zap.String("username", u.Username),
		zap.Bool("is_admin", u.IsAdmin))
	return u, nil
}

func (s *service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *service) UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*User, error) {
	if req.Password == nil && req.IsAdmin == nil && req.CanAddProduct == nil &&
		req.CanViewReports == nil && req.CanManageInventory == nil {
		return nil, apperr.Validation("Güncellenecek alan belirtilmedi")
	}

	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Password != nil {
		if *req.Password == "" {
			return nil, apperr.Validation("Şifre boş olamaz")
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		u.PasswordHash = string(hashedPassword)
	}
	if req.IsAdmin != nil {
		u.IsAdmin = *req.IsAdmin
	}
	if req.CanAddProduct != nil {
		u.CanAddProduct = *req.CanAddProduct
	}
	if req.CanViewReports != nil {
		u.CanViewReports = *req.CanViewReports
	}
	if req.CanManageInventory != nil {
		u.CanManageInventory = *req.CanManageInventory
	}

	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", zap.String("user_id", u.ID.String()))
	return u, nil
}

func (s *service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("user_id", id.String()))
	return nil
}
