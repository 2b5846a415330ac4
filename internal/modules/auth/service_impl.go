package auth

import (
	"context"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kaletesis/stoktakip-backend/internal/apperr"
	"github.com/kaletesis/stoktakip-backend/internal/modules/user"
)

const tokenTTL = 24 * time.Hour

type service struct {
	userRepo user.Repository
	jwtKey   []byte
	logger   *zap.Logger
}

// NewService creates a new auth service.
func NewService(userRepo user.Repository, jwtSecret string, logger *zap.Logger) Service {
	return &service{userRepo: userRepo, jwtKey: []byte(jwtSecret), logger: logger}
}

func (s *service) Login(ctx context.Context, username, password string) (string, *user.User, error) {
	if username == "" || password == "" {
		return "", nil, apperr.Validation("Kullanıcı adı ve şifre boş olamaz")
	}

	u, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			// Same message for unknown user and wrong password.
			return "", nil, apperr.Validation("Hatalı kullanıcı adı veya şifre!")
		}
		s.logger.Error("failed to load user for login", zap.Error(err))
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.Validation("Hatalı kullanıcı adı veya şifre!")
	}

	expirationTime := time.Now().Add(tokenTTL)
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		ExpiresAt: expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return "", nil, apperr.Internal(err)
	}

	s.logger.Info("user logged in", zap.String("username", u.Username))
	return tokenString, u, nil
}

func (s *service) CheckPermission(ctx context.Context, userID uuid.UUID, cap Capability) bool {
	u, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return false
	}
	return HasCapability(u, cap)
}

func (s *service) UserFromToken(ctx context.Context, tokenString string) (*user.User, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Validation("Geçersiz oturum")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperr.Validation("Geçersiz oturum")
	}
	return s.userRepo.GetUserByID(ctx, id)
}
