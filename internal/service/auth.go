package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/hash"
	"github.com/Skotchmaster/marketplace/internal/logging"
	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/repo"
	"github.com/Skotchmaster/marketplace/internal/tokens"
	"github.com/Skotchmaster/marketplace/internal/transport"
)

var (
	ErrInvalidRole = errors.New("unknown role")
	// ErrInvalidCredentials is returned for a missing user and for a wrong
	// password alike, so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid refresh token")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	Repo          *repo.GormRepo
	JWTSecret     []byte
	RefreshSecret []byte
}

func (s *AuthService) Register(ctx context.Context, email, password, role string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	role = strings.ToUpper(role)
	if !models.ValidRole(role) {
		l.Warn("register_failed", "status", 400, "reason", "unknown role")
		return nil, ErrInvalidRole
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_failed", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: pwHash,
		Role:         role,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			l.Warn("register_failed", "status", 400, "reason", "email already exists")
			return nil, err
		}
		l.Error("register_failed", "status", 500, "error", err)
		return nil, err
	}

	return &user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*transport.AuthResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "invalid credentials")
			return nil, ErrInvalidCredentials
		}
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "invalid credentials")
		return nil, ErrInvalidCredentials
	}

	access, err := tokens.NewAccessToken(user.Email, user.Role, s.JWTSecret)
	if err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}
	refresh, err := tokens.NewRefreshToken(user.Email, s.RefreshSecret)
	if err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	if err := s.Repo.CreateRefreshToken(ctx, user.Email, refresh); err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	return &transport.AuthResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	l := logging.FromContext(ctx).With("svc", "auth.logout")

	if err := s.Repo.RevokeRefresh(ctx, refreshToken); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("logout_failed", "status", 401, "reason", "unknown refresh token")
			return ErrInvalidToken
		}
		l.Error("logout_failed", "status", 500, "error", err)
		return err
	}
	return nil
}

// Refresh validates the stored row, mints a new access+refresh pair and
// rotates the row in place. The previous refresh token string is unusable
// once the rotation lands.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*transport.AuthResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.refresh")

	row, err := s.Repo.RefreshByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("refresh_failed", "status", 401, "reason", "unknown refresh token")
			return nil, ErrInvalidToken
		}
		l.Error("refresh_failed", "status", 500, "error", err)
		return nil, err
	}
	if row.Revoked || row.ExpiresAt.Before(time.Now()) {
		l.Warn("refresh_failed", "status", 401, "reason", "token expired or revoked")
		return nil, repo.ErrTokenExpiredOrRevoked
	}

	user, err := s.Repo.UserByEmail(ctx, row.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("refresh_failed", "status", 404, "reason", "user not found")
			return nil, ErrUserNotFound
		}
		l.Error("refresh_failed", "status", 500, "error", err)
		return nil, err
	}

	access, err := tokens.NewAccessToken(user.Email, user.Role, s.JWTSecret)
	if err != nil {
		l.Error("refresh_failed", "status", 500, "error", err)
		return nil, err
	}
	newRefresh, err := tokens.NewRefreshToken(user.Email, s.RefreshSecret)
	if err != nil {
		l.Error("refresh_failed", "status", 500, "error", err)
		return nil, err
	}

	if err := s.Repo.RotateRefresh(ctx, refreshToken, newRefresh); err != nil {
		if errors.Is(err, repo.ErrTokenExpiredOrRevoked) {
			l.Warn("refresh_failed", "status", 401, "reason", "lost rotation race")
			return nil, err
		}
		l.Error("refresh_failed", "status", 500, "error", err)
		return nil, err
	}

	return &transport.AuthResponse{AccessToken: access, RefreshToken: newRefresh}, nil
}
