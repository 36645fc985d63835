package service

import (
	"context"
	"errors"
	"time"

	"github.com/Skotchmaster/shop_admin/internal/hash"
	"github.com/Skotchmaster/shop_admin/internal/models"
	"github.com/Skotchmaster/shop_admin/internal/repo"
	"github.com/Skotchmaster/shop_admin/internal/tokens"
	"github.com/Skotchmaster/shop_admin/internal/transport"
	"gorm.io/gorm"
)

type AuthService struct {
	Users  *repo.UserRepo
	Tokens *tokens.Service
}

func (s *AuthService) GetToken(ctx context.Context, req transport.GetTokenRequest) (string, error) {
	user, err := s.Users.GetByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return "", ErrInvalidCredentials
	}

	return s.Tokens.Issue(user.ID, time.Now())
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*models.User, string, error) {
	fields := map[string]string{}
	if req.Name == "" {
		fields["name"] = "Name cannot be blank."
	}
	if req.Password == "" {
		fields["password"] = "Password cannot be blank."
	}
	if req.Role == "" {
		fields["role"] = "Role cannot be blank."
	} else if !models.ValidRole(req.Role) {
		fields["role"] = "Role is invalid."
	}
	if req.Login != nil && *req.Login != "" {
		taken, err := s.Users.LoginTaken(ctx, *req.Login, 0)
		if err != nil {
			return nil, "", err
		}
		if taken {
			fields["login"] = "Login has already been taken."
		}
	}
	if len(fields) > 0 {
		return nil, "", &ValidationError{Fields: fields}
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:         req.Name,
		Login:        req.Login,
		PasswordHash: passwordHash,
		Role:         req.Role,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.Tokens.Issue(user.ID, time.Now())
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
