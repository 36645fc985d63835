package service

import (
	"context"
	"errors"

	"github.com/Skotchmaster/shop_admin/internal/hash"
	"github.com/Skotchmaster/shop_admin/internal/models"
	"github.com/Skotchmaster/shop_admin/internal/repo"
	"github.com/Skotchmaster/shop_admin/internal/transport"
	"gorm.io/gorm"
)

type UserService struct {
	Users *repo.UserRepo
}

func (s *UserService) List(ctx context.Context, offset, limit int) (int64, []models.User, error) {
	return s.Users.List(ctx, offset, limit)
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, req transport.RegisterRequest) (*models.User, error) {
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
			return nil, err
		}
		if taken {
			fields["login"] = "Login has already been taken."
		}
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Login:        req.Login,
		PasswordHash: passwordHash,
		Role:         req.Role,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, req transport.UpdateUserRequest) (*models.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if req.Name != nil {
		if *req.Name == "" {
			fields["name"] = "Name cannot be blank."
		} else {
			user.Name = *req.Name
		}
	}
	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			fields["role"] = "Role is invalid."
		} else {
			user.Role = *req.Role
		}
	}
	if req.Login != nil {
		if *req.Login == "" {
			user.Login = nil
		} else {
			taken, err := s.Users.LoginTaken(ctx, *req.Login, id)
			if err != nil {
				return nil, err
			}
			if taken {
				fields["login"] = "Login has already been taken."
			} else {
				user.Login = req.Login
			}
		}
	}
	if req.Password != nil {
		if *req.Password == "" {
			fields["password"] = "Password cannot be blank."
		} else {
			passwordHash, err := hash.HashPassword(*req.Password)
			if err != nil {
				return nil, err
			}
			user.PasswordHash = passwordHash
		}
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.Users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	if err := s.Users.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
