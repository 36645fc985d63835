package service

import (
	"context"
	"errors"

	"github.com/Skotchmaster/shop_admin/internal/models"
	"github.com/Skotchmaster/shop_admin/internal/repo"
	"github.com/Skotchmaster/shop_admin/internal/transport"
	"gorm.io/gorm"
)

type ProductService struct {
	Products *repo.ProductRepo
}

func (s *ProductService) List(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	return s.Products.List(ctx, offset, limit)
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	prod, err := s.Products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return prod, nil
}

func (s *ProductService) Create(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, invalid("name", "Name cannot be blank.")
	}

	prod := &models.Product{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.Products.Create(ctx, prod); err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, req transport.UpdateProductRequest) (*models.Product, error) {
	prod, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, invalid("name", "Name cannot be blank.")
		}
		prod.Name = *req.Name
	}
	if req.Description != nil {
		prod.Description = *req.Description
	}

	if err := s.Products.Save(ctx, prod); err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if err := s.Products.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
