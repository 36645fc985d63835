package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Skotchmaster/shop_admin/internal/models"
	"github.com/Skotchmaster/shop_admin/internal/repo"
	"github.com/Skotchmaster/shop_admin/internal/transport"
	"gorm.io/gorm"
)

// OrderService writes the order aggregate: the order row and its line
// set always change inside one transaction, so a failing line insert
// leaves the previous state untouched.
type OrderService struct {
	Orders *repo.OrderRepo
}

func (s *OrderService) List(ctx context.Context, offset, limit int) (int64, []models.Order, error) {
	return s.Orders.List(ctx, offset, limit)
}

func (s *OrderService) Get(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Create(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if req.UserID == 0 {
		return nil, invalid("user_id", "User ID cannot be blank.")
	}
	exists, err := s.Orders.UserExists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, invalid("user_id", "User ID is invalid.")
	}

	order := &models.Order{
		UserID:        req.UserID,
		PaymentStatus: "unpaid",
	}

	err = s.Orders.Transaction(ctx, func(tx *repo.OrderRepo) error {
		if err := tx.Create(ctx, order); err != nil {
			return err
		}
		return replaceLines(ctx, tx, order, req.Products)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, order.ID)
}

func (s *OrderService) Update(ctx context.Context, id uint, req transport.UpdateOrderRequest) (*models.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.UserID != nil {
		if *req.UserID == 0 {
			return nil, invalid("user_id", "User ID cannot be blank.")
		}
		exists, err := s.Orders.UserExists(ctx, *req.UserID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, invalid("user_id", "User ID is invalid.")
		}
		order.UserID = *req.UserID
	}
	if req.PaymentStatus != nil {
		if *req.PaymentStatus == "" {
			return nil, invalid("payment_status", "Payment Status cannot be blank.")
		}
		order.PaymentStatus = *req.PaymentStatus
	}

	err = s.Orders.Transaction(ctx, func(tx *repo.OrderRepo) error {
		if err := tx.Save(ctx, order); err != nil {
			return err
		}
		if req.Products == nil {
			return nil
		}
		if err := tx.DeleteLines(ctx, order.ID); err != nil {
			return err
		}
		return replaceLines(ctx, tx, order, *req.Products)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, order.ID)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id uint, req transport.UpdateStatusRequest) (*models.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PaymentStatus != nil {
		if *req.PaymentStatus == "" {
			return nil, invalid("payment_status", "Payment Status cannot be blank.")
		}
		order.PaymentStatus = *req.PaymentStatus
	}

	if err := s.Orders.Save(ctx, order); err != nil {
		return nil, err
	}
	return s.Get(ctx, order.ID)
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	err := s.Orders.Transaction(ctx, func(tx *repo.OrderRepo) error {
		if err := tx.DeleteLines(ctx, id); err != nil {
			return err
		}
		return tx.Delete(ctx, id)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func replaceLines(ctx context.Context, tx *repo.OrderRepo, order *models.Order, lines []transport.OrderLineRequest) error {
	for i, line := range lines {
		if line.ID == 0 {
			return invalid("products", fmt.Sprintf("Product ID cannot be blank (line %d).", i+1))
		}
		if line.Quantity == 0 {
			return invalid("products", fmt.Sprintf("Quantity must be a positive integer (line %d).", i+1))
		}
		exists, err := tx.ProductExists(ctx, line.ID)
		if err != nil {
			return err
		}
		if !exists {
			return invalid("products", fmt.Sprintf("Product ID is invalid (line %d).", i+1))
		}

		item := models.OrderProduct{
			OrderID:   order.ID,
			ProductID: line.ID,
			Quantity:  line.Quantity,
		}
		if err := tx.CreateLine(ctx, &item); err != nil {
			return err
		}
	}
	return nil
}
