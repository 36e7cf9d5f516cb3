package service

import (
	"context"
	"errors"
	"strings"

	"etickets/constants"
	"etickets/model"
	"etickets/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrdersService struct {
	*repository.Repository[model.Order]
}

func NewOrdersService(db *gorm.DB) *OrdersService {
	return &OrdersService{repository.New[model.Order](db)}
}

// NewOrderCode mints a short public order code, e.g. ORD-9F3A21C4.
func NewOrderCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "ORD-" + raw[:8]
}

// OrderTotal is the checkout-time total: sum of unit price times quantity.
// It is computed once at checkout and never recalculated afterwards.
func OrderTotal(items []model.ShoppingCartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Movie.Price * float64(item.Amount)
	}
	return total
}

// StoreOrder converts the cart lines into a persisted order with its items,
// all inside one transaction. Each cart line's Movie must be preloaded.
func (s *OrdersService) StoreOrder(ctx context.Context, items []model.ShoppingCartItem, userId uint, email string) (*model.Order, error) {
	if len(items) == 0 {
		return nil, errors.New("shopping cart is empty")
	}

	order := &model.Order{
		PublicCode: NewOrderCode(),
		UserId:     userId,
		Email:      email,
		Total:      OrderTotal(items),
	}

	err := s.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		orderItems := make([]model.OrderItem, 0, len(items))
		for _, item := range items {
			orderItems = append(orderItems, model.OrderItem{
				MovieId: item.MovieId,
				Amount:  item.Amount,
				Price:   item.Movie.Price,
				OrderId: order.ID,
			})
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}
		order.Items = orderItems
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrdersByUserIDAndRole returns every order for admins and only the
// caller's own orders for everyone else.
func (s *OrdersService) GetOrdersByUserIDAndRole(ctx context.Context, userId uint, role string) ([]model.Order, error) {
	query := s.DB().WithContext(ctx).
		Preload("Items").
		Preload("Items.Movie").
		Order("created_at desc")

	if role != constants.ROLE_ADMIN {
		query = query.Where("user_id = ?", userId)
	}

	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrdersService) GetOrderByPublicCode(ctx context.Context, code string) (*model.Order, error) {
	var order model.Order
	err := s.DB().WithContext(ctx).
		Preload("Items").
		Preload("Items.Movie").
		Where("public_code = ?", code).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}
