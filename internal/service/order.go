package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/naturalsuds/soapshop/internal/dto"
	"github.com/naturalsuds/soapshop/internal/model"
	"github.com/naturalsuds/soapshop/internal/repository"
)

var ErrEmptyCart = errors.New("cart is empty")

type OrderService struct {
	orders  repository.OrderRepository
	catalog repository.CatalogRepository
	now     func() time.Time
}

func NewOrderService(orders repository.OrderRepository, catalog repository.CatalogRepository) *OrderService {
	return &OrderService{orders: orders, catalog: catalog, now: time.Now}
}

// Checkout materializes the cart into an order and appends it to the store.
// Product names and unit prices are snapshotted so the order survives later
// catalog edits; cart ids no longer in the catalog are skipped.
func (s *OrderService) Checkout(cart model.Cart, req dto.CheckoutRequest) (*model.Order, error) {
	ids := make([]string, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	total := decimal.Zero
	var items []model.OrderItem
	for _, id := range ids {
		product, ok := s.catalog.Get(id)
		if !ok {
			continue
		}
		qty := cart[id]
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(qty)))
		items = append(items, model.OrderItem{
			ProductID:   id,
			ProductName: product.Name,
			Quantity:    qty,
			UnitPrice:   product.Price,
			LineTotal:   lineTotal,
		})
		total = total.Add(lineTotal)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	now := s.now()
	order := model.Order{
		ID:            "ORD-" + now.Format("20060102150405"),
		Items:         items,
		TotalPrice:    total,
		CustomerName:  req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		PostalCode:    req.PostalCode,
		PaymentMethod: req.PaymentMethod,
		OrderDate:     now.Format("2006-01-02 15:04:05"),
		Status:        model.StatusPending,
	}
	if err := s.orders.Append(order); err != nil {
		return &order, fmt.Errorf("persist order: %w", err)
	}
	return &order, nil
}

// List returns all orders, newest first.
func (s *OrderService) List() []model.Order {
	return s.orders.List(true)
}

func (s *OrderService) UpdateStatus(id, status string) error {
	return s.orders.UpdateStatus(id, status)
}

func (s *OrderService) Delete(id string) error {
	return s.orders.Delete(id)
}
