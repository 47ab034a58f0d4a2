package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/naturalsuds/soapshop/internal/dto"
	"github.com/naturalsuds/soapshop/internal/model"
	"github.com/naturalsuds/soapshop/internal/repository"
)

// CartService mutates a session-owned cart mapping. The cart is passed in
// by the caller (it lives in the session), so every method is a plain
// transformation with no locking.
type CartService struct {
	catalog repository.CatalogRepository
}

func NewCartService(catalog repository.CatalogRepository) *CartService {
	return &CartService{catalog: catalog}
}

// Add increments the quantity for a product, inserting the entry if absent.
// Callers verify the product exists in the catalog before routing here.
func (s *CartService) Add(cart model.Cart, productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	cart[productID] += quantity
}

// Update sets the quantity for a product. Non-positive quantities delete
// the entry; a zero or negative quantity is never stored.
func (s *CartService) Update(cart model.Cart, productID string, quantity int) {
	if quantity <= 0 {
		delete(cart, productID)
		return
	}
	cart[productID] = quantity
}

func (s *CartService) Remove(cart model.Cart, productID string) {
	delete(cart, productID)
}

func (s *CartService) Clear(cart model.Cart) {
	for id := range cart {
		delete(cart, id)
	}
}

// Total sums catalog price times quantity over the cart. Ids no longer in
// the catalog are skipped, never an error.
func (s *CartService) Total(cart model.Cart) decimal.Decimal {
	total := decimal.Zero
	for id, qty := range cart {
		product, ok := s.catalog.Get(id)
		if !ok {
			continue
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(qty))))
	}
	return total
}

// Count is the sum of quantities, shown as the cart badge.
func (s *CartService) Count(cart model.Cart) int {
	count := 0
	for _, qty := range cart {
		count += qty
	}
	return count
}

// Lines resolves the cart against the catalog for display, sorted by
// product id for a stable page. Stale ids are skipped.
func (s *CartService) Lines(cart model.Cart) []dto.CartLine {
	ids := make([]string, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := make([]dto.CartLine, 0, len(ids))
	for _, id := range ids {
		product, ok := s.catalog.Get(id)
		if !ok {
			continue
		}
		qty := cart[id]
		lines = append(lines, dto.CartLine{
			Product:   *product,
			Quantity:  qty,
			LineTotal: product.Price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	return lines
}
