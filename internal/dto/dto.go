package dto

import (
	"github.com/shopspring/decimal"

	"github.com/naturalsuds/soapshop/internal/model"
)

// --- Auth ---

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type SignupRequest struct {
	Username        string `form:"username" binding:"required"`
	Email           string `form:"email" binding:"required"`
	Password        string `form:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" binding:"required"`
}

// --- Contact ---

type ContactRequest struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required"`
	Message string `form:"message" binding:"required"`
}

// --- Cart ---

type QuantityRequest struct {
	Quantity int `form:"quantity"`
}

// CartLine is one cart row resolved against the catalog for display.
type CartLine struct {
	Product   model.Product
	Quantity  int
	LineTotal decimal.Decimal
}

// --- Checkout ---

type CheckoutRequest struct {
	FullName      string `form:"full_name" binding:"required"`
	Email         string `form:"email" binding:"required"`
	Phone         string `form:"phone" binding:"required"`
	Address       string `form:"address" binding:"required"`
	City          string `form:"city" binding:"required"`
	PostalCode    string `form:"postal_code" binding:"required"`
	PaymentMethod string `form:"payment_method" binding:"required"`
}

// --- Admin ---

type UpdateOrderRequest struct {
	Status string `form:"status" binding:"required"`
}
