package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// StatusPending is the status every new order starts with. The admin
// dashboard may overwrite it with any string.
const StatusPending = "Pending"

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Ingredients []string        `json:"ingredients"`
	Benefits    []string        `json:"benefits"`
}

type User struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"` // stored verbatim, a known weakness of this deployment
	CreatedAt time.Time `json:"created_at"`
}

// Cart maps product id to quantity. It lives inside the browser session and
// is only touched by that session's requests, so no locking.
type Cart map[string]int

func (c Cart) Clone() Cart {
	cp := make(Cart, len(c))
	for id, qty := range c {
		cp[id] = qty
	}
	return cp
}

// Actor is the resolved identity of the current session.
type Actor struct {
	Username string
	Role     string // "" (anonymous), RoleUser or RoleAdmin
}

func (a Actor) IsAnonymous() bool { return a.Role == "" }
func (a Actor) IsAdmin() bool     { return a.Role == RoleAdmin }

type Order struct {
	ID            string          `json:"order_id"`
	Items         []OrderItem     `json:"items"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	CustomerName  string          `json:"customer_name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	PostalCode    string          `json:"postal_code"`
	PaymentMethod string          `json:"payment_method"`
	OrderDate     string          `json:"order_date"`
	Status        string          `json:"status"`
}

// OrderItem snapshots the product name and unit price at checkout time so
// historical orders survive later catalog edits.
type OrderItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}
