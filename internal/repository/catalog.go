package repository

import (
	"github.com/shopspring/decimal"

	"github.com/naturalsuds/soapshop/internal/model"
)

// CatalogRepository is the read-only product reference data. Products are
// seeded at construction and never mutated.
type CatalogRepository interface {
	Get(id string) (*model.Product, bool)
	All() []model.Product
}

type memoryCatalog struct {
	products map[string]model.Product
	order    []string
}

func NewCatalogRepository() CatalogRepository {
	c := &memoryCatalog{products: make(map[string]model.Product)}
	for _, p := range seedProducts() {
		c.products[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	return c
}

func (c *memoryCatalog) Get(id string) (*model.Product, bool) {
	p, ok := c.products[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

func (c *memoryCatalog) All() []model.Product {
	out := make([]model.Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.products[id])
	}
	return out
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedProducts() []model.Product {
	return []model.Product{
		{
			ID:          "malunggay",
			Name:        "Malunggay Herbal Soap",
			Price:       price("10.00"),
			Image:       "img/malunggay.jpg",
			Description: "Gentle everyday soap made with fresh malunggay (moringa) leaf extract.",
			Ingredients: []string{"Malunggay leaf extract", "Coconut oil", "Glycerin"},
			Benefits:    []string{"Rich in antioxidants", "Soothes dry skin", "Mild enough for daily use"},
		},
		{
			ID:          "honey",
			Name:        "Pure Honey Soap",
			Price:       price("25.00"),
			Image:       "img/honey.jpg",
			Description: "Moisturizing bar blended with raw wildflower honey.",
			Ingredients: []string{"Raw honey", "Coconut oil", "Shea butter"},
			Benefits:    []string{"Deep moisturizing", "Naturally antibacterial", "Leaves skin soft"},
		},
		{
			ID:          "papaya",
			Name:        "Papaya Brightening Soap",
			Price:       price("15.00"),
			Image:       "img/papaya.jpg",
			Description: "Classic papaya soap with natural papain enzyme.",
			Ingredients: []string{"Papaya extract", "Papain enzyme", "Coconut oil"},
			Benefits:    []string{"Brightens skin tone", "Gently exfoliates", "Evens out dark spots"},
		},
		{
			ID:          "charcoal",
			Name:        "Activated Charcoal Soap",
			Price:       price("20.00"),
			Image:       "img/charcoal.jpg",
			Description: "Deep-cleansing bar with activated bamboo charcoal.",
			Ingredients: []string{"Activated charcoal", "Tea tree oil", "Coconut oil"},
			Benefits:    []string{"Draws out impurities", "Controls excess oil", "Helps with breakouts"},
		},
		{
			ID:          "oatmeal",
			Name:        "Oatmeal & Milk Soap",
			Price:       price("18.00"),
			Image:       "img/oatmeal.jpg",
			Description: "Calming soap with ground oats and fresh carabao milk.",
			Ingredients: []string{"Colloidal oatmeal", "Carabao milk", "Shea butter"},
			Benefits:    []string{"Relieves itchy skin", "Gentle exfoliation", "Good for sensitive skin"},
		},
		{
			ID:          "calamansi",
			Name:        "Calamansi Fresh Soap",
			Price:       price("12.00"),
			Image:       "img/calamansi.jpg",
			Description: "Zesty citrus bar made with native calamansi juice.",
			Ingredients: []string{"Calamansi juice", "Vitamin C", "Coconut oil"},
			Benefits:    []string{"Refreshing citrus scent", "Brightens dull skin", "Removes odor"},
		},
	}
}
