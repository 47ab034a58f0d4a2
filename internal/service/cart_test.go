package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naturalsuds/soapshop/internal/model"
	"github.com/naturalsuds/soapshop/internal/repository"
)

func newCartService() *CartService {
	return NewCartService(repository.NewCatalogRepository())
}

func TestCartService_AddThenTotal(t *testing.T) {
	svc := newCartService()
	cart := model.Cart{}

	svc.Add(cart, "honey", 3)

	assert.Equal(t, 3, cart["honey"])
	assert.True(t, svc.Total(cart).Equal(decimal.RequireFromString("75.00")),
		"total = %s", svc.Total(cart))
}

func TestCartService_AddIncrementsExisting(t *testing.T) {
	svc := newCartService()
	cart := model.Cart{"honey": 1}

	svc.Add(cart, "honey", 2)

	assert.Equal(t, 3, cart["honey"])
}

func TestCartService_AddDefaultsToOne(t *testing.T) {
	svc := newCartService()
	cart := model.Cart{}

	svc.Add(cart, "malunggay", 0)

	assert.Equal(t, 1, cart["malunggay"])
}

func TestCartService_UpdateZeroRemovesEntry(t *testing.T) {
	svc := newCartService()
	cart := model.Cart{"honey": 2}

	svc.Update(cart, "honey", 0)

	assert.NotContains(t, cart, "honey")
}

func TestCartService_UpdateNegativeRemovesEntry(t *testing.T) {
	svc := newCartService()
	cart := model.Cart{"honey": 2}

	svc.Update(cart, "honey", -5)

	assert.NotContains(t, cart, "honey")
}

func TestCartService_UpdateSetsQuantity(t *testing.T) {
	svc := newCartService()
	cart := model.Cart{"honey": 2}

	svc.Update(cart, "honey", 7)

	assert.Equal(t, 7, cart["honey"])
}

func TestCartService_RemoveIsNoopWhenAbsent(t *testing.T) {
	svc := newCartService()
	cart := model.Cart{"honey": 2}

	svc.Remove(cart, "charcoal")

	assert.Equal(t, model.Cart{"honey": 2}, cart)
}

func TestCartService_Clear(t *testing.T) {
	svc := newCartService()
	cart := model.Cart{"honey": 2, "malunggay": 1}

	svc.Clear(cart)

	assert.Empty(t, cart)
}

func TestCartService_TotalSkipsUnknownProducts(t *testing.T) {
	svc := newCartService()
	cart := model.Cart{"honey": 1, "discontinued-bar": 99}

	assert.True(t, svc.Total(cart).Equal(decimal.RequireFromString("25.00")))
	assert.Equal(t, 100, svc.Count(cart), "count still includes stale entries")

	lines := svc.Lines(cart)
	require.Len(t, lines, 1)
	assert.Equal(t, "honey", lines[0].Product.ID)
}

func TestCartService_MalunggayHoneyScenario(t *testing.T) {
	svc := newCartService()
	cart := model.Cart{}

	svc.Add(cart, "malunggay", 2)
	svc.Add(cart, "honey", 1)

	assert.True(t, svc.Total(cart).Equal(decimal.RequireFromString("45.00")),
		"total = %s", svc.Total(cart))
	assert.Equal(t, 3, svc.Count(cart))
}
