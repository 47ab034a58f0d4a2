package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/naturalsuds/soapshop/internal/middleware"
	"github.com/naturalsuds/soapshop/internal/repository"
	"github.com/naturalsuds/soapshop/internal/service"
)

type CartHandler struct {
	svc     *service.CartService
	catalog repository.CatalogRepository
}

func NewCartHandler(svc *service.CartService, catalog repository.CatalogRepository) *CartHandler {
	return &CartHandler{svc: svc, catalog: catalog}
}

func (h *CartHandler) View(c *gin.Context) {
	cart := middleware.GetSession(c).Cart
	render(c, http.StatusOK, "cart.html", gin.H{
		"Lines": h.svc.Lines(cart),
		"Total": h.svc.Total(cart),
	})
}

func (h *CartHandler) Add(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.catalog.Get(id); !ok {
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}
	qty, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil {
		qty = 1
	}
	h.svc.Add(middleware.GetSession(c).Cart, id, qty)
	c.Redirect(http.StatusSeeOther, "/cart")
}

func (h *CartHandler) Update(c *gin.Context) {
	qty, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}
	h.svc.Update(middleware.GetSession(c).Cart, c.Param("id"), qty)
	c.Redirect(http.StatusSeeOther, "/cart")
}

func (h *CartHandler) Remove(c *gin.Context) {
	h.svc.Remove(middleware.GetSession(c).Cart, c.Param("id"))
	c.Redirect(http.StatusSeeOther, "/cart")
}

func (h *CartHandler) Clear(c *gin.Context) {
	h.svc.Clear(middleware.GetSession(c).Cart)
	c.Redirect(http.StatusSeeOther, "/cart")
}
