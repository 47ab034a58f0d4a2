package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naturalsuds/soapshop/internal/dto"
	"github.com/naturalsuds/soapshop/internal/service"
)

type AdminHandler struct {
	orders *service.OrderService
	log    *slog.Logger
}

func NewAdminHandler(orders *service.OrderService, log *slog.Logger) *AdminHandler {
	return &AdminHandler{orders: orders, log: log}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	render(c, http.StatusOK, "admin.html", gin.H{
		"Orders": h.orders.List(),
	})
}

func (h *AdminHandler) UpdateOrder(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}
	if err := h.orders.UpdateStatus(c.Param("id"), req.Status); err != nil {
		h.log.Error("update order status", "order_id", c.Param("id"), "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *AdminHandler) DeleteOrder(c *gin.Context) {
	if err := h.orders.Delete(c.Param("id")); err != nil {
		h.log.Error("delete order", "order_id", c.Param("id"), "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}
