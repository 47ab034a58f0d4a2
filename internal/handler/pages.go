package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naturalsuds/soapshop/internal/dto"
	"github.com/naturalsuds/soapshop/internal/repository"
)

type PageHandler struct {
	catalog repository.CatalogRepository
	log     *slog.Logger
}

func NewPageHandler(catalog repository.CatalogRepository, log *slog.Logger) *PageHandler {
	return &PageHandler{catalog: catalog, log: log}
}

func (h *PageHandler) Home(c *gin.Context) {
	render(c, http.StatusOK, "index.html", gin.H{
		"Products": h.catalog.All(),
	})
}

func (h *PageHandler) Products(c *gin.Context) {
	render(c, http.StatusOK, "products.html", gin.H{
		"Products": h.catalog.All(),
	})
}

func (h *PageHandler) ProductDetail(c *gin.Context) {
	product, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}
	render(c, http.StatusOK, "product.html", gin.H{
		"Product": product,
	})
}

func (h *PageHandler) ContactForm(c *gin.Context) {
	render(c, http.StatusOK, "contact.html", gin.H{"MessageSent": false})
}

// Contact accepts the form and logs the message; there is no mailbox behind
// it, the page just confirms receipt.
func (h *PageHandler) Contact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		render(c, http.StatusOK, "contact.html", gin.H{
			"MessageSent": false,
			"Error":       "Please fill in all fields.",
		})
		return
	}
	h.log.Info("contact message", "name", req.Name, "email", req.Email, "message", req.Message)
	render(c, http.StatusOK, "contact.html", gin.H{"MessageSent": true})
}
