package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/naturalsuds/soapshop/internal/middleware"
)

// render wraps c.HTML, injecting the data every template needs: the current
// actor and the cart badge count.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if sess := middleware.GetSession(c); sess != nil {
		data["Actor"] = sess.Actor()
		count := 0
		for _, qty := range sess.Cart {
			count += qty
		}
		data["CartCount"] = count
	}
	c.HTML(status, name, data)
}
