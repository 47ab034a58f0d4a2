package handler

import (
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naturalsuds/soapshop/internal/middleware"
	"github.com/naturalsuds/soapshop/internal/repository"
	"github.com/naturalsuds/soapshop/internal/service"
	"github.com/naturalsuds/soapshop/internal/session"
)

// Stripped-down stand-ins for the real pages; the tests assert on flow and
// data, not markup.
const testTemplates = `
{{define "index.html"}}home{{end}}
{{define "products.html"}}products {{len .Products}}{{end}}
{{define "product.html"}}product {{.Product.Name}}{{end}}
{{define "contact.html"}}contact{{if .MessageSent}} sent{{end}}{{end}}
{{define "login.html"}}login{{if .Error}} error={{.Error}}{{end}}{{end}}
{{define "signup.html"}}signup{{if .Error}} error={{.Error}}{{end}}{{end}}
{{define "cart.html"}}cart total={{.Total}} count={{.CartCount}}{{end}}
{{define "checkout.html"}}checkout total={{.Total}}{{end}}
{{define "order_confirmation.html"}}confirmed {{.Order.ID}} total={{.Order.TotalPrice}}{{end}}
{{define "admin.html"}}admin orders={{len .Orders}}{{end}}
`

type testApp struct {
	router *gin.Engine
	orders repository.OrderRepository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	catalog := repository.NewCatalogRepository()
	orderRepo := repository.NewOrderRepository(t.TempDir(), log)
	userRepo := repository.NewUserRepository(t.TempDir(), log)

	authSvc := service.NewAuthService(userRepo, service.NewStaticCredential("admin", "password"))
	cartSvc := service.NewCartService(catalog)
	orderSvc := service.NewOrderService(orderRepo, catalog)

	pageH := NewPageHandler(catalog, log)
	authH := NewAuthHandler(authSvc)
	cartH := NewCartHandler(cartSvc, catalog)
	checkoutH := NewCheckoutHandler(cartSvc, orderSvc, log)
	adminH := NewAdminHandler(orderSvc, log)

	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))
	router.Use(middleware.Session(session.NewMemoryStore(), "sid", time.Hour, log))

	router.GET("/", pageH.Home)
	router.GET("/products", pageH.Products)
	router.GET("/product/:id", pageH.ProductDetail)
	router.GET("/contact", pageH.ContactForm)
	router.POST("/contact", pageH.Contact)
	router.GET("/login", authH.LoginForm)
	router.POST("/login", authH.Login)
	router.GET("/logout", authH.Logout)
	router.GET("/signup", authH.SignupForm)
	router.POST("/signup", authH.Signup)
	router.GET("/cart", cartH.View)
	router.POST("/cart/add/:id", cartH.Add)
	router.POST("/cart/update/:id", cartH.Update)
	router.POST("/cart/remove/:id", cartH.Remove)
	router.POST("/cart/clear", cartH.Clear)
	router.GET("/checkout", middleware.RequireUser(), checkoutH.Form)
	router.POST("/checkout", middleware.RequireUser(), checkoutH.Submit)
	router.GET("/admin", middleware.RequireAdmin(), adminH.Dashboard)
	router.POST("/admin/update_order/:id", middleware.RequireAdmin(), adminH.UpdateOrder)
	router.POST("/admin/delete_order/:id", middleware.RequireAdmin(), adminH.DeleteOrder)

	return &testApp{router: router, orders: orderRepo}
}

// client keeps the session cookie across requests, like a browser.
type client struct {
	t      *testing.T
	app    *testApp
	cookie *http.Cookie
}

func (c *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	w := httptest.NewRecorder()
	c.app.router.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "sid" {
			c.cookie = ck
		}
	}
	return w
}

func (c *client) login(username, password string) *httptest.ResponseRecorder {
	return c.do(http.MethodPost, "/login", url.Values{
		"username": {username}, "password": {password},
	})
}

func shippingForm() url.Values {
	return url.Values{
		"full_name":      {"Maria Santos"},
		"email":          {"maria@example.com"},
		"phone":          {"0917 123 4567"},
		"address":        {"12 Sampaguita St"},
		"city":           {"Davao City"},
		"postal_code":    {"8000"},
		"payment_method": {"Cash on Delivery"},
	}
}

func TestShopFlow_SignupLoginCheckout(t *testing.T) {
	app := newTestApp(t)
	c := &client{t: t, app: app}

	w := c.do(http.MethodPost, "/signup", url.Values{
		"username": {"maria"}, "email": {"maria@example.com"},
		"password": {"secret"}, "confirm_password": {"secret"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = c.login("maria", "secret")
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = c.do(http.MethodPost, "/cart/add/malunggay", url.Values{"quantity": {"2"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	w = c.do(http.MethodPost, "/cart/add/honey", url.Values{"quantity": {"1"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = c.do(http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "total=45")
	assert.Contains(t, w.Body.String(), "count=3")

	w = c.do(http.MethodPost, "/checkout", shippingForm())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "confirmed ORD-")
	assert.Contains(t, w.Body.String(), "total=45")

	orders := app.orders.Load()
	require.Len(t, orders, 1)
	assert.True(t, orders[0].TotalPrice.Equal(decimal.RequireFromString("45.00")))
	require.Len(t, orders[0].Items, 2)

	// Cart is cleared by a successful checkout.
	w = c.do(http.MethodGet, "/cart", nil)
	assert.Contains(t, w.Body.String(), "count=0")
}

func TestCheckout_AnonymousRedirectedThenReturned(t *testing.T) {
	app := newTestApp(t)
	c := &client{t: t, app: app}

	c.do(http.MethodPost, "/signup", url.Values{
		"username": {"maria"}, "email": {"maria@example.com"},
		"password": {"secret"}, "confirm_password": {"secret"},
	})
	c.do(http.MethodPost, "/cart/add/honey", nil)

	w := c.do(http.MethodGet, "/checkout", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// Login returns the actor to the page the gate bounced them from.
	w = c.login("maria", "secret")
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/checkout", w.Header().Get("Location"))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	app := newTestApp(t)
	c := &client{t: t, app: app}

	w := c.login("nobody", "nothing")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "error=Invalid username or password")
}

func TestSignup_DuplicateUsernameMessage(t *testing.T) {
	app := newTestApp(t)
	c := &client{t: t, app: app}

	form := url.Values{
		"username": {"maria"}, "email": {"maria@example.com"},
		"password": {"secret"}, "confirm_password": {"secret"},
	}
	w := c.do(http.MethodPost, "/signup", form)
	require.Equal(t, http.StatusSeeOther, w.Code)

	form.Set("email", "other@example.com")
	w = c.do(http.MethodPost, "/signup", form)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "error=Username already exists!")
}

func TestSignup_PasswordMismatchMessage(t *testing.T) {
	app := newTestApp(t)
	c := &client{t: t, app: app}

	w := c.do(http.MethodPost, "/signup", url.Values{
		"username": {"maria"}, "email": {"maria@example.com"},
		"password": {"secret"}, "confirm_password": {"different"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "error=Passwords do not match!")
}

func TestAdmin_DashboardAndOrderMutations(t *testing.T) {
	app := newTestApp(t)

	// A customer places an order.
	customer := &client{t: t, app: app}
	customer.do(http.MethodPost, "/signup", url.Values{
		"username": {"maria"}, "email": {"maria@example.com"},
		"password": {"secret"}, "confirm_password": {"secret"},
	})
	customer.login("maria", "secret")
	customer.do(http.MethodPost, "/cart/add/honey", nil)
	customer.do(http.MethodPost, "/checkout", shippingForm())

	orders := app.orders.Load()
	require.Len(t, orders, 1)
	orderID := orders[0].ID

	admin := &client{t: t, app: app}
	w := admin.do(http.MethodGet, "/admin", nil)
	require.Equal(t, http.StatusSeeOther, w.Code, "anonymous visitor is bounced")

	admin.login("admin", "password")
	w = admin.do(http.MethodGet, "/admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "orders=1")

	w = admin.do(http.MethodPost, "/admin/update_order/"+orderID, url.Values{"status": {"Shipped"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "Shipped", app.orders.Load()[0].Status)

	w = admin.do(http.MethodPost, "/admin/delete_order/"+orderID, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Empty(t, app.orders.Load())
}

func TestCartAdd_UnknownProductRedirectsToProducts(t *testing.T) {
	app := newTestApp(t)
	c := &client{t: t, app: app}

	w := c.do(http.MethodPost, "/cart/add/no-such-soap", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/products", w.Header().Get("Location"))

	w = c.do(http.MethodGet, "/cart", nil)
	assert.Contains(t, w.Body.String(), "count=0")
}

func TestProductDetail_UnknownIDRedirects(t *testing.T) {
	app := newTestApp(t)
	c := &client{t: t, app: app}

	w := c.do(http.MethodGet, "/product/no-such-soap", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/products", w.Header().Get("Location"))
}

func TestContact_PostConfirms(t *testing.T) {
	app := newTestApp(t)
	c := &client{t: t, app: app}

	w := c.do(http.MethodPost, "/contact", url.Values{
		"name": {"Maria"}, "email": {"maria@example.com"}, "message": {"Do you ship to Cebu?"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "contact sent")
}
