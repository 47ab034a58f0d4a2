package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/naturalsuds/soapshop/internal/config"
	"github.com/naturalsuds/soapshop/internal/handler"
	"github.com/naturalsuds/soapshop/internal/middleware"
	"github.com/naturalsuds/soapshop/internal/repository"
	"github.com/naturalsuds/soapshop/internal/service"
	"github.com/naturalsuds/soapshop/internal/session"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	// Session backend: Redis when configured, in-memory otherwise.
	var sessionStore session.Store
	var pinger handler.Pinger
	if cfg.Session.RedisAddr != "" {
		redisStore, err := session.NewRedisStore(cfg.Session.RedisAddr, cfg.Session.RedisPassword, cfg.Session.RedisDB, cfg.Session.TTL)
		if err != nil {
			log.Error("connect session store", "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		sessionStore = redisStore
		pinger = redisStore
		log.Info("sessions backed by Redis", "addr", cfg.Session.RedisAddr)
	} else {
		sessionStore = session.NewMemoryStore()
	}

	// Repositories
	catalog := repository.NewCatalogRepository()
	orderRepo := repository.NewOrderRepository(cfg.Store.DataDir, log)
	userRepo := repository.NewUserRepository(cfg.Store.DataDir, log)

	// Services
	adminCred := service.NewStaticCredential(cfg.Admin.Username, cfg.Admin.Password)
	authSvc := service.NewAuthService(userRepo, adminCred)
	cartSvc := service.NewCartService(catalog)
	orderSvc := service.NewOrderService(orderRepo, catalog)

	// Handlers
	pageH := handler.NewPageHandler(catalog, log)
	authH := handler.NewAuthHandler(authSvc)
	cartH := handler.NewCartHandler(cartSvc, catalog)
	checkoutH := handler.NewCheckoutHandler(cartSvc, orderSvc, log)
	adminH := handler.NewAdminHandler(orderSvc, log)
	healthH := handler.NewHealthHandler(pinger)

	// Router
	router := gin.Default()
	router.LoadHTMLGlob(cfg.Server.TemplatesGlob)
	router.Static("/static", cfg.Server.StaticDir)

	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)

	router.Use(middleware.Session(sessionStore, cfg.Session.CookieName, cfg.Session.TTL, log))

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

	cart := router.Group("/cart")
	{
		cart.GET("", cartH.View)
		cart.POST("/add/:id", cartH.Add)
		cart.POST("/update/:id", cartH.Update)
		cart.POST("/remove/:id", cartH.Remove)
		cart.POST("/clear", cartH.Clear)
	}

	checkout := router.Group("/checkout", middleware.RequireUser())
	{
		checkout.GET("", checkoutH.Form)
		checkout.POST("", checkoutH.Submit)
	}

	admin := router.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("", adminH.Dashboard)
		admin.POST("/update_order/:id", adminH.UpdateOrder)
		admin.POST("/delete_order/:id", adminH.DeleteOrder)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	log.Info("server stopped")
}
