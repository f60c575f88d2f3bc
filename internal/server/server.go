package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"shopcart/internal/config"
	"shopcart/internal/handler"
	"shopcart/internal/middleware"
	"shopcart/internal/repository"
	"shopcart/internal/service"
	"shopcart/internal/token"
)

// Tokens are valid for one hour from issuance.
const tokenTTL = time.Hour

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	cfg    *config.Config
	logger *zap.Logger
}

func NewServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	router := gin.Default()

	s := &Server{
		router: router,
		db:     db,
		cfg:    cfg,
		logger: logger,
	}

	if err := s.setupRoutes(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Server) setupRoutes() error {
	tokens, err := token.NewService(s.cfg.JWTSecret, tokenTTL)
	if err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(s.db, s.logger)
	cartRepo := repository.NewCartRepository(s.db, s.logger)

	authService := service.NewAuthService(userRepo, tokens, s.logger)
	userService := service.NewUserService(userRepo, s.logger)
	cartService := service.NewCartService(userRepo, cartRepo, s.logger)

	authHandler := handler.NewAuthHandler(authService, s.logger)
	userHandler := handler.NewUserHandler(userService, s.logger)
	cartHandler := handler.NewCartHandler(cartService, s.logger)

	// Ping route for health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Authentication routes
	authGroup := s.router.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	guard := middleware.AuthMiddleware(tokens, s.logger)

	// The :userId segment is kept for route compatibility only; identity is
	// always resolved from the verified token claims.
	profile := s.router.Group("/profile/:userId", guard)
	{
		profile.GET("", userHandler.ShowProfile)
		profile.PUT("/editProfile", userHandler.EditProfile)
		profile.PUT("/changePassword", authHandler.ChangePassword)
		profile.DELETE("/deleteUser", userHandler.DeleteUser)
	}

	cart := s.router.Group("/:userId/cart", guard)
	{
		cart.POST("", cartHandler.AddItem)
		cart.GET("", cartHandler.ShowCart)
		cart.PATCH("/lineItem/:lineItemId", cartHandler.UpdateItem)
		cart.DELETE("/lineItem/:lineItemId", cartHandler.RemoveItem)
		cart.POST("/checkout", cartHandler.Checkout)
	}

	return nil
}

func (s *Server) Run(addr string) {
	s.logger.Info("Server starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}
