package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"shopcart/internal/middleware"
	"shopcart/internal/service"
)

type CartHandler interface {
	AddItem(c *gin.Context)
	ShowCart(c *gin.Context)
	UpdateItem(c *gin.Context)
	RemoveItem(c *gin.Context)
	Checkout(c *gin.Context)
}

type cartHandler struct {
	cartService service.CartService
	logger      *zap.Logger
}

func NewCartHandler(cartService service.CartService, logger *zap.Logger) CartHandler {
	return &cartHandler{cartService: cartService, logger: logger}
}

type AddLineItemRequest struct {
	ProductName    string `json:"productName" binding:"required"`
	UnitPriceCents int64  `json:"unitPriceCents" binding:"required,gt=0"`
	Quantity       int    `json:"quantity" binding:"required,gte=1"`
}

type UpdateLineItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gte=1"`
}

// AddItem handles POST /:userId/cart
func (h *cartHandler) AddItem(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorised."})
		return
	}

	var req AddLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	item, err := h.cartService.AddItem(claims.Email, req.ProductName, req.UnitPriceCents, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		h.logger.Error("Failed to add line item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item to cart"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"lineItem": item})
}

// ShowCart handles GET /:userId/cart
func (h *cartHandler) ShowCart(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorised."})
		return
	}

	cart, err := h.cartService.ShowCart(claims.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		h.logger.Error("Failed to get cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// UpdateItem handles PATCH /:userId/cart/lineItem/:lineItemId
func (h *cartHandler) UpdateItem(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorised."})
		return
	}

	lineItemID, err := uuid.Parse(c.Param("lineItemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line item id"})
		return
	}

	var req UpdateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	item, err := h.cartService.UpdateItem(claims.Email, lineItemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLineItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "line item not found"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			h.logger.Error("Failed to update line item", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"lineItem": item})
}

// RemoveItem handles DELETE /:userId/cart/lineItem/:lineItemId
func (h *cartHandler) RemoveItem(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorised."})
		return
	}

	lineItemID, err := uuid.Parse(c.Param("lineItemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line item id"})
		return
	}

	if err := h.cartService.RemoveItem(claims.Email, lineItemID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		h.logger.Error("Failed to remove line item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item from cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item removed"})
}

// Checkout handles POST /:userId/cart/checkout
func (h *cartHandler) Checkout(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorised."})
		return
	}

	order, err := h.cartService.Checkout(claims.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartEmpty):
			c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			h.logger.Error("Failed to checkout", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to checkout"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}
