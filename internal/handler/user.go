package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopcart/internal/middleware"
	"shopcart/internal/service"
)

type UserHandler interface {
	ShowProfile(c *gin.Context)
	EditProfile(c *gin.Context)
	DeleteUser(c *gin.Context)
}

type userHandler struct {
	userService service.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService service.UserService, logger *zap.Logger) UserHandler {
	return &userHandler{userService: userService, logger: logger}
}

// EditProfileRequest allowlists the editable fields. Email and password are
// deliberately absent; they cannot be changed through this endpoint.
type EditProfileRequest struct {
	FullName      string `json:"fullName"`
	PreferredName string `json:"preferredName"`
}

// ShowProfile handles GET /profile/:userId
func (h *userHandler) ShowProfile(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorised."})
		return
	}

	profile, err := h.userService.Profile(claims.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		h.logger.Error("Failed to get profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// EditProfile handles PUT /profile/:userId/editProfile
func (h *userHandler) EditProfile(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorised."})
		return
	}

	var req EditProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	err := h.userService.EditProfile(claims.Email, req.FullName, req.PreferredName)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		h.logger.Error("Failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "profile updated!"})
}

// DeleteUser handles DELETE /profile/:userId/deleteUser
func (h *userHandler) DeleteUser(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorised."})
		return
	}

	if err := h.userService.DeleteUser(claims.Email); err != nil {
		h.logger.Error("Failed to delete user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted"})
}
