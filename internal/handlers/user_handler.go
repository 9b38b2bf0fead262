package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-todo-pro/internal/models"
	"go-todo-pro/internal/services"
	"go-todo-pro/internal/store"
)

// UserHandler はユーザー関連のハンドラーを管理します。
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler は新しいUserHandlerを作成します。
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserHandler は新しいユーザーを作成します。
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	user, err := h.userService.CreateUser(req)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUserHandler はFindUserByIDミドルウェアが解決したユーザーをそのまま返します。
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

// ActivateProHandler はユーザーをProプランに切り替えます。
// 既にProのユーザーに対しては400を返します（状態はproのまま変わらない）。
func (h *UserHandler) ActivateProHandler(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		return
	}

	updated, err := h.userService.ActivatePro(user.ID)
	if err != nil {
		if errors.Is(err, store.ErrProAlreadyActive) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pro plan is already activated."})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Username not found!"})
		return
	}

	c.JSON(http.StatusOK, updated)
}
