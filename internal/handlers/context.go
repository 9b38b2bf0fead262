package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-todo-pro/internal/models"
)

// ミドルウェアが設定するコンテキストキー（routesパッケージと共通）。
const (
	contextUserKey = "user"
	contextTodoKey = "todo"
)

// userFromContext はガードが解決したユーザーを取り出します。
// 取り出せない場合はレスポンスを書き込み、falseを返します。
func userFromContext(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(contextUserKey)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User not found in context"})
		return nil, false
	}
	user, ok := val.(*models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return nil, false
	}
	return user, true
}

// todoFromContext はガードが解決したToDoを取り出します。
func todoFromContext(c *gin.Context) (*models.Todo, bool) {
	val, exists := c.Get(contextTodoKey)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Todo not found in context"})
		return nil, false
	}
	todo, ok := val.(*models.Todo)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid todo type in context"})
		return nil, false
	}
	return todo, true
}
