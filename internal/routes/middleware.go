package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-todo-pro/internal/models"
	"go-todo-pro/internal/services"
)

// ミドルウェアがコンテキストに設定する値のキー。
const (
	ContextUserKey = "user"
	ContextTodoKey = "todo"
)

// FindUserByID はパスパラメータのIDでユーザーを解決し、
// コンテキストに設定するミドルウェアです。
func FindUserByID(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User id is required!"})
			c.Abort()
			return
		}

		user, err := userService.FindByID(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Username not found!"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// ChecksExistsUserAccount はusernameヘッダーでユーザーを解決し、
// コンテキストに設定するミドルウェアです。ToDoの一覧・作成のゲートです。
func ChecksExistsUserAccount(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetHeader("username")
		if username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username data is required!"})
			c.Abort()
			return
		}

		user, err := userService.FindByUsername(username)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Username not found!"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// ChecksCreateTodosUserAvailability は無料プランのToDo上限を強制する
// ミドルウェアです。ChecksExistsUserAccountの後段で実行されること。
// ここでの判定は早期リジェクト用で、最終的な強制は作成処理側のロック内で
// 行われます。
func ChecksCreateTodosUserAvailability(todoService *services.TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User not found in context"})
			c.Abort()
			return
		}

		available, err := todoService.CanCreateTodo(user.ID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Username not found!"})
			c.Abort()
			return
		}
		if !available {
			c.JSON(http.StatusForbidden, gin.H{"error": "User already has 10 To-Dos and he isn't a Pro member!"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ChecksTodoExists はusernameヘッダーとパスのToDo IDを検証し、
// ユーザーとToDoの両方を解決してコンテキストに設定するミドルウェアです。
// 検証は (1) username存在 (2) idのUUID形式 (3) ユーザー解決 (4) ToDo解決
// の順で行われ、失敗した時点で即座に打ち切ります。
func ChecksTodoExists(userService *services.UserService, todoService *services.TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetHeader("username")
		if username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username data is required!"})
			c.Abort()
			return
		}

		id := c.Param("id")
		if id == "" || uuid.Validate(id) != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "To-Do id is required! Id must be an uuid!"})
			c.Abort()
			return
		}

		user, err := userService.FindByUsername(username)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Username not found!"})
			c.Abort()
			return
		}

		todo, err := todoService.FindTodo(user.ID, id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "To-Do with the given id not found!"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextTodoKey, todo)
		c.Next()
	}
}

// currentUser は前段のミドルウェアが解決したユーザーを取り出します。
func currentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
