package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-todo-pro/internal/models"
	"go-todo-pro/internal/services"
	"go-todo-pro/internal/store"
)

// TodoHandler はToDo関連のハンドラーを管理します。
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler は新しいTodoHandlerを作成します。
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// GetTodosHandler は解決済みユーザーのToDoリストを返します。
func (h *TodoHandler) GetTodosHandler(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		return
	}

	todos, err := h.todoService.GetTodos(user.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Username not found!"})
		return
	}

	c.JSON(http.StatusOK, todos)
}

// CreateTodoHandler は新しいToDoを作成します。
// クォータの早期チェックはミドルウェアが行いますが、
// 追加自体はストアのロック内で再検証されます。
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		return
	}

	var req models.TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	deadline, err := models.ParseDeadline(req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline format"})
		return
	}

	todo, err := h.todoService.CreateTodo(user.ID, req.Title, deadline)
	if err != nil {
		if errors.Is(err, store.ErrQuotaExceeded) {
			c.JSON(http.StatusForbidden, gin.H{"error": "User already has 10 To-Dos and he isn't a Pro member!"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Username not found!"})
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// UpdateTodoHandler は解決済みToDoのtitleとdeadlineを上書きします。
func (h *TodoHandler) UpdateTodoHandler(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		return
	}
	todo, ok := todoFromContext(c)
	if !ok {
		return
	}

	var req models.TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	deadline, err := models.ParseDeadline(req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline format"})
		return
	}

	updated, err := h.todoService.UpdateTodo(user.ID, todo.ID, req.Title, deadline)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "To-Do with the given id not found!"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DoneTodoHandler はToDoを完了状態にします。2回目以降の呼び出しも成功します。
func (h *TodoHandler) DoneTodoHandler(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		return
	}
	todo, ok := todoFromContext(c)
	if !ok {
		return
	}

	updated, err := h.todoService.MarkTodoDone(user.ID, todo.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "To-Do with the given id not found!"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteTodoHandler は解決済みToDoを所有者のリストから削除します。
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		return
	}
	todo, ok := todoFromContext(c)
	if !ok {
		return
	}

	if err := h.todoService.DeleteTodo(user.ID, todo.ID); err != nil {
		// ガード通過後に消えているケース
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
