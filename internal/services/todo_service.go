package services

import (
	"time"

	"go-todo-pro/internal/models"
	"go-todo-pro/internal/store"
)

// TodoService はToDo関連のビジネスロジックを扱います。
type TodoService struct {
	store *store.Store
}

// NewTodoService は新しいTodoServiceを作成します。
func NewTodoService(st *store.Store) *TodoService {
	return &TodoService{store: st}
}

// GetTodos はユーザーのToDoリストを取得します。
func (s *TodoService) GetTodos(userID string) ([]*models.Todo, error) {
	return s.store.Todos(userID)
}

// CanCreateTodo はクォータ上の作成可否を判定します。
// 上限の最終的な強制はCreateTodo側で行われるため、これは早期チェック用です。
func (s *TodoService) CanCreateTodo(userID string) (bool, error) {
	return s.store.CanCreateTodo(userID)
}

// CreateTodo は新しいToDoを作成します。
// 非Proユーザーが上限に達している場合はstore.ErrQuotaExceededを返します。
func (s *TodoService) CreateTodo(userID, title string, deadline time.Time) (*models.Todo, error) {
	return s.store.CreateTodo(userID, title, deadline)
}

// FindTodo はユーザーが所有する指定IDのToDoを取得します。
func (s *TodoService) FindTodo(userID, todoID string) (*models.Todo, error) {
	return s.store.FindTodo(userID, todoID)
}

// UpdateTodo はToDoのtitleとdeadlineを更新します。
func (s *TodoService) UpdateTodo(userID, todoID, title string, deadline time.Time) (*models.Todo, error) {
	return s.store.UpdateTodo(userID, todoID, title, deadline)
}

// MarkTodoDone はToDoを完了状態にします。
func (s *TodoService) MarkTodoDone(userID, todoID string) (*models.Todo, error) {
	return s.store.MarkTodoDone(userID, todoID)
}

// DeleteTodo はユーザーのリストからToDoを削除します。
func (s *TodoService) DeleteTodo(userID, todoID string) error {
	return s.store.RemoveTodo(userID, todoID)
}
