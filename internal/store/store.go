// Package store はプロセス内メモリ上でユーザーとToDoを保管します。
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-todo-pro/internal/models"
)

// FreeTodoLimit は無料（非Pro）ユーザーが保持できるToDoの上限数です。
const FreeTodoLimit = 10

var (
	ErrUsernameTaken    = errors.New("username already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrTodoNotFound     = errors.New("todo not found")
	ErrQuotaExceeded    = errors.New("todo quota exceeded")
	ErrProAlreadyActive = errors.New("pro plan already active")
)

// Store は全ユーザーを保持するインメモリストアです。
// プロセスの状態はここに集約され、永続化はされません。
// すべての参照・更新はミューテックスで直列化されます。
type Store struct {
	mu    sync.Mutex
	users []*models.User
}

// NewStore は空のStoreを作成します。
func NewStore() *Store {
	return &Store{}
}

// CreateUser は新しいユーザーを作成します。
// usernameが既存ユーザーと重複する場合はErrUsernameTakenを返し、
// ストアは変更されません（部分的な挿入は発生しない）。
func (s *Store) CreateUser(name, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return nil, ErrUsernameTaken
		}
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Username: username,
		Pro:      false,
		Todos:    []*models.Todo{},
	}
	s.users = append(s.users, user)

	return user, nil
}

// FindUserByID は指定されたIDのユーザーを線形探索で取得します。
func (s *Store) FindUserByID(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUserByID(id)
}

// FindUserByUsername は指定されたusernameのユーザーを線形探索で取得します。
func (s *Store) FindUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUserByUsername(username)
}

// ActivatePro はユーザーをProプランに切り替えます。
// 既にProの場合はErrProAlreadyActiveを返します（ダウングレードは存在しない）。
func (s *Store) ActivatePro(userID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.findUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user.Pro {
		return nil, ErrProAlreadyActive
	}
	user.Pro = true

	return user, nil
}

// Todos はユーザーのToDoリストのスナップショットを返します。
func (s *Store) Todos(userID string) ([]*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.findUserByID(userID)
	if err != nil {
		return nil, err
	}

	todos := make([]*models.Todo, len(user.Todos))
	copy(todos, user.Todos)
	return todos, nil
}

// CanCreateTodo はユーザーが新しいToDoを作成できるかを判定します。
// クォータガード用の純粋な述語で、副作用はありません。
func (s *Store) CanCreateTodo(userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.findUserByID(userID)
	if err != nil {
		return false, err
	}
	return user.Pro || len(user.Todos) < FreeTodoLimit, nil
}

// CreateTodo は新しいToDoを作成し、ユーザーのリスト末尾に追加します。
// クォータの判定と追加は同一クリティカルセクション内で行われるため、
// 並列リクエストでも上限を超えることはありません。
func (s *Store) CreateTodo(userID, title string, deadline time.Time) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.findUserByID(userID)
	if err != nil {
		return nil, err
	}
	if !user.Pro && len(user.Todos) >= FreeTodoLimit {
		return nil, ErrQuotaExceeded
	}

	todo := &models.Todo{
		ID:        uuid.NewString(),
		Title:     title,
		Deadline:  deadline,
		Done:      false,
		CreatedAt: time.Now(),
	}
	user.Todos = append(user.Todos, todo)

	return todo, nil
}

// FindTodo はユーザーが所有する指定IDのToDoを取得します。
func (s *Store) FindTodo(userID, todoID string) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.findUserByID(userID)
	if err != nil {
		return nil, err
	}
	for _, t := range user.Todos {
		if t.ID == todoID {
			return t, nil
		}
	}
	return nil, ErrTodoNotFound
}

// UpdateTodo はToDoのtitleとdeadlineのみを上書きします。
// doneとcreated_atには触れません。
func (s *Store) UpdateTodo(userID, todoID, title string, deadline time.Time) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, err := s.findTodo(userID, todoID)
	if err != nil {
		return nil, err
	}
	todo.Title = title
	todo.Deadline = deadline

	return todo, nil
}

// MarkTodoDone はToDoを完了状態にします。繰り返し呼んでも冪等です。
func (s *Store) MarkTodoDone(userID, todoID string) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, err := s.findTodo(userID, todoID)
	if err != nil {
		return nil, err
	}
	todo.Done = true

	return todo, nil
}

// RemoveTodo は所有者のリストから該当するToDoをちょうど1件削除します。
// 見つからない場合はErrTodoNotFoundを返し、リストは変更されません。
func (s *Store) RemoveTodo(userID, todoID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.findUserByID(userID)
	if err != nil {
		return err
	}
	for i, t := range user.Todos {
		if t.ID == todoID {
			user.Todos = append(user.Todos[:i], user.Todos[i+1:]...)
			return nil
		}
	}
	return ErrTodoNotFound
}

// findUserByID はロックを保持した状態で呼び出すこと。
func (s *Store) findUserByID(id string) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

// findUserByUsername はロックを保持した状態で呼び出すこと。
func (s *Store) findUserByUsername(username string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

// findTodo はロックを保持した状態で呼び出すこと。
func (s *Store) findTodo(userID, todoID string) (*models.Todo, error) {
	user, err := s.findUserByID(userID)
	if err != nil {
		return nil, err
	}
	for _, t := range user.Todos {
		if t.ID == todoID {
			return t, nil
		}
	}
	return nil, ErrTodoNotFound
}
