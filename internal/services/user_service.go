package services

import (
	"go-todo-pro/internal/models"
	"go-todo-pro/internal/store"
)

// UserService はユーザー関連のビジネスロジックを扱います。
type UserService struct {
	store *store.Store
}

// NewUserService は新しいUserServiceを作成します。
func NewUserService(st *store.Store) *UserService {
	return &UserService{store: st}
}

// CreateUser は新しいユーザーを登録します。
// usernameの一意性は作成時のみ検証されます（リネーム操作は存在しない）。
func (s *UserService) CreateUser(req models.CreateUserRequest) (*models.User, error) {
	return s.store.CreateUser(req.Name, req.Username)
}

// FindByID はIDでユーザーを取得します。
func (s *UserService) FindByID(id string) (*models.User, error) {
	return s.store.FindUserByID(id)
}

// FindByUsername はusernameでユーザーを取得します。
func (s *UserService) FindByUsername(username string) (*models.User, error) {
	return s.store.FindUserByUsername(username)
}

// ActivatePro はユーザーをProプランに切り替えます。
func (s *UserService) ActivatePro(userID string) (*models.User, error) {
	return s.store.ActivatePro(userID)
}
