package store_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-todo-pro/internal/store"
)

func TestCreateUser_Success(t *testing.T) {
	st := store.NewStore()

	user, err := st.CreateUser("Ann", "ann")
	require.NoError(t, err)

	assert.NoError(t, uuid.Validate(user.ID), "IDはUUIDであること")
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "ann", user.Username)
	assert.False(t, user.Pro)
	assert.NotNil(t, user.Todos)
	assert.Empty(t, user.Todos)
}

func TestCreateUser_GeneratesDistinctIDs(t *testing.T) {
	st := store.NewStore()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		user, err := st.CreateUser("User", fmt.Sprintf("user%d", i))
		require.NoError(t, err)
		require.False(t, seen[user.ID], "IDが重複しないこと")
		seen[user.ID] = true
	}
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	st := store.NewStore()

	first, err := st.CreateUser("Ann", "ann")
	require.NoError(t, err)

	_, err = st.CreateUser("Another Ann", "ann")
	require.ErrorIs(t, err, store.ErrUsernameTaken)

	// 部分的な挿入が起きていないことを確認
	found, err := st.FindUserByUsername("ann")
	require.NoError(t, err)
	require.Equal(t, first.ID, found.ID)
	require.Equal(t, "Ann", found.Name)
}

func TestFindUser_NotFound(t *testing.T) {
	st := store.NewStore()

	_, err := st.FindUserByID(uuid.NewString())
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = st.FindUserByUsername("nobody")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestActivatePro_OneWay(t *testing.T) {
	st := store.NewStore()
	user, err := st.CreateUser("Ann", "ann")
	require.NoError(t, err)

	upgraded, err := st.ActivatePro(user.ID)
	require.NoError(t, err)
	require.True(t, upgraded.Pro)

	// 2回目は失敗するが、状態はproのまま
	_, err = st.ActivatePro(user.ID)
	require.ErrorIs(t, err, store.ErrProAlreadyActive)

	found, err := st.FindUserByID(user.ID)
	require.NoError(t, err)
	require.True(t, found.Pro)
}

func TestCreateTodo_Defaults(t *testing.T) {
	st := store.NewStore()
	user, err := st.CreateUser("Ann", "ann")
	require.NoError(t, err)

	deadline := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	todo, err := st.CreateTodo(user.ID, "buy milk", deadline)
	require.NoError(t, err)

	assert.NoError(t, uuid.Validate(todo.ID))
	assert.Equal(t, "buy milk", todo.Title)
	assert.Equal(t, deadline, todo.Deadline)
	assert.False(t, todo.Done)
	assert.WithinDuration(t, time.Now(), todo.CreatedAt, 5*time.Second)
}

func TestCreateTodo_QuotaBoundary(t *testing.T) {
	st := store.NewStore()
	user, err := st.CreateUser("Ann", "ann")
	require.NoError(t, err)

	deadline := time.Now().Add(24 * time.Hour)

	// 10件目までは成功する
	for i := 0; i < store.FreeTodoLimit; i++ {
		_, err := st.CreateTodo(user.ID, fmt.Sprintf("todo %d", i), deadline)
		require.NoError(t, err)
	}

	// 11件目は拒否される
	_, err = st.CreateTodo(user.ID, "one too many", deadline)
	require.ErrorIs(t, err, store.ErrQuotaExceeded)

	available, err := st.CanCreateTodo(user.ID)
	require.NoError(t, err)
	require.False(t, available)

	// Proに切り替えると上限が外れる
	_, err = st.ActivatePro(user.ID)
	require.NoError(t, err)

	_, err = st.CreateTodo(user.ID, "pro todo", deadline)
	require.NoError(t, err)

	todos, err := st.Todos(user.ID)
	require.NoError(t, err)
	require.Len(t, todos, store.FreeTodoLimit+1)
}

func TestCreateTodo_ConcurrentQuota(t *testing.T) {
	st := store.NewStore()
	user, err := st.CreateUser("Ann", "ann")
	require.NoError(t, err)

	deadline := time.Now().Add(24 * time.Hour)

	// 並列に作成しても上限を超えないこと
	const attempts = 50
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := st.CreateTodo(user.ID, fmt.Sprintf("todo %d", n), deadline)
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	var ok, rejected int
	for err := range results {
		if err == nil {
			ok++
		} else {
			require.ErrorIs(t, err, store.ErrQuotaExceeded)
			rejected++
		}
	}
	require.Equal(t, store.FreeTodoLimit, ok)
	require.Equal(t, attempts-store.FreeTodoLimit, rejected)

	todos, err := st.Todos(user.ID)
	require.NoError(t, err)
	require.Len(t, todos, store.FreeTodoLimit)
}

func TestUpdateTodo_KeepsDoneAndCreatedAt(t *testing.T) {
	st := store.NewStore()
	user, err := st.CreateUser("Ann", "ann")
	require.NoError(t, err)

	todo, err := st.CreateTodo(user.ID, "before", time.Now())
	require.NoError(t, err)

	_, err = st.MarkTodoDone(user.ID, todo.ID)
	require.NoError(t, err)

	newDeadline := time.Date(2031, 6, 15, 0, 0, 0, 0, time.UTC)
	updated, err := st.UpdateTodo(user.ID, todo.ID, "after", newDeadline)
	require.NoError(t, err)

	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, newDeadline, updated.Deadline)
	assert.True(t, updated.Done, "更新でdoneが巻き戻らないこと")
	assert.Equal(t, todo.CreatedAt, updated.CreatedAt)
}

func TestMarkTodoDone_Idempotent(t *testing.T) {
	st := store.NewStore()
	user, err := st.CreateUser("Ann", "ann")
	require.NoError(t, err)

	todo, err := st.CreateTodo(user.ID, "task", time.Now())
	require.NoError(t, err)

	first, err := st.MarkTodoDone(user.ID, todo.ID)
	require.NoError(t, err)
	require.True(t, first.Done)

	second, err := st.MarkTodoDone(user.ID, todo.ID)
	require.NoError(t, err)
	require.True(t, second.Done)
}

func TestRemoveTodo(t *testing.T) {
	st := store.NewStore()
	user, err := st.CreateUser("Ann", "ann")
	require.NoError(t, err)

	keep, err := st.CreateTodo(user.ID, "keep", time.Now())
	require.NoError(t, err)
	remove, err := st.CreateTodo(user.ID, "remove", time.Now())
	require.NoError(t, err)

	require.NoError(t, st.RemoveTodo(user.ID, remove.ID))

	todos, err := st.Todos(user.ID)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	require.Equal(t, keep.ID, todos[0].ID)

	// 存在しないIDの削除はリストを変更しない
	err = st.RemoveTodo(user.ID, remove.ID)
	require.ErrorIs(t, err, store.ErrTodoNotFound)

	todos, err = st.Todos(user.ID)
	require.NoError(t, err)
	require.Len(t, todos, 1)
}
