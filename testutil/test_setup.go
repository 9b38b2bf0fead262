package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"go-todo-pro/internal/models"
	"go-todo-pro/internal/routes"
	"go-todo-pro/internal/store"
)

// SetupTestRouter はテスト用のルーターと空のストアをセットアップします。
// ストアはテストごとに新規作成されるため、テスト間で状態は共有されません。
func SetupTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewStore()
	router := routes.SetupRouter(st)
	return router, st
}

// DoRequest はJSONボディとヘッダー付きのリクエストをルーターに投げます。
func DoRequest(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonBody)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

// CreateTestUser はAPI経由でテスト用ユーザーを作成します。
func CreateTestUser(t *testing.T, router *gin.Engine, name, username string) *models.User {
	t.Helper()

	resp := DoRequest(t, router, http.MethodPost, "/users", map[string]string{
		"name":     name,
		"username": username,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.Code, "ユーザー作成に失敗しました: %s", resp.Body.String())

	var user models.User
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &user))
	return &user
}

// CreateTestTodo はAPI経由でテスト用ToDoを作成します。
func CreateTestTodo(t *testing.T, router *gin.Engine, username, title, deadline string) *models.Todo {
	t.Helper()

	resp := DoRequest(t, router, http.MethodPost, "/todos", map[string]string{
		"title":    title,
		"deadline": deadline,
	}, map[string]string{"username": username})
	require.Equal(t, http.StatusCreated, resp.Code, "ToDo作成に失敗しました: %s", resp.Body.String())

	var todo models.Todo
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &todo))
	return &todo
}
