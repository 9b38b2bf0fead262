// Package routesはroutingを行います。
package routes

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go-todo-pro/internal/handlers"
	"go-todo-pro/internal/services"
	"go-todo-pro/internal/store"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(st *store.Store) *gin.Engine {
	r := gin.Default()

	// CORS対策
	config := cors.DefaultConfig()
	origins := os.Getenv("CORS_ALLOW_ORIGINS")
	if origins == "" || origins == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = strings.Split(origins, ",")
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "username"}
	r.Use(cors.New(config))

	// サービス
	userService := services.NewUserService(st)
	todoService := services.NewTodoService(st)

	// ハンドラー
	userHandler := handlers.NewUserHandler(userService)
	todoHandler := handlers.NewTodoHandler(todoService)

	// ルーティング
	r.GET("/healthz", HealthHandler)

	r.POST("/users", userHandler.CreateUserHandler)
	r.GET("/users/:id", FindUserByID(userService), userHandler.GetUserHandler)
	r.PATCH("/users/:id/pro", FindUserByID(userService), userHandler.ActivateProHandler)

	todos := r.Group("/todos")
	{
		todos.GET("", ChecksExistsUserAccount(userService), todoHandler.GetTodosHandler)
		todos.POST("", ChecksExistsUserAccount(userService), ChecksCreateTodosUserAvailability(todoService), todoHandler.CreateTodoHandler)
		todos.PUT("/:id", ChecksTodoExists(userService, todoService), todoHandler.UpdateTodoHandler)
		todos.PATCH("/:id/done", ChecksTodoExists(userService, todoService), todoHandler.DoneTodoHandler)
		todos.DELETE("/:id", ChecksExistsUserAccount(userService), ChecksTodoExists(userService, todoService), todoHandler.DeleteTodoHandler)
	}

	return r
}

// HealthHandler は死活監視用のハンドラーです。
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
