package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"go-todo-pro/internal/routes"
	"go-todo-pro/internal/store"
)

func main() {
	// .envはローカル開発用。無くても環境変数だけで起動できる
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// プロセス唯一の状態コンテナ。再起動で全データは消える。
	st := store.NewStore()

	r := routes.SetupRouter(st)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// サーバー起動
	log.Printf("Server listening on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
