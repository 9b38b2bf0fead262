package models

// User はユーザーのインメモリ構造体を表します。
// JSONタグ: クライアントとの通信用
// bindingタグ: Ginでのリクエストバリデーション用
type User struct {
	ID       string  `json:"id"`       // UUID。作成時に採番され、以後不変
	Name     string  `json:"name"`     // 表示名（自由形式）
	Username string  `json:"username"` // 一意。作成時のみチェックされる
	Pro      bool    `json:"pro"`      // false -> true の一方向のみ
	Todos    []*Todo `json:"todos"`    // 挿入順 = 表示順
}

// CreateUserRequest はユーザー作成リクエストの構造体です。
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
}
