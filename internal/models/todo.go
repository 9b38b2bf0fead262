// Package modelsはUserとTodoを定義します。
package models

import (
	"fmt"
	"time"
)

// Todo は ToDoタスクの構造体を表します。
// 各Todoはちょうど1人のユーザーに所有されます。
type Todo struct {
	// ID: UUID。作成時に採番され、以後不変
	ID string `json:"id"`

	// Title: タスクのタイトル
	Title string `json:"title"`

	// Deadline: 期限。更新で再設定可能
	Deadline time.Time `json:"deadline"`

	// Done: 完了状態。false -> true の一方向のみ（取り消し操作なし）
	Done bool `json:"done"`

	// CreatedAt: 作成日時。作成時に一度だけ設定される
	CreatedAt time.Time `json:"created_at"`
}

// TodoRequest は ToDoの作成・更新リクエストの構造体です。
// deadlineは文字列で受け取り、ParseDeadlineで変換します。
type TodoRequest struct {
	Title    string `json:"title" binding:"required"`
	Deadline string `json:"deadline" binding:"required"`
}

// deadlineLayouts はdeadlineとして受け付ける日時フォーマットです。
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDeadline はリクエストのdeadline文字列をtime.Timeに変換します。
func ParseDeadline(s string) (time.Time, error) {
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse deadline %q", s)
}
