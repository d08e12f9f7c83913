// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/fitlab/backend/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// FindByEmail は正規化済みメールアドレスでユーザーを検索する。
	// 見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// Create はユーザーを作成する。
	// emailの一意制約に違反した場合、IsUniqueViolationが真となる
	// エラーを返す。
	Create(ctx context.Context, user *model.User) error
}

// WorkoutRepository はワークアウトカタログの永続化インターフェース。
// カタログはシード時に書き込まれ、リクエスト処理からは読み取り専用。
type WorkoutRepository interface {
	// SearchByPattern はエスケープ済みの正規表現パターンで
	// title、description、goals、keywords、exercises[].nameを
	// 大文字小文字を無視してOR検索する。
	// created_at降順で最大limit件を返す。
	SearchByPattern(ctx context.Context, pattern string, limit int) ([]*model.Workout, error)

	// DistinctGoals は全ワークアウトに出現するgoal値の重複なし集合を返す。
	DistinctGoals(ctx context.Context) ([]string, error)

	// Count は保存されているワークアウト数を返す。
	Count(ctx context.Context) (int, error)

	// Create はワークアウトを作成する。シード処理専用。
	Create(ctx context.Context, workout *model.Workout) error
}
