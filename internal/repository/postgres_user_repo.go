package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/fitlab/backend/internal/model"
)

// PostgresUserRepo はPostgreSQLを使用したユーザーリポジトリ。
type PostgresUserRepo struct {
	db *sql.DB
}

// NewPostgresUserRepo はPostgresUserRepoを生成する。
func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

// FindByEmail は正規化済みメールアドレスでユーザーを検索する。
// 見つからない場合はnilを返す。
func (r *PostgresUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	var age sql.NullInt64
	var weight, height sql.NullFloat64

	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, role, age, weight, height, created_at, updated_at
		 FROM fit_users WHERE email = $1`,
		email,
	).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Role,
		&age, &weight, &height, &user.CreatedAt, &user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("メールアドレスによるユーザー検索に失敗しました: %w", err)
	}

	// プロフィール列はrole = traineeの行でのみ非NULL（CHECK制約）
	if age.Valid {
		user.Profile = &model.TraineeProfile{
			Age:    int(age.Int64),
			Weight: weight.Float64,
			Height: height.Float64,
		}
	}

	return user, nil
}

// Create はユーザーを作成する。
// Profileが非nilの場合のみプロフィール列に値を入れる。
func (r *PostgresUserRepo) Create(ctx context.Context, user *model.User) error {
	var age sql.NullInt64
	var weight, height sql.NullFloat64
	if user.Profile != nil {
		age = sql.NullInt64{Int64: int64(user.Profile.Age), Valid: true}
		weight = sql.NullFloat64{Float64: user.Profile.Weight, Valid: true}
		height = sql.NullFloat64{Float64: user.Profile.Height, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO fit_users (id, email, password_hash, role, age, weight, height, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.PasswordHash, string(user.Role),
		age, weight, height, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("ユーザーの作成に失敗しました: %w", err)
	}

	return nil
}

// IsUniqueViolation はPostgreSQLの一意制約違反（23505）かどうかを判定する。
// 登録の重複チェックとINSERTは単一トランザクションではないため、
// 同時登録のレースはこの違反として現れる。
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// compile-time interface check
var _ UserRepository = (*PostgresUserRepo)(nil)
