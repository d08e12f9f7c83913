// Package model はドメインモデルを定義する。
package model

import "time"

// Role はユーザーの役割を表す。
type Role string

const (
	// RoleTrainee はトレーニングを受けるユーザー。身体プロフィールを持つ。
	RoleTrainee Role = "trainee"
	// RoleTrainer はトレーナー。身体プロフィールを持たない。
	RoleTrainer Role = "trainer"
)

// IsValid は定義済みの役割かどうかを返す。
func (r Role) IsValid() bool {
	return r == RoleTrainee || r == RoleTrainer
}

// TraineeProfile はトレーニーの身体プロフィールを表す。
// Role = RoleTrainee のユーザーのみが保持する。
type TraineeProfile struct {
	Age    int     // 1〜119
	Weight float64 // 1〜499 kg
	Height float64 // 1〜299 cm
}

// User は登録済みユーザーを表す。
// Profile は Role = RoleTrainee の場合のみ非nilとなる。
// この結合はregistration.Validateとfit_usersテーブルのCHECK制約の
// 両方で保証され、不正な組み合わせは生成できない。
type User struct {
	ID           string
	Email        string // 小文字・トリム済みで保存される
	PasswordHash string // bcryptハッシュ。平文はハッシュ化以降保持しない
	Role         Role
	Profile      *TraineeProfile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
