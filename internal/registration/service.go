package registration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitlab/backend/internal/model"
	"github.com/fitlab/backend/internal/repository"
)

// hashCost はbcryptのコストファクタ。固定値として扱う。
const hashCost = bcrypt.DefaultCost

// Service はユーザー登録のサービス層。
// 検証 → 重複チェック → ハッシュ化 → 永続化 を編成する。
type Service struct {
	userRepo repository.UserRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(userRepo repository.UserRepository) *Service {
	return &Service{userRepo: userRepo}
}

// Register は登録ペイロードを処理し、作成されたユーザーを返す。
// 検証エラーとメール重複は*model.ValidationErrorとして返し、
// その場合は部分的な永続化を一切行わない。
// 予期しないストア障害のみ通常のerrorとして伝播する。リトライは行わない。
func (s *Service) Register(ctx context.Context, in Input) (*model.User, error) {
	reg, fieldErrs := Validate(in)
	if len(fieldErrs) > 0 {
		return nil, &model.ValidationError{Fields: fieldErrs}
	}

	// 事前チェックは最適化にすぎず、本当の保証はemailの一意インデックス。
	// 同時登録のレースはINSERT時の一意制約違反として下で同じ結果に畳む。
	existing, err := s.userRepo.FindByEmail(ctx, reg.Email)
	if err != nil {
		return nil, fmt.Errorf("既存ユーザーの確認に失敗しました: %w", err)
	}
	if existing != nil {
		return nil, model.NewEmailTakenError()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), hashCost)
	if err != nil {
		return nil, fmt.Errorf("パスワードのハッシュ化に失敗しました: %w", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.NewString(),
		Email:        reg.Email,
		PasswordHash: string(hash),
		Role:         reg.Role,
		Profile:      reg.Profile,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, model.NewEmailTakenError()
		}
		return nil, fmt.Errorf("ユーザーの保存に失敗しました: %w", err)
	}

	// 平文パスワードはログに出さない
	slog.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}
