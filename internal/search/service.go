// Package search はワークアウトのキーワード検索ロジックを提供する。
package search

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/fitlab/backend/internal/model"
)

// ResultLimit は検索結果の上限件数。
// ページネーションではなく固定の窓であり、これを超える結果を
// 取得する手段は提供しない。
const ResultLimit = 20

// WorkoutRepository は検索サービスが必要とするストア操作。
type WorkoutRepository interface {
	// SearchByPattern はエスケープ済みパターンでtitle、description、
	// goals、keywords、exercises[].nameを大文字小文字無視でOR検索し、
	// created_at降順で最大limit件を返す。
	SearchByPattern(ctx context.Context, pattern string, limit int) ([]*model.Workout, error)

	// DistinctGoals は全ワークアウトのgoal値の重複なし集合を返す。
	DistinctGoals(ctx context.Context) ([]string, error)
}

// Result は検索結果を表す。Workoutsはcreated_at降順。
type Result struct {
	Count    int
	Workouts []*model.Workout
}

// Service はワークアウト検索のサービス層。
type Service struct {
	workoutRepo WorkoutRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(workoutRepo WorkoutRepository) *Service {
	return &Service{workoutRepo: workoutRepo}
}

// BuildPattern はキーワードをリテラル部分文字列の正規表現パターンに変換する。
// メタ文字をすべてエスケープすることで、不正パターンによる失敗と
// 意図しないワイルドカードマッチの両方を防ぐ。
func BuildPattern(keyword string) string {
	return regexp.QuoteMeta(keyword)
}

// Search はキーワードでワークアウトを検索する。
// キーワードがトリム後に空の場合はKEYWORD_REQUIRED、
// 一致が0件の場合はNO_WORKOUTS_FOUNDの*model.APIErrorを返す。
// どちらも期待される結果であり、予期しない障害のみ通常のerrorとなる。
func (s *Service) Search(ctx context.Context, keyword string) (*Result, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, model.NewKeywordRequiredError()
	}

	workouts, err := s.workoutRepo.SearchByPattern(ctx, BuildPattern(keyword), ResultLimit)
	if err != nil {
		return nil, fmt.Errorf("ワークアウトの検索に失敗しました: %w", err)
	}

	if len(workouts) == 0 {
		return nil, model.NewNoWorkoutsFoundError()
	}

	return &Result{
		Count:    len(workouts),
		Workouts: workouts,
	}, nil
}

// ListGoals は保存されている全ワークアウトのgoal値の重複なし一覧を返す。
// フィルタもページネーションも行わない。
func (s *Service) ListGoals(ctx context.Context) ([]string, error) {
	goals, err := s.workoutRepo.DistinctGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("goal一覧の取得に失敗しました: %w", err)
	}
	return goals, nil
}
