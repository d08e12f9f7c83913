// Package seed はワークアウトカタログの初期データ投入を提供する。
// カタログはアプリケーションからは読み取り専用で、書き込みはこの
// シード処理だけが行う。
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fitlab/backend/internal/model"
)

// WorkoutStore はシード処理が必要とするストア操作。
type WorkoutStore interface {
	// Count は保存されているワークアウト数を返す。
	Count(ctx context.Context) (int, error)
	// Create はワークアウトを作成する。
	Create(ctx context.Context, workout *model.Workout) error
}

// Seeder はワークアウトカタログのシード処理を実行する。
type Seeder struct {
	store  WorkoutStore
	logger *slog.Logger
}

// NewSeeder はSeederを生成する。
func NewSeeder(store WorkoutStore, logger *slog.Logger) *Seeder {
	return &Seeder{
		store:  store,
		logger: logger,
	}
}

// Run はカタログが空の場合のみ固定のワークアウト一式を投入する。
// すでに1件でもデータがある場合は何もせずに返る（冪等）。
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.store.Count(ctx)
	if err != nil {
		return fmt.Errorf("ワークアウト数の確認に失敗しました: %w", err)
	}
	if count > 0 {
		s.logger.Info("workout catalog already seeded, skipping",
			slog.Int("existing", count),
		)
		return nil
	}

	fixtures := Fixtures()
	now := time.Now().UTC()

	for i := range fixtures {
		w := fixtures[i]
		w.ID = uuid.NewString()
		// created_at降順で返す検索の順序が安定するよう、投入順に時刻をずらす
		w.CreatedAt = now.Add(time.Duration(i) * time.Second)
		w.Keywords = NormalizeKeywords(w.Keywords)

		if err := s.store.Create(ctx, &w); err != nil {
			return fmt.Errorf("ワークアウトの投入に失敗しました (%s): %w", w.Title, err)
		}
	}

	s.logger.Info("workout catalog seeded",
		slog.Int("count", len(fixtures)),
	)

	return nil
}

// NormalizeKeywords はキーワードを小文字化・トリムし、空要素を取り除く。
// キーワードは小文字・トリム済みで保存するのがモデルの不変条件。
func NormalizeKeywords(keywords []string) []string {
	normalized := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			normalized = append(normalized, k)
		}
	}
	return normalized
}
