package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/fitlab/backend/internal/model"
)

// PostgresWorkoutRepo はPostgreSQLを使用したワークアウトリポジトリ。
type PostgresWorkoutRepo struct {
	db *sql.DB
}

// NewPostgresWorkoutRepo はPostgresWorkoutRepoを生成する。
func NewPostgresWorkoutRepo(db *sql.DB) *PostgresWorkoutRepo {
	return &PostgresWorkoutRepo{db: db}
}

// searchQuery は対象5フィールドを大文字小文字無視の正規表現（~*）で
// OR検索する。goalsとkeywordsはtext[]をunnestして各要素を、
// exercisesはjsonb配列の各要素のnameを対象にする。
// パターンはregexp.QuoteMetaでエスケープ済みであることを前提とする。
const searchQuery = `
SELECT id, title, description, goals, difficulty, duration, exercises, keywords, created_at
FROM workouts
WHERE title ~* $1
   OR description ~* $1
   OR EXISTS (SELECT 1 FROM unnest(goals) AS g WHERE g ~* $1)
   OR EXISTS (SELECT 1 FROM unnest(keywords) AS k WHERE k ~* $1)
   OR EXISTS (SELECT 1 FROM jsonb_array_elements(exercises) AS e WHERE e->>'name' ~* $1)
ORDER BY created_at DESC
LIMIT $2`

// SearchByPattern はエスケープ済みパターンでワークアウトをOR検索する。
// created_at降順（新しい順）で最大limit件を返す。
func (r *PostgresWorkoutRepo) SearchByPattern(ctx context.Context, pattern string, limit int) ([]*model.Workout, error) {
	rows, err := r.db.QueryContext(ctx, searchQuery, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("ワークアウトの検索に失敗しました: %w", err)
	}
	defer rows.Close()

	var workouts []*model.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("検索結果の読み取りに失敗しました: %w", err)
	}

	return workouts, nil
}

// scanWorkout は結果セットの1行をmodel.Workoutに変換する。
func scanWorkout(rows *sql.Rows) (*model.Workout, error) {
	w := &model.Workout{}
	var goals []string
	var exercisesJSON []byte

	err := rows.Scan(
		&w.ID, &w.Title, &w.Description, pq.Array(&goals),
		&w.Difficulty, &w.Duration, &exercisesJSON, pq.Array(&w.Keywords),
		&w.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("ワークアウト行の読み取りに失敗しました: %w", err)
	}

	w.Goals = make([]model.Goal, len(goals))
	for i, g := range goals {
		w.Goals[i] = model.Goal(g)
	}

	if err := json.Unmarshal(exercisesJSON, &w.Exercises); err != nil {
		return nil, fmt.Errorf("exercisesの解析に失敗しました: %w", err)
	}

	return w, nil
}

// DistinctGoals は全ワークアウトに出現するgoal値の重複なし集合を返す。
func (r *PostgresWorkoutRepo) DistinctGoals(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT g FROM workouts, unnest(goals) AS g ORDER BY g`)
	if err != nil {
		return nil, fmt.Errorf("goal一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	// ワークアウトが0件でもnilではなく空リストを返す
	goals := []string{}
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("goal値の読み取りに失敗しました: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("goal一覧の読み取りに失敗しました: %w", err)
	}

	return goals, nil
}

// Count は保存されているワークアウト数を返す。
func (r *PostgresWorkoutRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM workouts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ワークアウト数の取得に失敗しました: %w", err)
	}
	return count, nil
}

// Create はワークアウトを作成する。シード処理専用。
func (r *PostgresWorkoutRepo) Create(ctx context.Context, workout *model.Workout) error {
	exercisesJSON, err := json.Marshal(workout.Exercises)
	if err != nil {
		return fmt.Errorf("exercisesのエンコードに失敗しました: %w", err)
	}

	goals := make([]string, len(workout.Goals))
	for i, g := range workout.Goals {
		goals[i] = string(g)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO workouts (id, title, description, goals, difficulty, duration, exercises, keywords, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		workout.ID, workout.Title, workout.Description, pq.Array(goals),
		string(workout.Difficulty), workout.Duration, exercisesJSON,
		pq.Array(workout.Keywords), workout.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("ワークアウトの作成に失敗しました: %w", err)
	}

	return nil
}

// compile-time interface check
var _ WorkoutRepository = (*PostgresWorkoutRepo)(nil)
