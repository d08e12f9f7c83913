package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/fitlab/backend/internal/model"
)

// --- モック ---

type mockWorkoutStore struct {
	countFn  func(ctx context.Context) (int, error)
	createFn func(ctx context.Context, workout *model.Workout) error
}

func (m *mockWorkoutStore) Count(ctx context.Context) (int, error) {
	return m.countFn(ctx)
}

func (m *mockWorkoutStore) Create(ctx context.Context, workout *model.Workout) error {
	return m.createFn(ctx, workout)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- テスト ---

// TestSeeder_Run_SeedsEmptyCatalog は空のカタログに全フィクスチャが
// 投入されることを検証する。
func TestSeeder_Run_SeedsEmptyCatalog(t *testing.T) {
	var created []*model.Workout
	store := &mockWorkoutStore{
		countFn: func(ctx context.Context) (int, error) {
			return 0, nil
		},
		createFn: func(ctx context.Context, workout *model.Workout) error {
			created = append(created, workout)
			return nil
		},
	}

	s := NewSeeder(store, discardLogger())
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := len(Fixtures())
	if len(created) != want {
		t.Fatalf("created %d workouts, want %d", len(created), want)
	}

	for i, w := range created {
		if w.ID == "" {
			t.Errorf("workout %d: expected generated ID", i)
		}
		if w.CreatedAt.IsZero() {
			t.Errorf("workout %d: expected CreatedAt to be set", i)
		}
	}

	// 投入順に時刻が単調増加すること（created_at降順の検索順序を安定させる）
	for i := 1; i < len(created); i++ {
		if !created[i].CreatedAt.After(created[i-1].CreatedAt) {
			t.Errorf("workout %d: CreatedAt should be after workout %d", i, i-1)
		}
	}
}

// TestSeeder_Run_SkipsNonEmptyCatalog はすでにデータがある場合に
// 何も投入しないことを検証する（冪等性）。
func TestSeeder_Run_SkipsNonEmptyCatalog(t *testing.T) {
	createCalled := false
	store := &mockWorkoutStore{
		countFn: func(ctx context.Context) (int, error) {
			return 8, nil
		},
		createFn: func(ctx context.Context, workout *model.Workout) error {
			createCalled = true
			return nil
		},
	}

	s := NewSeeder(store, discardLogger())
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if createCalled {
		t.Error("Create must not be called when the catalog is not empty")
	}
}

func TestSeeder_Run_CountFailure(t *testing.T) {
	store := &mockWorkoutStore{
		countFn: func(ctx context.Context) (int, error) {
			return 0, errors.New("connection reset")
		},
	}

	s := NewSeeder(store, discardLogger())
	if err := s.Run(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestSeeder_Run_CreateFailure(t *testing.T) {
	store := &mockWorkoutStore{
		countFn: func(ctx context.Context) (int, error) {
			return 0, nil
		},
		createFn: func(ctx context.Context, workout *model.Workout) error {
			return errors.New("insert failed")
		},
	}

	s := NewSeeder(store, discardLogger())
	if err := s.Run(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

// --- NormalizeKeywords ---

func TestNormalizeKeywords(t *testing.T) {
	got := NormalizeKeywords([]string{"  HIIT ", "Cardio", "", "  ", "fat burn"})
	want := []string{"hiit", "cardio", "fat burn"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeKeywords = %v, want %v", got, want)
	}
}

// --- フィクスチャの整合性 ---

// TestFixtures_AreValid はフィクスチャがモデルの不変条件を満たすことを検証する。
func TestFixtures_AreValid(t *testing.T) {
	fixtures := Fixtures()
	if len(fixtures) != 10 {
		t.Fatalf("len(Fixtures()) = %d, want 10", len(fixtures))
	}

	seen := make(map[string]bool)
	for _, w := range fixtures {
		if w.Title == "" {
			t.Error("fixture with empty title")
		}
		if seen[w.Title] {
			t.Errorf("duplicate fixture title %q", w.Title)
		}
		seen[w.Title] = true

		if w.Duration <= 0 {
			t.Errorf("%s: duration = %v, want > 0", w.Title, w.Duration)
		}
		if len(w.Goals) == 0 {
			t.Errorf("%s: expected at least one goal", w.Title)
		}
		for _, g := range w.Goals {
			if !g.IsValid() {
				t.Errorf("%s: invalid goal %q", w.Title, g)
			}
		}
		if len(w.Exercises) == 0 {
			t.Errorf("%s: expected at least one exercise", w.Title)
		}
		for _, e := range w.Exercises {
			if e.Name == "" || e.Sets <= 0 || e.Reps <= 0 {
				t.Errorf("%s: invalid exercise %+v", w.Title, e)
			}
		}
	}

	// カタログ全体が揃っていること
	for _, title := range []string{
		"HIIT Fat Burner",
		"Strength Foundation",
		"Endurance Builder",
		"Power Yoga Flow",
		"Advanced Strength",
		"Core Crusher",
		"Weight Loss Circuit",
		"Muscle Builder Pro",
		"Flexibility Focus",
		"Endurance Max",
	} {
		if !seen[title] {
			t.Errorf("missing fixture %q", title)
		}
	}
}
