package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fitlab/backend/internal/metrics"
	"github.com/fitlab/backend/internal/model"
	"github.com/fitlab/backend/internal/search"
)

// SearchServiceInterface はワークアウトハンドラーが必要とするサービスインターフェース。
type SearchServiceInterface interface {
	// Search はキーワードでワークアウトを検索する。
	Search(ctx context.Context, keyword string) (*search.Result, error)
	// ListGoals は全ワークアウトのgoal値の重複なし一覧を返す。
	ListGoals(ctx context.Context) ([]string, error)
}

// WorkoutHandler はワークアウトカタログのHTTPハンドラー。
type WorkoutHandler struct {
	service SearchServiceInterface
	metrics metrics.Recorder // nil可
}

// NewWorkoutHandler はWorkoutHandlerを生成する。
func NewWorkoutHandler(service SearchServiceInterface, rec metrics.Recorder) *WorkoutHandler {
	return &WorkoutHandler{
		service: service,
		metrics: rec,
	}
}

// workoutResponse はワークアウト1件のAPIレスポンス。
type workoutResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Goals       []string         `json:"goals"`
	Difficulty  string           `json:"difficulty"`
	Duration    float64          `json:"duration"`
	Exercises   []model.Exercise `json:"exercises"`
	Keywords    []string         `json:"keywords"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// searchSuccessResponse は検索成功レスポンスのボディ。
type searchSuccessResponse struct {
	Success bool              `json:"success"`
	Count   int               `json:"count"`
	Data    []workoutResponse `json:"data"`
}

// goalsResponse はgoal一覧レスポンスのボディ。
type goalsResponse struct {
	Success bool     `json:"success"`
	Data    []string `json:"data"`
}

// searchErrorResponse は検索系の失敗レスポンス。
// 400と500はerrorフィールド、404はmessageフィールドを使う。
type searchErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Search はキーワード検索を処理する。
// GET /api/workouts/search?keyword=
func (h *WorkoutHandler) Search(w http.ResponseWriter, r *http.Request) {
	if h.metrics != nil {
		h.metrics.RecordSearch()
	}

	keyword := r.URL.Query().Get("keyword")

	result, err := h.service.Search(r.Context(), keyword)
	if err != nil {
		h.handleSearchError(w, err)
		return
	}

	data := make([]workoutResponse, len(result.Workouts))
	for i, wo := range result.Workouts {
		data[i] = toWorkoutResponse(wo)
	}

	writeJSON(w, http.StatusOK, searchSuccessResponse{
		Success: true,
		Count:   result.Count,
		Data:    data,
	})
}

// ListGoals はgoal一覧の取得を処理する。
// GET /api/workouts/goals
func (h *WorkoutHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.service.ListGoals(r.Context())
	if err != nil {
		slog.Error("goals fetch failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, searchErrorResponse{
			Success: false,
			Error:   "Internal server error while fetching goals",
		})
		return
	}

	writeJSON(w, http.StatusOK, goalsResponse{
		Success: true,
		Data:    goals,
	})
}

// handleSearchError はサービス層のエラーを検索APIのワイヤ形式に変換する。
// 結果0件は404で返す（空リストの200ではない）のが既存クライアントとの契約。
func (h *WorkoutHandler) handleSearchError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case model.ErrCodeKeywordRequired:
			writeJSON(w, http.StatusBadRequest, searchErrorResponse{
				Success: false,
				Error:   apiErr.Message,
			})
			return
		case model.ErrCodeNoWorkoutsFound:
			if h.metrics != nil {
				h.metrics.RecordSearchNoResults()
			}
			writeJSON(w, http.StatusNotFound, searchErrorResponse{
				Success: false,
				Message: apiErr.Message,
			})
			return
		}
	}

	slog.Error("workout search failed", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, searchErrorResponse{
		Success: false,
		Error:   "Internal server error while searching workouts",
	})
}

// toWorkoutResponse はドメインのWorkoutをAPIレスポンス形式に変換する。
func toWorkoutResponse(wo *model.Workout) workoutResponse {
	goals := make([]string, len(wo.Goals))
	for i, g := range wo.Goals {
		goals[i] = string(g)
	}

	return workoutResponse{
		ID:          wo.ID,
		Title:       wo.Title,
		Description: wo.Description,
		Goals:       goals,
		Difficulty:  string(wo.Difficulty),
		Duration:    wo.Duration,
		Exercises:   wo.Exercises,
		Keywords:    wo.Keywords,
		CreatedAt:   wo.CreatedAt,
	}
}
