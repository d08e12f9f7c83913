// Package handler はHTTPハンドラーとルーティングを提供する。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fitlab/backend/internal/metrics"
	"github.com/fitlab/backend/internal/model"
	"github.com/fitlab/backend/internal/registration"
)

// RegistrationServiceInterface は登録ハンドラーが必要とするサービスインターフェース。
type RegistrationServiceInterface interface {
	// Register は登録ペイロードを検証して永続化し、作成されたユーザーを返す。
	// 検証エラーとメール重複は*model.ValidationErrorとして返す。
	Register(ctx context.Context, in registration.Input) (*model.User, error)
}

// AuthHandler はユーザー登録のHTTPハンドラー。
type AuthHandler struct {
	service RegistrationServiceInterface
	metrics metrics.Recorder // nil可
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(service RegistrationServiceInterface, rec metrics.Recorder) *AuthHandler {
	return &AuthHandler{
		service: service,
		metrics: rec,
	}
}

// registerSuccessResponse は登録成功レスポンスのボディ。
type registerSuccessResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
}

// errorListResponse はフィールド単位エラーのレスポンスボディ。
// 登録エンドポイントの400と500はすべてこの形で返す。
type errorListResponse struct {
	Errors []model.FieldError `json:"errors"`
}

// Register はユーザー登録を処理する。
// POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in registration.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.recordFailure(metrics.ReasonValidation)
		writeJSON(w, http.StatusBadRequest, errorListResponse{
			Errors: []model.FieldError{{Field: "body", Message: "Invalid JSON request body"}},
		})
		return
	}

	user, err := h.service.Register(r.Context(), in)
	if err != nil {
		var valErr *model.ValidationError
		if errors.As(err, &valErr) {
			h.recordFailure(failureReason(valErr))
			writeJSON(w, http.StatusBadRequest, errorListResponse{Errors: valErr.Fields})
			return
		}

		// 予期しない障害。詳細はログのみに残し、クライアントには汎用メッセージを返す
		slog.Error("registration failed", slog.String("error", err.Error()))
		h.recordFailure(metrics.ReasonServer)
		writeJSON(w, http.StatusInternalServerError, errorListResponse{
			Errors: []model.FieldError{{Field: "server", Message: "Internal server error occurred"}},
		})
		return
	}

	if h.metrics != nil {
		h.metrics.RecordRegistration()
	}

	writeJSON(w, http.StatusCreated, registerSuccessResponse{
		Message: "Registration successful",
		Role:    string(user.Role),
	})
}

// failureReason はメール重複をconflict、それ以外をvalidationとして分類する。
// どちらもワイヤ上は同じ400のエラーリストだが、メトリクスでは区別する。
func failureReason(valErr *model.ValidationError) string {
	for _, f := range valErr.Fields {
		if f.Field == "email" && f.Message == "Email already registered" {
			return metrics.ReasonConflict
		}
	}
	return metrics.ReasonValidation
}

func (h *AuthHandler) recordFailure(reason string) {
	if h.metrics != nil {
		h.metrics.RecordRegistrationFailure(reason)
	}
}
