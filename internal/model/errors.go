// Package model はドメインモデルを定義する。
package model

import (
	"fmt"
	"strings"
)

// FieldError はフィールド単位のバリデーションエラーを表す。
// ネストしたフィールドは "profileDetails.age" のようにドット区切りで表す。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError はバリデーションエラーの順序付き集合を表す。
// クライアントが修正可能なエラーであり、常にHTTP 400で返される。
// このエラーが返るとき、永続化は一切行われていない。
type ValidationError struct {
	Fields []FieldError
}

// Error はerrorインターフェースを実装する。
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewEmailTakenError はメールアドレス重複のエラーを生成する。
// 登録前の存在チェックとINSERT時の一意制約違反の両方で同じ形で返す。
func NewEmailTakenError() *ValidationError {
	return &ValidationError{Fields: []FieldError{
		{Field: "email", Message: "Email already registered"},
	}}
}

// APIError は検索系エンドポイントの構造化エラーを表す。
// 期待される失敗（キーワード未指定、結果0件）はこの型で返し、
// 予期しない障害のみが通常のerrorとして伝播する。
type APIError struct {
	Code    string // エラーコード
	Message string // クライアントへそのまま返すメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeKeywordRequired = "KEYWORD_REQUIRED"
	ErrCodeNoWorkoutsFound = "NO_WORKOUTS_FOUND"
)

// NewKeywordRequiredError はキーワード未指定エラーを生成する。
func NewKeywordRequiredError() *APIError {
	return &APIError{
		Code:    ErrCodeKeywordRequired,
		Message: "Keyword parameter is required",
	}
}

// NewNoWorkoutsFoundError は検索結果0件を表すエラーを生成する。
// 空リストの200ではなく404で返すのが既存クライアントとの互換契約。
func NewNoWorkoutsFoundError() *APIError {
	return &APIError{
		Code:    ErrCodeNoWorkoutsFound,
		Message: "No workouts found matching your search criteria",
	}
}
