// Package registration はユーザー登録のドメインロジックを提供する。
package registration

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/fitlab/backend/internal/model"
)

// Input は登録リクエストの生のペイロードを表す。
// 欠落フィールドを検出するため各フィールドはポインタで受け取る。
// profileDetailsはフィールド単位の型エラーを報告するため、
// デコード前の生のマップのまま保持する。
type Input struct {
	Email          *string        `json:"email"`
	Password       *string        `json:"password"`
	Role           *string        `json:"role"`
	ProfileDetails map[string]any `json:"profileDetails"`
}

// Registration は検証・正規化済みの登録内容を表す。
// Validateのみが生成し、Profile非nil ⇔ Role = RoleTrainee を保証する。
type Registration struct {
	Email    string // 小文字・トリム済み
	Password string // 平文。ハッシュ化はサービス層が行う
	Role     model.Role
	Profile  *model.TraineeProfile
}

// emailPattern はlocal@domain形式の検証パターン。
var emailPattern = regexp.MustCompile(`^[\w-]+(\.[\w-]+)*@([\w-]+\.)+[a-zA-Z]{2,7}$`)

// passwordSpecialChars はパスワードに最低1文字要求される特殊文字の集合。
const passwordSpecialChars = "!@#$%^&*"

const passwordMinLength = 8

// Validate は登録ペイロードを検証し、正規化済みのRegistrationか
// フィールド単位のエラー列のどちらか一方のみを返す。
// fail-fastではなく、独立に評価できるルールはすべて評価して集める。
// 同じ入力に対して常に同じエラー列を同じ順序で返す。純粋関数でありI/Oを行わない。
func Validate(in Input) (*Registration, []model.FieldError) {
	var errs []model.FieldError

	email := validateEmail(in.Email, &errs)
	password := validatePassword(in.Password, &errs)
	role := validateRole(in.Role, &errs)

	// profileDetailsはroleとの相対で評価する。
	// trainee以外（trainer、欠落、不正値）ではprofileDetailsは禁止。
	var profile *model.TraineeProfile
	if role == model.RoleTrainee {
		profile = validateTraineeProfile(in.ProfileDetails, &errs)
	} else if in.ProfileDetails != nil {
		errs = append(errs, model.FieldError{
			Field:   "profileDetails",
			Message: "Profile details should not be provided for trainers",
		})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Registration{
		Email:    email,
		Password: password,
		Role:     role,
		Profile:  profile,
	}, nil
}

// validateEmail はメールアドレスをトリム・小文字化してから形式を検証する。
func validateEmail(v *string, errs *[]model.FieldError) string {
	if v == nil {
		*errs = append(*errs, model.FieldError{Field: "email", Message: "Email is required"})
		return ""
	}

	email := strings.ToLower(strings.TrimSpace(*v))
	if !emailPattern.MatchString(email) {
		*errs = append(*errs, model.FieldError{Field: "email", Message: "Please enter a valid email address"})
		return ""
	}

	return email
}

// validatePassword は長さと文字種の2条件を独立に検証する。
// 両方に違反するパスワードは2件のエラーを生む。
func validatePassword(v *string, errs *[]model.FieldError) string {
	if v == nil {
		*errs = append(*errs, model.FieldError{Field: "password", Message: "Password is required"})
		return ""
	}

	password := *v
	if len(password) < passwordMinLength {
		*errs = append(*errs, model.FieldError{
			Field:   "password",
			Message: "Password must be at least 8 characters long",
		})
	}
	if !strings.ContainsAny(password, "0123456789") || !strings.ContainsAny(password, passwordSpecialChars) {
		*errs = append(*errs, model.FieldError{
			Field:   "password",
			Message: "Password must contain at least one number and one special character",
		})
	}

	return password
}

// validateRole はroleが定義済みの値であることを検証する。
// 不正な場合は空のRoleを返す。
func validateRole(v *string, errs *[]model.FieldError) model.Role {
	if v == nil {
		*errs = append(*errs, model.FieldError{Field: "role", Message: "Role is required"})
		return ""
	}

	role := model.Role(*v)
	if !role.IsValid() {
		*errs = append(*errs, model.FieldError{Field: "role", Message: "Role must be either trainee or trainer"})
		return ""
	}

	return role
}

// validateTraineeProfile はトレーニー必須のプロフィールを検証する。
// age/weight/heightそれぞれが欠落・型不正・範囲外ごとに独自のエラーを生む。
func validateTraineeProfile(details map[string]any, errs *[]model.FieldError) *model.TraineeProfile {
	if details == nil {
		*errs = append(*errs, model.FieldError{
			Field:   "profileDetails",
			Message: "Profile details are required for trainees",
		})
		return nil
	}

	age, ageOK := numericField(details, "age", "Age", true, 1, 119, errs)
	weight, weightOK := numericField(details, "weight", "Weight", false, 1, 499, errs)
	height, heightOK := numericField(details, "height", "Height", false, 1, 299, errs)

	if !ageOK || !weightOK || !heightOK {
		return nil
	}

	return &model.TraineeProfile{
		Age:    int(age),
		Weight: weight,
		Height: height,
	}
}

// numericField はprofileDetails内の数値フィールド1つを検証して値を返す。
// エラーのフィールドパスは "profileDetails.<key>" となる。
func numericField(details map[string]any, key, label string, integer bool, min, max float64, errs *[]model.FieldError) (float64, bool) {
	field := "profileDetails." + key

	raw, present := details[key]
	if !present || raw == nil {
		*errs = append(*errs, model.FieldError{Field: field, Message: label + " is required for trainees"})
		return 0, false
	}

	// encoding/jsonはJSON数値をfloat64としてデコードする
	v, ok := raw.(float64)
	if !ok {
		*errs = append(*errs, model.FieldError{Field: field, Message: label + " must be a number"})
		return 0, false
	}

	if integer && v != math.Trunc(v) {
		*errs = append(*errs, model.FieldError{Field: field, Message: label + " must be an integer"})
		return 0, false
	}

	if v < min {
		*errs = append(*errs, model.FieldError{Field: field, Message: label + " must be greater than 0"})
		return 0, false
	}
	if v > max {
		upper := strconv.FormatFloat(max+1, 'f', -1, 64)
		*errs = append(*errs, model.FieldError{Field: field, Message: label + " must be less than " + upper})
		return 0, false
	}

	return v, true
}
