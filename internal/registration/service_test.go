package registration

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitlab/backend/internal/model"
)

// --- モック ---

type mockUserRepo struct {
	findByEmailFn func(ctx context.Context, email string) (*model.User, error)
	createFn      func(ctx context.Context, user *model.User) error
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

// --- テスト ---

// TestService_Register_Success は正常な登録でユーザーが作成され、
// パスワードがbcryptでハッシュ化されることを検証する。
func TestService_Register_Success(t *testing.T) {
	var created *model.User
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *model.User) error {
			created = user
			return nil
		},
	}

	svc := NewService(repo)
	user, err := svc.Register(context.Background(), validTraineeInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if user.ID == "" {
		t.Error("expected generated user ID")
	}
	if user.Email != "taro@example.com" {
		t.Errorf("Email = %q", user.Email)
	}
	if user.Role != model.RoleTrainee {
		t.Errorf("Role = %q", user.Role)
	}
	if user.Profile == nil {
		t.Fatal("trainee user should carry a profile")
	}

	// 平文は保存されず、ハッシュが元のパスワードを検証できること
	if user.PasswordHash == "secret1!pass" {
		t.Error("password must not be stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1!pass")); err != nil {
		t.Errorf("hash should verify the original password: %v", err)
	}

	if created == nil {
		t.Fatal("Create should be called")
	}
	if created.ID != user.ID {
		t.Errorf("created.ID = %q, want %q", created.ID, user.ID)
	}
}

// TestService_Register_ValidationFailureSkipsStore は検証失敗時に
// ストアへのアクセスが一切行われないことを検証する。
func TestService_Register_ValidationFailureSkipsStore(t *testing.T) {
	storeCalled := false
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			storeCalled = true
			return nil, nil
		},
		createFn: func(ctx context.Context, user *model.User) error {
			storeCalled = true
			return nil
		},
	}

	svc := NewService(repo)
	_, err := svc.Register(context.Background(), Input{})

	var valErr *model.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if storeCalled {
		t.Error("store must not be touched when validation fails")
	}
}

// TestService_Register_DuplicateEmail は事前チェックで重複が見つかった場合に
// Email already registeredのエラーが返ることを検証する。
func TestService_Register_DuplicateEmail(t *testing.T) {
	createCalled := false
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "existing", Email: email}, nil
		},
		createFn: func(ctx context.Context, user *model.User) error {
			createCalled = true
			return nil
		},
	}

	svc := NewService(repo)
	_, err := svc.Register(context.Background(), validTraineeInput())

	var valErr *model.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(valErr.Fields) != 1 || valErr.Fields[0].Message != "Email already registered" {
		t.Errorf("fields = %v", valErr.Fields)
	}
	if createCalled {
		t.Error("Create must not be called for duplicate email")
	}
}

// TestService_Register_UniqueViolationOnInsert は同時登録のレースで
// INSERTが一意制約違反になった場合も重複エラーに畳まれることを検証する。
func TestService_Register_UniqueViolationOnInsert(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *model.User) error {
			return &pq.Error{Code: "23505"}
		},
	}

	svc := NewService(repo)
	_, err := svc.Register(context.Background(), validTraineeInput())

	var valErr *model.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(valErr.Fields) != 1 || valErr.Fields[0].Message != "Email already registered" {
		t.Errorf("fields = %v", valErr.Fields)
	}
}

// TestService_Register_StoreFailure は予期しないストア障害が
// ValidationErrorではない通常のerrorとして伝播することを検証する。
func TestService_Register_StoreFailure(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *model.User) error {
			return errors.New("connection reset")
		},
	}

	svc := NewService(repo)
	_, err := svc.Register(context.Background(), validTraineeInput())
	if err == nil {
		t.Fatal("expected error")
	}

	var valErr *model.ValidationError
	if errors.As(err, &valErr) {
		t.Error("store failure must not be reported as a validation error")
	}
}
