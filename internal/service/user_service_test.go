package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/davidly-empire/security-verifier-server/internal/dto"
)

func newUserFixture(t *testing.T) (UserService, *mockRepos) {
	t.Helper()
	repo, mocks := newMockRepository()
	return NewUserService(repo, zap.NewNop()), mocks
}

func TestUserCreateHashesPassword(t *testing.T) {
	svc, mocks := newUserFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateUserRequest{
		FullName:    "Ram Singh",
		Email:       "ram@example.com",
		Password:    "secret123",
		Role:        "guard",
		FactoryCode: "F1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	stored, err := mocks.user.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.PasswordHash == "secret123" || stored.PasswordHash == "" {
		t.Error("password stored without hashing")
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	req := &dto.CreateUserRequest{
		FullName: "Ram Singh",
		Email:    "ram@example.com",
		Password: "secret123",
		Role:     "guard",
	}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestUserGetMissing(t *testing.T) {
	svc, _ := newUserFixture(t)

	if _, err := svc.GetByID(context.Background(), "nope"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestUserListByRoleWithPaging(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	seed := []dto.CreateUserRequest{
		{FullName: "Ram Singh", Email: "ram@example.com", Password: "secret123", Role: "guard"},
		{FullName: "Shyam Lal", Email: "shyam@example.com", Password: "secret123", Role: "guard"},
		{FullName: "Admin User", Email: "admin@example.com", Password: "secret123", Role: "admin"},
	}
	for i := range seed {
		if _, err := svc.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create %s: %v", seed[i].Email, err)
		}
	}

	guards, total, err := svc.List(ctx, &dto.UserListRequest{Role: "guard", Page: 1, PageSize: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	if len(guards) != 1 {
		t.Errorf("page size = %d, want 1", len(guards))
	}
}
