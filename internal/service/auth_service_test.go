package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/church-cms/internal/config"
	"github.com/spec-kit/church-cms/internal/domain"
)

type memAdminRepo struct {
	byID map[string]*domain.Admin
	seq  int
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{byID: map[string]*domain.Admin{}}
}

func (r *memAdminRepo) Create(_ context.Context, admin *domain.Admin) error {
	r.seq++
	admin.ID = fmt.Sprintf("admin-%d", r.seq)
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = admin.CreatedAt
	copied := *admin
	r.byID[admin.ID] = &copied
	return nil
}

func (r *memAdminRepo) Update(_ context.Context, admin *domain.Admin) error {
	if _, ok := r.byID[admin.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *admin
	r.byID[admin.ID] = &copied
	return nil
}

func (r *memAdminRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	admin, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	admin.PasswordHash = passwordHash
	return nil
}

func (r *memAdminRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	admin, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	admin.LastLoginAt = &at
	return nil
}

func (r *memAdminRepo) GetByID(_ context.Context, id string) (*domain.Admin, error) {
	admin, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *admin
	return &copied, nil
}

func (r *memAdminRepo) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	for _, admin := range r.byID {
		if strings.EqualFold(admin.Email, email) {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newTestAuthService() (*AuthService, *memAdminRepo) {
	repo := newMemAdminRepo()
	svc := NewAuthService(config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
		BcryptCost:    bcrypt.MinCost,
	}, repo)
	return svc, repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	admin, token, _, err := svc.Register(ctx, RegisterInput{
		FirstName: "Grace",
		LastName:  "Adeyemi",
		Email:     "grace@example.com",
		Password:  "hunter22",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if admin.ID == "" {
		t.Fatal("Register() did not assign an id")
	}
	if admin.Role != domain.AdminRoleAdmin {
		t.Errorf("Role = %q, want %q", admin.Role, domain.AdminRoleAdmin)
	}

	id, err := svc.TokenManager().Parse(token)
	if err != nil || id != admin.ID {
		t.Errorf("registration token parse = (%q, %v), want (%q, nil)", id, err, admin.ID)
	}

	loggedIn, token, _, err := svc.Login(ctx, "grace@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if loggedIn.LastLoginAt == nil {
		t.Error("Login() did not record last login time")
	}
	if id, err := svc.TokenManager().Parse(token); err != nil || id != admin.ID {
		t.Errorf("login token parse = (%q, %v), want (%q, nil)", id, err, admin.ID)
	}
}

func TestRegisterNormalizesEmailCasing(t *testing.T) {
	svc, repo := newTestAuthService()
	ctx := context.Background()

	admin, _, _, err := svc.Register(ctx, RegisterInput{
		FirstName: "Grace", LastName: "Adeyemi", Email: "Grace@Example.COM", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if admin.Email != "grace@example.com" {
		t.Errorf("returned email = %q, want %q", admin.Email, "grace@example.com")
	}
	if stored := repo.byID[admin.ID].Email; stored != "grace@example.com" {
		t.Errorf("stored email = %q, want %q", stored, "grace@example.com")
	}

	// Login accepts any casing of the same address.
	if _, _, _, err := svc.Login(ctx, "GRACE@example.com", "hunter22"); err != nil {
		t.Errorf("Login() with upper-cased email error = %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	input := RegisterInput{FirstName: "Grace", LastName: "Adeyemi", Email: "grace@example.com", Password: "hunter22"}
	if _, _, _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, _, _, err := svc.Register(ctx, input); err == nil {
		t.Fatal("Register() with duplicate email expected error")
	}
}

func TestLoginGenericFailureMessage(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, _, _, err := svc.Register(ctx, RegisterInput{
		FirstName: "Grace", LastName: "Adeyemi", Email: "grace@example.com", Password: "hunter22",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, _, _, unknownErr := svc.Login(ctx, "nobody@example.com", "hunter22")
	_, _, _, wrongPassErr := svc.Login(ctx, "grace@example.com", "wrong")

	if unknownErr == nil || wrongPassErr == nil {
		t.Fatal("expected both login attempts to fail")
	}
	// Unknown accounts and wrong passwords must be indistinguishable.
	if unknownErr.Error() != wrongPassErr.Error() {
		t.Errorf("error messages differ: %q vs %q", unknownErr.Error(), wrongPassErr.Error())
	}
}

func TestLoginDeactivatedAccount(t *testing.T) {
	svc, repo := newTestAuthService()
	ctx := context.Background()

	admin, _, _, err := svc.Register(ctx, RegisterInput{
		FirstName: "Grace", LastName: "Adeyemi", Email: "grace@example.com", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	repo.byID[admin.ID].Active = false

	if _, _, _, err := svc.Login(ctx, "grace@example.com", "hunter22"); err == nil {
		t.Fatal("Login() on deactivated account expected error")
	}
}

func TestChangePassword(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	admin, _, _, err := svc.Register(ctx, RegisterInput{
		FirstName: "Grace", LastName: "Adeyemi", Email: "grace@example.com", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, _, err := svc.ChangePassword(ctx, admin.ID, "wrong", "newpassword"); err == nil {
		t.Fatal("ChangePassword() with wrong current password expected error")
	}

	token, _, err := svc.ChangePassword(ctx, admin.ID, "hunter22", "newpassword")
	if err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}
	if id, err := svc.TokenManager().Parse(token); err != nil || id != admin.ID {
		t.Errorf("rotated token parse = (%q, %v), want (%q, nil)", id, err, admin.ID)
	}

	if _, _, _, err := svc.Login(ctx, "grace@example.com", "hunter22"); err == nil {
		t.Error("Login() with old password expected to fail after rotation")
	}
	if _, _, _, err := svc.Login(ctx, "grace@example.com", "newpassword"); err != nil {
		t.Errorf("Login() with new password error = %v", err)
	}
}
