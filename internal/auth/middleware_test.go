package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/church-cms/internal/domain"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

type fakeAdminRepo struct {
	admins map[string]*domain.Admin
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *domain.Admin) error {
	r.admins[admin.ID] = admin
	return nil
}

func (r *fakeAdminRepo) Update(_ context.Context, admin *domain.Admin) error {
	r.admins[admin.ID] = admin
	return nil
}

func (r *fakeAdminRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	if admin, ok := r.admins[id]; ok {
		admin.PasswordHash = passwordHash
		return nil
	}
	return pgx.ErrNoRows
}

func (r *fakeAdminRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	if admin, ok := r.admins[id]; ok {
		admin.LastLoginAt = &at
	}
	return nil
}

func (r *fakeAdminRepo) GetByID(_ context.Context, id string) (*domain.Admin, error) {
	admin, ok := r.admins[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *admin
	return &copied, nil
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	for _, admin := range r.admins {
		if admin.Email == email {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newTestApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{
				"status":  "error",
				"message": de.Message,
			})
		}
		return nil
	})
	app.Get("/protected", handlers...)
	return app
}

func doRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	return resp
}

func TestAuthMiddleware(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	repo := &fakeAdminRepo{admins: map[string]*domain.Admin{
		"admin-1": {ID: "admin-1", Email: "a@example.com", PasswordHash: "hash", Role: domain.AdminRoleAdmin, Active: true},
		"admin-2": {ID: "admin-2", Email: "b@example.com", Role: domain.AdminRoleAdmin, Active: false},
	}}
	mw := NewAuthMiddleware(tm, repo)

	validToken, _, err := tm.Generate("admin-1")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	deactivatedToken, _, _ := tm.Generate("admin-2")
	ghostToken, _, _ := tm.Generate("admin-gone")

	app := newTestApp(mw.Handle, func(c *fiber.Ctx) error {
		admin, ok := AdminFromContext(c)
		if !ok {
			t.Error("principal missing after successful auth")
			return fiber.ErrInternalServerError
		}
		if admin.PasswordHash != "" {
			t.Error("password hash leaked into principal")
		}
		return c.JSON(fiber.Map{"id": admin.ID})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"unknown admin", "Bearer " + ghostToken, http.StatusUnauthorized},
		{"deactivated admin", "Bearer " + deactivatedToken, http.StatusUnauthorized},
		{"valid token", "Bearer " + validToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, tt.header)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestRequireRoleOrdering(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	repo := &fakeAdminRepo{admins: map[string]*domain.Admin{
		"admin-1": {ID: "admin-1", Email: "a@example.com", Role: domain.AdminRoleAdmin, Active: true},
	}}
	mw := NewAuthMiddleware(tm, repo)
	token, _, _ := tm.Generate("admin-1")

	okHandler := func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) }

	t.Run("insufficient role yields 403", func(t *testing.T) {
		app := newTestApp(mw.Handle, RequireRole(domain.AdminRoleSuperadmin), okHandler)
		resp := doRequest(t, app, "Bearer "+token)
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusForbidden)
		}
	})

	t.Run("unauthenticated yields 401 before role check", func(t *testing.T) {
		app := newTestApp(mw.Handle, RequireRole(domain.AdminRoleSuperadmin), okHandler)
		resp := doRequest(t, app, "")
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
		}
	})

	t.Run("listed role passes", func(t *testing.T) {
		app := newTestApp(mw.Handle, RequireRole(domain.AdminRoleAdmin, domain.AdminRoleSuperadmin), okHandler)
		resp := doRequest(t, app, "Bearer "+token)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
	})
}

func TestHandleOptional(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	repo := &fakeAdminRepo{admins: map[string]*domain.Admin{
		"admin-1": {ID: "admin-1", Email: "a@example.com", Role: domain.AdminRoleAdmin, Active: true},
	}}
	mw := NewAuthMiddleware(tm, repo)
	token, _, _ := tm.Generate("admin-1")

	app := newTestApp(mw.HandleOptional, func(c *fiber.Ctx) error {
		_, ok := AdminFromContext(c)
		return c.JSON(fiber.Map{"authenticated": ok})
	})

	check := func(t *testing.T, header string, wantAuthenticated bool) {
		t.Helper()
		resp := doRequest(t, app, header)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
		var body struct {
			Authenticated bool `json:"authenticated"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Authenticated != wantAuthenticated {
			t.Errorf("authenticated = %v, want %v", body.Authenticated, wantAuthenticated)
		}
	}

	t.Run("no token continues anonymous", func(t *testing.T) { check(t, "", false) })
	t.Run("invalid token continues anonymous", func(t *testing.T) { check(t, "Bearer junk", false) })
	t.Run("valid token attaches principal", func(t *testing.T) { check(t, "Bearer "+token, true) })
}
