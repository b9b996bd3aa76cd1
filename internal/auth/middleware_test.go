package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/crm-service/internal/domain"
	apperrors "github.com/spec-kit/crm-service/pkg/util"
)

type fakeEmployeeRepo struct {
	employees map[int64]*domain.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, employee *domain.Employee) error {
	f.employees[employee.ID] = employee
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	employee, ok := f.employees[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return employee, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	for _, employee := range f.employees {
		if employee.Email == email {
			return employee, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newMiddlewareTestApp(t *testing.T, repo *fakeEmployeeRepo, tokens *TokenManager) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		},
	})

	middleware := NewAuthMiddleware(tokens, repo)
	app.Get("/protected", middleware.Handle, func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"id": identity.ID, "email": identity.Email})
	})
	return app
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)
	app := newMiddlewareTestApp(t, &fakeEmployeeRepo{employees: map[int64]*domain.Employee{}}, tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsMalformedHeader(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)
	app := newMiddlewareTestApp(t, &fakeEmployeeRepo{employees: map[int64]*domain.Employee{}}, tokens)

	for _, header := range []string{"Bearer", "Basic abc", "token-without-scheme"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestMiddlewareRejectsInvalidToken(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)
	app := newMiddlewareTestApp(t, &fakeEmployeeRepo{employees: map[int64]*domain.Employee{}}, tokens)

	token, _, err := other.GenerateToken(&domain.Employee{ID: 1, Email: "a@b.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsTokenForRemovedEmployee(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)
	// token encodes an employee the store no longer resolves
	app := newMiddlewareTestApp(t, &fakeEmployeeRepo{employees: map[int64]*domain.Employee{}}, tokens)

	token, _, err := tokens.GenerateToken(&domain.Employee{ID: 9, Email: "gone@b.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareAttachesIdentity(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)
	repo := &fakeEmployeeRepo{employees: map[int64]*domain.Employee{
		9: {ID: 9, Email: "ada@b.com"},
	}}
	app := newMiddlewareTestApp(t, repo, tokens)

	token, _, err := tokens.GenerateToken(repo.employees[9])
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
