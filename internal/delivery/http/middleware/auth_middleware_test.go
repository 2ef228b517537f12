package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockservice "storefront/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeAuthenticate(t *testing.T, m *AuthMiddleware, authHeader string) *entity.Principal {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured *entity.Principal
	next := func(c echo.Context) error {
		captured = deliverycontext.GetPrincipal(c.Request().Context())

		return c.NoContent(http.StatusOK)
	}

	err := m.Authenticate(next)(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	return captured
}

func TestAuthenticate_ValidTokenInstallsPrincipal(t *testing.T) {
	t.Parallel()

	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("good-token").Return(&service.Claims{
		Email: "ops@example.com",
		Role:  "admin",
		Type:  "access",
	}, nil).Once()

	m := NewAuthMiddleware(tokenSvc)
	principal := invokeAuthenticate(t, m, "Bearer good-token")

	require.NotNil(t, principal)
	assert.Equal(t, "ops@example.com", principal.Email)
	assert.Equal(t, entity.RoleAdmin, principal.Role)
}

func TestAuthenticate_MissingTokenProceedsUnauthenticated(t *testing.T) {
	t.Parallel()

	tokenSvc := mockservice.NewMockTokenService(t)

	m := NewAuthMiddleware(tokenSvc)
	principal := invokeAuthenticate(t, m, "")

	assert.Nil(t, principal)
}

func TestAuthenticate_MalformedHeaderProceedsUnauthenticated(t *testing.T) {
	t.Parallel()

	tokenSvc := mockservice.NewMockTokenService(t)

	m := NewAuthMiddleware(tokenSvc)
	principal := invokeAuthenticate(t, m, "Basic dXNlcjpwYXNz")

	assert.Nil(t, principal)
}

func TestAuthenticate_InvalidTokenProceedsUnauthenticated(t *testing.T) {
	t.Parallel()

	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("expired-token").
		Return(nil, errors.New("token is expired")).Once()

	m := NewAuthMiddleware(tokenSvc)
	principal := invokeAuthenticate(t, m, "Bearer expired-token")

	assert.Nil(t, principal)
}

func TestAuthenticate_RefreshTokenNotAcceptedAsAccess(t *testing.T) {
	t.Parallel()

	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("refresh-token").Return(&service.Claims{
		Email: "ops@example.com",
		Role:  "admin",
		Type:  "refresh",
	}, nil).Once()

	m := NewAuthMiddleware(tokenSvc)
	principal := invokeAuthenticate(t, m, "Bearer refresh-token")

	assert.Nil(t, principal)
}

func TestAuthenticate_UnknownRoleClaimProceedsUnauthenticated(t *testing.T) {
	t.Parallel()

	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("odd-role-token").Return(&service.Claims{
		Email: "ops@example.com",
		Role:  "superuser",
		Type:  "access",
	}, nil).Once()

	m := NewAuthMiddleware(tokenSvc)
	principal := invokeAuthenticate(t, m, "Bearer odd-role-token")

	assert.Nil(t, principal)
}

func invokeRequireRole(t *testing.T, m *AuthMiddleware, principal *entity.Principal, required entity.Role) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	if principal != nil {
		ctx := deliverycontext.WithPrincipal(req.Context(), principal)
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	return m.RequireRole(required)(next)(c)
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(mockservice.NewMockTokenService(t))
	principal := &entity.Principal{Email: "ops@example.com", Role: entity.RoleAdmin}

	err := invokeRequireRole(t, m, principal, entity.RoleAdmin)

	assert.NoError(t, err)
}

func TestRequireRole_UnauthenticatedGets401(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	err := invokeRequireRole(t, m, nil, entity.RoleAdmin)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestRequireRole_WrongRoleGets403(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(mockservice.NewMockTokenService(t))
	principal := &entity.Principal{Email: "shopper@example.com", Role: entity.RoleCustomer}

	err := invokeRequireRole(t, m, principal, entity.RoleAdmin)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
