package middleware

import (
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const accessTokenType = "access"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate derives the request principal from the Bearer access token.
// It never rejects a request: a missing, malformed, expired or tampered token
// simply leaves the request unauthenticated and the route policy decides
// downstream. Expired tokens get no grace period.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			return next(c)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Type != accessTokenType {
			return next(c)
		}

		role := entity.Role(claims.Role)
		if !role.IsValid() {
			return next(c)
		}

		principal := &entity.Principal{
			Email: claims.Email,
			Role:  role,
		}

		ctx := deliverycontext.WithPrincipal(c.Request().Context(), principal)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole is a middleware factory enforcing the route's role policy.
// Unauthenticated requests get 401, authenticated principals lacking the
// role get 403. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.GetPrincipal(c.Request().Context())
			if principal == nil {
				return domainerrors.ErrUnauthenticated
			}

			if principal.Role != requiredRole {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

func extractBearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}

	return tokenString
}
