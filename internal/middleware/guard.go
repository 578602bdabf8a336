// Package middleware provides the route guards composed in front of every
// handler that needs to know who is calling and whether they are allowed.
package middleware

import (
	"errors"
	"fmt"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"lagtalk/internal/auth"
	apperrors "lagtalk/internal/errors"
)

// identityKey is the echo context key the resolved identity is stored under.
const identityKey = "identity"

// Guard builds authentication middleware around the identity resolver.
// Guards hold no mutable state and are safe to share across requests.
type Guard struct {
	resolver   *auth.Resolver
	cookieName string
}

// NewGuard creates a guard factory. cookieName is the access token cookie
// consulted when no Authorization header is present.
func NewGuard(resolver *auth.Resolver, cookieName string) *Guard {
	return &Guard{resolver: resolver, cookieName: cookieName}
}

func (g *Guard) tokenLookup() string {
	return "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:" + g.cookieName
}

// RequireIdentity rejects requests without a valid token. The header wins
// over the cookie when both are present.
func (g *Guard) RequireIdentity() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  identityKey,
		TokenLookup: g.tokenLookup(),
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return g.resolver.ResolveToken(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, apperrors.ErrInvalidToken) || errors.Is(err, apperrors.ErrUserNotFound) {
				return err
			}
			// no token extracted at all
			return apperrors.ErrUnauthenticated
		},
	})
}

// OptionalIdentity resolves an identity when a valid token is present and
// leaves the request anonymous on any failure, so public endpoints can still
// personalize for logged-in callers.
func (g *Guard) OptionalIdentity() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  identityKey,
		TokenLookup: g.tokenLookup(),
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return g.resolver.ResolveToken(c.Request().Context(), token)
		},
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
	})
}

// RequireRole enforces a role requirement on an already-authenticated
// request. Admin passes every requirement. Must be chained after
// RequireIdentity.
func RequireRole(required auth.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return apperrors.ErrUnauthenticated
			}
			if !identity.Role.Satisfies(required) {
				return fmt.Errorf("%w: requires '%s' role", apperrors.ErrForbidden, required)
			}
			return next(c)
		}
	}
}

// RequireAdmin restricts a route to platform admins.
func RequireAdmin() echo.MiddlewareFunc { return RequireRole(auth.RoleAdmin) }

// RequireStudent restricts a route to students (and admins).
func RequireStudent() echo.MiddlewareFunc { return RequireRole(auth.RoleStudent) }

// RequireInstitution restricts a route to institution accounts (and admins).
func RequireInstitution() echo.MiddlewareFunc { return RequireRole(auth.RoleInstitution) }

// RequireVerified rejects callers whose email is not verified yet.
func RequireVerified() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return apperrors.ErrUnauthenticated
			}
			if !identity.IsVerified {
				return apperrors.ErrEmailNotVerified
			}
			return next(c)
		}
	}
}

// IdentityFrom returns the identity resolved by a guard, or false when the
// request is anonymous.
func IdentityFrom(c echo.Context) (*auth.Identity, bool) {
	identity, ok := c.Get(identityKey).(*auth.Identity)
	return identity, ok && identity != nil
}
