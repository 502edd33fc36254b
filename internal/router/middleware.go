package router

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"mosaic/internal/auth"
	apperrors "mosaic/internal/errors"
	"mosaic/internal/model"
)

func claimsFromContext(c echo.Context) (*auth.Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*auth.Claims)
	return claims, ok
}

// BlacklistGuard rejects access tokens that were invalidated by logout. It
// must run after the JWT middleware.
func BlacklistGuard(tokenStore auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := claimsFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if claims.ID != "" {
				blacklisted, _ := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
				if blacklisted {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}
			return next(c)
		}
	}
}

// AdminOnly requires an admin role claim.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFromContext(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		if claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "admin access required",
				Code:  "FORBIDDEN",
			})
		}
		return next(c)
	}
}
