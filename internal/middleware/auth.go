package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// AuthUser resolves the authenticated user from the token cookie or an
// Authorization bearer token and stores its id in the request context.
func AuthUser(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := parseToken(c, "token", secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not Authorized")
			}

			id, _ := claims["id"].(string)
			if id == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not Authorized")
			}

			c.Set("user_id", id)
			return next(c)
		}
	}
}

// AuthSeller gates admin endpoints on the configured seller identity.
func AuthSeller(secret, sellerEmail string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := parseToken(c, "sellerToken", secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not Authorized")
			}

			email, _ := claims["email"].(string)
			if email == "" || email != sellerEmail {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not Authorized")
			}

			return next(c)
		}
	}
}

func parseToken(c echo.Context, cookieName, secret string) (jwt.MapClaims, error) {
	tokenString := ""
	if cookie, err := c.Cookie(cookieName); err == nil {
		tokenString = cookie.Value
	}
	if tokenString == "" {
		header := c.Request().Header.Get("Authorization")
		tokenString = strings.TrimPrefix(header, "Bearer ")
	}
	if tokenString == "" {
		return nil, jwt.ErrTokenMalformed
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, err
	}

	return claims, nil
}
