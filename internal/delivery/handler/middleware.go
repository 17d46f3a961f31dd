package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/hitaloss/business/internal/application/interfaces"
	"github.com/hitaloss/business/internal/domain/entities"
)

const actorKey = "actor"

// TokenAuth resolves "Authorization: Token <key>" (or "Bearer <key>") to a
// user and stores it on the context. Requests without credentials, or with
// another scheme, continue anonymously; malformed or unknown tokens are
// rejected on every route.
func TokenAuth(authService interfaces.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			parts := strings.Fields(c.Request().Header.Get(echo.HeaderAuthorization))
			if len(parts) == 0 {
				return next(c)
			}
			scheme := strings.ToLower(parts[0])
			if scheme != "token" && scheme != "bearer" {
				return next(c)
			}

			if len(parts) == 1 {
				return echo.NewHTTPError(http.StatusUnauthorized, msgNoCredentials)
			}
			if len(parts) > 2 {
				return echo.NewHTTPError(http.StatusUnauthorized, msgTokenHasSpaces)
			}

			user, err := authService.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				return err
			}
			c.Set(actorKey, user)
			return next(c)
		}
	}
}

// actor returns the authenticated user, or nil for anonymous requests.
func actor(c echo.Context) *entities.User {
	user, _ := c.Get(actorKey).(*entities.User)
	return user
}

func AccessLog(log logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			fields := logrus.Fields{
				"method":     req.Method,
				"path":       req.URL.Path,
				"status":     c.Response().Status,
				"latency_ms": time.Since(start).Milliseconds(),
				"remote_ip":  c.RealIP(),
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			}
			if user := actor(c); user != nil {
				fields["user_id"] = user.Id
			}
			log.WithFields(fields).Info("request")
			return nil
		}
	}
}
