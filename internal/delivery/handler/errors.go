package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/hitaloss/business/internal/domain"
)

const (
	msgNotAuthenticated   = "Authentication credentials were not provided."
	msgInvalidToken       = "Invalid token."
	msgInactiveUser       = "User inactive or deleted."
	msgNoCredentials      = "Invalid token header. No credentials provided."
	msgTokenHasSpaces     = "Invalid token header. Token string should not contain spaces."
	msgPermissionDenied   = "You do not have permission to perform this action."
	msgNotFound           = "Not found."
	msgThrottled          = "Request was throttled."
	msgServerError        = "A server error occurred."
	msgInvalidCredentials = "Unable to log in with provided credentials."
)

type detailResponse struct {
	Detail string `json:"detail"`
}

// NewHTTPErrorHandler renders every error as the JSON body clients of the
// API expect: field maps for validation failures, {"detail": ...} otherwise.
func NewHTTPErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := errorResponse(err, c.Request().Method)
		if status == http.StatusUnauthorized {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Token")
		}
		if status >= http.StatusInternalServerError {
			log.WithError(err).WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"path":       c.Request().URL.Path,
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			}).Error("request failed")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			log.WithError(err).Warn("failed to write error response")
		}
	}
}

func errorResponse(err error, method string) (int, any) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Fields
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, map[string][]string{domain.NonFieldErrors: {msgInvalidCredentials}}
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, detailResponse{msgNotAuthenticated}
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, detailResponse{msgInvalidToken}
	case errors.Is(err, domain.ErrInactiveUser):
		return http.StatusUnauthorized, detailResponse{msgInactiveUser}
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden, detailResponse{msgPermissionDenied}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, detailResponse{msgNotFound}
	case errors.Is(err, domain.ErrThrottled):
		return http.StatusTooManyRequests, detailResponse{msgThrottled}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound:
			return http.StatusNotFound, detailResponse{msgNotFound}
		case http.StatusMethodNotAllowed:
			return http.StatusMethodNotAllowed, detailResponse{fmt.Sprintf("Method %q not allowed.", method)}
		case http.StatusTooManyRequests:
			return http.StatusTooManyRequests, detailResponse{msgThrottled}
		}
		if httpErr.Code < http.StatusInternalServerError {
			if msg, ok := httpErr.Message.(string); ok {
				return httpErr.Code, detailResponse{msg}
			}
			return httpErr.Code, detailResponse{http.StatusText(httpErr.Code)}
		}
	}

	return http.StatusInternalServerError, detailResponse{msgServerError}
}
