package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// readMethods are served by every read-only route.
var readMethods = []string{http.MethodGet, http.MethodHead}

// NewRouter builds the echo instance serving the API. Every route answers
// both with and without a trailing slash.
func NewRouter(h *Handler, metrics *Metrics, log logrus.FieldLogger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(AccessLog(log))
	e.Use(metrics.Middleware)
	e.Use(middleware.Recover())

	e.Match(readMethods, "/healthz", h.Health)
	e.Match(readMethods, "/metrics", metrics.Handler)

	api := e.Group("/api", TokenAuth(h.authService))
	api.Match(readMethods, "/schema", h.Schema)
	api.POST("/login", h.Login)

	api.Match(readMethods, "/accounts", h.ListAccounts)
	api.POST("/accounts", h.CreateAccount)
	api.Match(readMethods, "/accounts/newest/:num", h.ListNewestAccounts)
	api.PATCH("/accounts/:id", h.UpdateAccount)
	api.PATCH("/accounts/:id/management", h.ManageAccount)

	api.Match(readMethods, "/products", h.ListProducts)
	api.POST("/products", h.CreateProduct)
	api.Match(readMethods, "/products/:id", h.GetProduct)
	api.PATCH("/products/:id", h.UpdateProduct)

	return e
}
