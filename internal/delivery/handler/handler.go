package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hitaloss/business/internal/application/command"
	"github.com/hitaloss/business/internal/application/interfaces"
	"github.com/hitaloss/business/internal/domain"
)

const headerIdempotencyKey = "Idempotency-Key"

type Handler struct {
	userService    interfaces.UserService
	productService interfaces.ProductService
	authService    interfaces.AuthService
}

func NewHandler(userService interfaces.UserService, productService interfaces.ProductService, authService interfaces.AuthService) *Handler {
	return &Handler{
		userService:    userService,
		productService: productService,
		authService:    authService,
	}
}

func (h *Handler) Login(c echo.Context) error {
	var loginCommand command.LoginUserCommand
	decodeBody(c, &loginCommand)
	loginCommand.ClientIP = c.RealIP()

	result, err := h.authService.LoginUser(c.Request().Context(), &loginCommand)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) ListAccounts(c echo.Context) error {
	result, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) CreateAccount(c echo.Context) error {
	var createCommand command.CreateUserCommand
	decodeBody(c, &createCommand)
	createCommand.IdempotencyKey = c.Request().Header.Get(headerIdempotencyKey)

	result, err := h.userService.CreateUser(c.Request().Context(), &createCommand)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result.Result)
}

// ListNewestAccounts answers /api/accounts/newest/:num. A num that is not
// a non-negative integer does not match the route.
func (h *Handler) ListNewestAccounts(c echo.Context) error {
	num, err := strconv.Atoi(c.Param("num"))
	if err != nil || num < 0 {
		return domain.ErrNotFound
	}

	result, err := h.userService.ListNewestUsers(c.Request().Context(), num)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) UpdateAccount(c echo.Context) error {
	updateCommand := command.UpdateUserCommand{Actor: actor(c), Id: pathID(c)}
	decodeBody(c, &updateCommand)

	result, err := h.userService.UpdateUser(c.Request().Context(), &updateCommand)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) ManageAccount(c echo.Context) error {
	manageCommand := command.ManageUserCommand{Actor: actor(c), Id: pathID(c)}
	decodeBody(c, &manageCommand)

	result, err := h.userService.ManageUser(c.Request().Context(), &manageCommand)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) ListProducts(c echo.Context) error {
	result, err := h.productService.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) CreateProduct(c echo.Context) error {
	createCommand := command.CreateProductCommand{Actor: actor(c)}
	decodeBody(c, &createCommand)
	createCommand.IdempotencyKey = c.Request().Header.Get(headerIdempotencyKey)

	result, err := h.productService.CreateProduct(c.Request().Context(), &createCommand)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result.Result)
}

func (h *Handler) GetProduct(c echo.Context) error {
	result, err := h.productService.FindProductById(c.Request().Context(), pathID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	updateCommand := command.UpdateProductCommand{Actor: actor(c), Id: pathID(c)}
	decodeBody(c, &updateCommand)

	result, err := h.productService.UpdateProduct(c.Request().Context(), &updateCommand)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses the :id parameter. A malformed id becomes uuid.Nil, which
// never matches a stored row, so the lookup reports it as not found after
// the usual authentication checks.
func pathID(c echo.Context) uuid.UUID {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil
	}
	return id
}
