package handler

import (
	"errors"
	"net/http"

	"vendhub/internal/domain/model"
	"vendhub/internal/middleware"
	"vendhub/internal/repository"
	auth "vendhub/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	registerUC *auth.RegisterUserUsecase // 会員登録usecase
	loginUC    *auth.LoginUsecase        // ログインusecase
	users      repository.UserRepository // /auth/me用
}

// DIコンストラクタ
func NewAuthHandler(
	registerUC *auth.RegisterUserUsecase,
	loginUC *auth.LoginUsecase,
	users repository.UserRepository,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		users:      users,
	}
}

// /auth/register のリクエストボディ。
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`

	FarmName     string `json:"farmName"`
	FarmLocation string `json:"farmLocation"`

	CompanyName  string        `json:"companyName"`
	Address      model.Address `json:"address"`
	BusinessType string        `json:"businessType"`
	GSTNumber    string        `json:"gstNumber"`

	AdminLevel string `json:"adminLevel"`
}

// /auth/login のリクエストボディ。
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.POST("/auth/register", h.register)
	e.POST("/auth/login", h.login)
	e.GET("/auth/me", h.me, middleware.AuthJWT(jwtSecret))
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_input", Msg: "invalid body"})
	}

	out, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterUserInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		FarmName:     req.FarmName,
		FarmLocation: req.FarmLocation,
		CompanyName:  req.CompanyName,
		Address:      req.Address,
		BusinessType: req.BusinessType,
		GSTNumber:    req.GSTNumber,
		AdminLevel:   req.AdminLevel,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_input", Msg: "Please enter all required fields: name, email, password, and role."})
		case errors.Is(err, auth.ErrInvalidEmailFormat):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_input", Msg: "invalid email format"})
		case errors.Is(err, auth.ErrInvalidRole):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_input", Msg: "Invalid role specified. Must be 'farmer', 'vendor', or 'admin'."})
		case errors.Is(err, auth.ErrMissingRoleFields):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_input", Msg: "Required role specific fields are missing."})
		case errors.Is(err, auth.ErrEmailAlreadyExists):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_input", Msg: "User with this email already exists"})
		default:
			return writeError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_input", Msg: "invalid body"})
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_input", Msg: "Invalid credentials"})
		case errors.Is(err, auth.ErrUserInactive):
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden", Msg: "User is deactivated"})
		default:
			return writeError(c, err)
		}
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) me(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Msg: "unauthorized"})
	}

	user, err := h.users.FindByID(c.Request().Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Msg: "Not authorized, user not found"})
	}
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}
