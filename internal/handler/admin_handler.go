package handler

import (
	"net/http"
	"strconv"

	"vendhub/internal/domain/model"
	"vendhub/internal/middleware"
	"vendhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	uc *usecase.AdminUsecase
}

func NewAdminHandler(uc *usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

type UserStatusRequest struct {
	Action string `json:"action"`
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	g := e.Group("/admin")
	g.Use(middleware.AuthJWT(jwtSecret))
	g.Use(middleware.RequireRoles(string(model.RoleAdmin)))

	g.GET("/dashboard-stats", h.dashboardStats)
	g.GET("/all-transactions", h.allTransactions)
	g.GET("/all-users", h.allUsers)
	g.PUT("/users/:id/status", h.updateUserStatus)
}

func (h *AdminHandler) dashboardStats(c echo.Context) error {
	stats, err := h.uc.GetDashboardStats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) allTransactions(c echo.Context) error {
	orders, err := h.uc.ListAllTransactions(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"transactions": orders})
}

func (h *AdminHandler) allUsers(c echo.Context) error {
	users, err := h.uc.ListAllUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

func (h *AdminHandler) updateUserStatus(c echo.Context) error {
	actorID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: usecase.CodeUnauthorized, Msg: "unauthorized"})
	}

	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: usecase.CodeInvalidInput, Msg: "invalid user id"})
	}

	var req UserStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: usecase.CodeInvalidInput, Msg: "invalid body"})
	}

	user, err := h.uc.UpdateUserStatus(c.Request().Context(), actorID, targetID, usecase.UpdateUserStatusInput{
		Action: req.Action,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"msg":  "User " + req.Action + "d successfully.",
		"user": user,
	})
}
