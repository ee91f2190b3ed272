package handler

import (
	"net/http"

	"vendhub/internal/middleware"
	"vendhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

type RequirementHandler struct {
	uc *usecase.RequirementUsecase
}

func NewRequirementHandler(uc *usecase.RequirementUsecase) *RequirementHandler {
	return &RequirementHandler{uc: uc}
}

type RequirementPostRequest struct {
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
}

func (h *RequirementHandler) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	g := e.Group("/requirements")
	g.Use(middleware.AuthJWT(jwtSecret))

	g.POST("/post", h.post)
	g.GET("", h.list)
}

func (h *RequirementHandler) post(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: usecase.CodeUnauthorized, Msg: "unauthorized"})
	}

	var req RequirementPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: usecase.CodeInvalidInput, Msg: "invalid body"})
	}

	saved, err := h.uc.Post(c.Request().Context(), userID, usecase.PostRequirementInput{
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, saved)
}

func (h *RequirementHandler) list(c echo.Context) error {
	items, err := h.uc.ListRecent(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"msg":          "Requirements fetched",
		"requirements": items,
	})
}
