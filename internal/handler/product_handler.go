package handler

import (
	"net/http"

	"vendhub/internal/domain/model"
	"vendhub/internal/middleware"
	"vendhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Msg   string `json:"msg"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		if he.Status >= http.StatusInternalServerError {
			//詳細はログだけに残して、外には出さない
			c.Logger().Errorf("request_id=%v path=%s err=%v", c.Get(middleware.CtxRequestIDKey), c.Path(), err)
			return c.JSON(he.Status, ErrorResponse{Error: usecase.CodeInternal, Msg: "internal error"})
		}
		return c.JSON(he.Status, ErrorResponse{Error: he.Code, Msg: he.Message})
	}

	//500
	c.Logger().Errorf("request_id=%v path=%s err=%v", c.Get(middleware.CtxRequestIDKey), c.Path(), err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: usecase.CodeInternal, Msg: "internal error"})
}

// /products のAPI
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type ProductCreateRequest struct {
	Name        string `json:"name"`
	Stock       int64  `json:"stock"`
	Unit        string `json:"unit"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	g := e.Group("/products")
	g.Use(middleware.AuthJWT(jwtSecret))

	//farmer専用
	g.POST("/add", h.add, middleware.RequireRoles(string(model.RoleFarmer)))
	g.GET("/my-products", h.myProducts, middleware.RequireRoles(string(model.RoleFarmer)))
	g.GET("/search-my-products", h.searchMyProducts, middleware.RequireRoles(string(model.RoleFarmer)))

	//ログイン済みなら誰でも（vendorのカタログ閲覧）
	g.GET("/all", h.all)
}

func (h *ProductHandler) add(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: usecase.CodeUnauthorized, Msg: "unauthorized"})
	}

	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: usecase.CodeInvalidInput, Msg: "invalid body"})
	}

	p, err := h.uc.AddProduct(c.Request().Context(), userID, usecase.AddProductInput{
		Name:        req.Name,
		Stock:       req.Stock,
		Unit:        req.Unit,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"msg":     "Product added successfully!",
		"product": p,
	})
}

func (h *ProductHandler) myProducts(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: usecase.CodeUnauthorized, Msg: "unauthorized"})
	}

	items, err := h.uc.ListMyProducts(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"msg":      "Farmer products fetched successfully",
		"products": items,
	})
}

func (h *ProductHandler) searchMyProducts(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: usecase.CodeUnauthorized, Msg: "unauthorized"})
	}

	items, err := h.uc.SearchMyProducts(c.Request().Context(), userID, searchInputFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"msg":     "Search results fetched successfully",
		"results": items,
	})
}

func (h *ProductHandler) all(c echo.Context) error {
	items, err := h.uc.ListAllProducts(c.Request().Context(), searchInputFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"msg":      "All products fetched successfully",
		"products": items,
	})
}

// keyword/category/isActiveのクエリを読む
func searchInputFromQuery(c echo.Context) usecase.SearchProductsInput {
	in := usecase.SearchProductsInput{
		Keyword:  c.QueryParam("keyword"),
		Category: c.QueryParam("category"),
	}

	if v := c.QueryParam("isActive"); v != "" {
		active := v == "true"
		in.IsActive = &active
	}

	return in
}
