package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /shop の公開API
type ShopHandler struct {
	uc *usecase.StorefrontUsecase
}

// DI
func NewShopHandler(uc *usecase.StorefrontUsecase) *ShopHandler {
	return &ShopHandler{uc: uc}
}

// 店舗情報と商品一覧のルートを登録
func (h *ShopHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/shop", h.info)
	e.GET("/shop/items", h.items)
}

func (h *ShopHandler) info(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.GetShopInfo())
}

func (h *ShopHandler) items(c echo.Context) error {
	out := h.uc.ListItems(usecase.ListItemsInput{
		Category: c.QueryParam("category"),
		Q:        c.QueryParam("q"),
	})
	return c.JSON(http.StatusOK, out)
}
