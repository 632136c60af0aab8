package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/avoronin/ar_shop/internal/apperr"
	"github.com/avoronin/ar_shop/internal/logging"
	"github.com/avoronin/ar_shop/internal/repo"
	"github.com/avoronin/ar_shop/internal/service"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func productID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, apperr.Validation("product id must be a positive integer")
	}
	return uint(id), nil
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	var filter repo.ProductFilter
	if category := c.QueryParam("category"); category != "" {
		filter.Category = &category
	}
	if raw := c.QueryParam("in_stock"); raw != "" {
		inStock := strings.EqualFold(raw, "true")
		filter.InStock = &inStock
	}

	products, err := h.Svc.ListProducts(ctx, filter)
	if err != nil {
		l.Error("get_products_failed", "status", 500, "error", err)
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"count":    len(products),
		"products": products,
	})
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := productID(c)
	if err != nil {
		l.Warn("get_product_failed", "status", 400, "reason", "bad id", "error", err)
		return err
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		l.Warn("get_product_failed", "status", apperr.Status(err), "product_id", id)
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"product": product,
	})
}

func (h *CatalogHTTP) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_categories")

	categories, err := h.Svc.ListCategories(ctx)
	if err != nil {
		l.Error("get_categories_failed", "status", 500, "error", err)
		return err
	}
	if categories == nil {
		categories = []string{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"categories": categories,
	})
}
