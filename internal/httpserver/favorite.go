package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avoronin/ar_shop/internal/apperr"
	"github.com/avoronin/ar_shop/internal/logging"
	"github.com/avoronin/ar_shop/internal/service"
	"github.com/avoronin/ar_shop/internal/token"
	"github.com/avoronin/ar_shop/internal/util"
)

type FavoritesHTTP struct {
	Svc *service.FavoritesService
}

func (h *FavoritesHTTP) AddFavorite(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "favorites.add")

	userID, err := token.UserID(c)
	if err != nil {
		return err
	}
	id, err := productID(c)
	if err != nil {
		l.Warn("add_favorite_failed", "status", 400, "reason", "bad id", "error", err)
		return err
	}

	favorite, err := h.Svc.Add(ctx, userID, id)
	if err != nil {
		l.Warn("add_favorite_failed", "status", apperr.Status(err), "user_id", userID, "product_id", id)
		return err
	}

	l.Info("add_favorite_success", "user_id", userID, "product_id", id)
	return c.JSON(http.StatusCreated, echo.Map{
		"success":  true,
		"message":  "product added to favorites",
		"favorite": favorite,
	})
}

func (h *FavoritesHTTP) RemoveFavorite(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "favorites.remove")

	userID, err := token.UserID(c)
	if err != nil {
		return err
	}
	id, err := productID(c)
	if err != nil {
		l.Warn("remove_favorite_failed", "status", 400, "reason", "bad id", "error", err)
		return err
	}

	if err := h.Svc.Remove(ctx, userID, id); err != nil {
		l.Warn("remove_favorite_failed", "status", apperr.Status(err), "user_id", userID, "product_id", id)
		return err
	}

	l.Info("remove_favorite_success", "user_id", userID, "product_id", id)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "product removed from favorites",
	})
}

func (h *FavoritesHTTP) IsFavorite(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "favorites.is_favorite")

	userID, err := token.UserID(c)
	if err != nil {
		return err
	}
	id, err := productID(c)
	if err != nil {
		l.Warn("is_favorite_failed", "status", 400, "reason", "bad id", "error", err)
		return err
	}

	isFavorite, err := h.Svc.IsFavorite(ctx, userID, id)
	if err != nil {
		l.Error("is_favorite_failed", "status", 500, "error", err)
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"is_favorite": isFavorite,
	})
}

func (h *FavoritesHTTP) MyFavorites(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "favorites.list")

	userID, err := token.UserID(c)
	if err != nil {
		return err
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	perPage := util.ParseIntDefault(c.QueryParam("per_page"), util.DefaultPerPage)
	sortBy := c.QueryParam("sort_by")

	result, err := h.Svc.List(ctx, userID, page, perPage, sortBy)
	if err != nil {
		l.Error("list_favorites_failed", "status", 500, "user_id", userID, "error", err)
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"count":       result.Count,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
		"favorites":   result.Products,
	})
}

func (h *FavoritesHTTP) ClearFavorites(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "favorites.clear")

	userID, err := token.UserID(c)
	if err != nil {
		return err
	}

	deleted, err := h.Svc.ClearAll(ctx, userID)
	if err != nil {
		l.Error("clear_favorites_failed", "status", 500, "user_id", userID, "error", err)
		return err
	}

	l.Info("clear_favorites_success", "user_id", userID, "deleted", deleted)
	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"message":       "favorites cleared",
		"deleted_count": deleted,
	})
}
