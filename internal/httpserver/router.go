package httpserver

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/avoronin/ar_shop/internal/token"
)

type Deps struct {
	AuthHandler      *AuthHTTP
	CatalogHandler   *CatalogHTTP
	FavoritesHandler *FavoritesHTTP
	Tokens           *token.Service
	StaticDir        string
}

func Register(e *echo.Echo, d *Deps) {
	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":  "OK",
			"message": "Backend is running!",
		})
	})

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.GET("/profile", d.AuthHandler.Profile, d.Tokens.RequireLogin)

	products := api.Group("/products")
	products.GET("", d.CatalogHandler.GetProducts)
	products.GET("/categories", d.CatalogHandler.GetCategories)
	products.GET("/:id", d.CatalogHandler.GetProduct)

	// top-level alias kept from the original client contract
	api.GET("/categories", d.CatalogHandler.GetCategories)

	favorites := products.Group("", d.Tokens.RequireLogin)
	favorites.POST("/:id/favorite", d.FavoritesHandler.AddFavorite)
	favorites.DELETE("/:id/favorite", d.FavoritesHandler.RemoveFavorite)
	favorites.GET("/:id/favorite", d.FavoritesHandler.IsFavorite)
	favorites.GET("/my/favorites", d.FavoritesHandler.MyFavorites)
	favorites.DELETE("/my/favorites/clear", d.FavoritesHandler.ClearFavorites)

	// the AR client loads 3D models and images cross-origin
	if d.StaticDir != "" {
		e.Static("/models", filepath.Join(d.StaticDir, "models"))
		e.Static("/images", filepath.Join(d.StaticDir, "images"))
	}
}
