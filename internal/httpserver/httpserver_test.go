package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/avoronin/ar_shop/internal/apperr"
	"github.com/avoronin/ar_shop/internal/models"
	"github.com/avoronin/ar_shop/internal/mykafka"
	"github.com/avoronin/ar_shop/internal/repo"
	"github.com/avoronin/ar_shop/internal/service"
	"github.com/avoronin/ar_shop/internal/token"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Favorite{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	store := repo.New(db)
	tokens := token.New([]byte("test-jwt-secret"), 24*time.Hour)
	producer := &mykafka.Producer{}

	e := echo.New()
	e.HTTPErrorHandler = apperr.HTTPErrorHandler
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())

	Register(e, &Deps{
		AuthHandler:      &AuthHTTP{Svc: &service.AuthService{Repo: store, Tokens: tokens, Producer: producer}},
		CatalogHandler:   &CatalogHTTP{Svc: &service.CatalogService{Repo: store}},
		FavoritesHandler: &FavoritesHTTP{Svc: &service.FavoritesService{Repo: store, Producer: producer}},
		Tokens:           tokens,
	})

	return &testEnv{T: t, E: e, DB: db}
}

func (env *testEnv) do(method, path, bearer string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	env.T.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)

	var resp map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func (env *testEnv) registerAndLogin(email, username string) string {
	env.T.Helper()

	rec, _ := env.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"username": username,
		"password": "secret123",
	})
	require.Equal(env.T, http.StatusCreated, rec.Code)

	rec, resp := env.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(env.T, http.StatusOK, rec.Code)
	accessToken, _ := resp["access_token"].(string)
	require.NotEmpty(env.T, accessToken)
	return accessToken
}

func (env *testEnv) createProduct(name string, price float64, category string) *models.Product {
	env.T.Helper()
	product := &models.Product{
		Name:       name,
		Price:      price,
		InStock:    true,
		Dimensions: models.Dimensions{"width": 50, "height": 90},
	}
	if category != "" {
		product.Category = &category
	}
	require.NoError(env.T, env.DB.Create(product).Error)
	return product
}
