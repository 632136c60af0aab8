package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/avoronin/ar_shop/internal/models"
	"github.com/avoronin/ar_shop/internal/mykafka"
	"github.com/avoronin/ar_shop/internal/repo"
	"github.com/avoronin/ar_shop/internal/token"
)

type testEnv struct {
	DB        *gorm.DB
	Repo      *repo.GormRepo
	Auth      *AuthService
	Catalog   *CatalogService
	Favorites *FavoritesService
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

	return &testEnv{
		DB:        db,
		Repo:      store,
		Auth:      &AuthService{Repo: store, Tokens: tokens, Producer: producer},
		Catalog:   &CatalogService{Repo: store},
		Favorites: &FavoritesService{Repo: store, Producer: producer},
	}
}

func (env *testEnv) createUser(t *testing.T, email, username string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: "x",
	}
	require.NoError(t, env.DB.Create(user).Error)
	return user
}

func (env *testEnv) createProduct(t *testing.T, name string, price float64, category string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:       name,
		Price:      price,
		InStock:    true,
		Dimensions: models.Dimensions{},
	}
	if category != "" {
		product.Category = &category
	}
	require.NoError(t, env.DB.Create(product).Error)
	return product
}
