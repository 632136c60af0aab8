package repo

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/avoronin/ar_shop/internal/apperr"
	"github.com/avoronin/ar_shop/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Favorite{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return New(db)
}

// The unique pair constraint lives in the schema, so even a direct second
// insert (the losing side of a concurrent add) comes back as a conflict.
func TestCreateFavorite_DuplicateKeyTranslation(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	user := &models.User{Email: "a@x.com", Username: "user_a", PasswordHash: "x"}
	require.NoError(t, r.DB.Create(user).Error)
	product := &models.Product{Name: "chair", Price: 100, Dimensions: models.Dimensions{}}
	require.NoError(t, r.DB.Create(product).Error)

	first := &models.Favorite{UserID: user.ID, ProductID: product.ID, AddedAt: time.Now()}
	require.NoError(t, r.CreateFavorite(ctx, first))

	second := &models.Favorite{UserID: user.ID, ProductID: product.ID, AddedAt: time.Now()}
	err := r.CreateFavorite(ctx, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	count, err := r.CountFavorites(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCreateUser_DuplicateKeyTranslation(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateUser(ctx, &models.User{Email: "a@x.com", Username: "user_a", PasswordHash: "x"}))

	err := r.CreateUser(ctx, &models.User{Email: "a@x.com", Username: "user_b", PasswordHash: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}
