package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/avoronin/ar_shop/internal/apperr"
	"github.com/avoronin/ar_shop/internal/models"
)

func (r *GormRepo) CreateFavorite(ctx context.Context, favorite *models.Favorite) error {
	if err := r.DB.WithContext(ctx).Create(favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("product already in favorites")
		}
		return err
	}
	return nil
}

func (r *GormRepo) DeleteFavorite(ctx context.Context, userID, productID uint) error {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("product is not in favorites")
	}
	return nil
}

func (r *GormRepo) FavoriteExists(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) CountFavorites(ctx context.Context, userID uint) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// ListFavorites returns one page of a user's favorites with the joined
// product loaded, plus the pagination-independent total. Every sort order
// carries favorites.id as a secondary key so a fixed dataset always pages
// the same way.
func (r *GormRepo) ListFavorites(ctx context.Context, userID uint, offset, limit int, sortBy string) (int64, []models.Favorite, error) {
	total, err := r.CountFavorites(ctx, userID)
	if err != nil {
		return 0, nil, err
	}

	q := r.DB.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("favorites.user_id = ?", userID).
		Preload("Product")

	switch sortBy {
	case "price_asc":
		q = q.Joins("JOIN products ON products.id = favorites.product_id").
			Order("products.price ASC, favorites.id ASC")
	case "price_desc":
		q = q.Joins("JOIN products ON products.id = favorites.product_id").
			Order("products.price DESC, favorites.id ASC")
	case "newest":
		q = q.Order("favorites.added_at DESC, favorites.id ASC")
	default:
		q = q.Joins("JOIN products ON products.id = favorites.product_id").
			Order("products.name ASC, favorites.id ASC")
	}

	var favorites []models.Favorite
	if err := q.Offset(offset).Limit(limit).Find(&favorites).Error; err != nil {
		return 0, nil, err
	}

	return total, favorites, nil
}

func (r *GormRepo) ClearFavorites(ctx context.Context, userID uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
