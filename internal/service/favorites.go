package service

import (
	"context"
	"time"

	"github.com/avoronin/ar_shop/internal/models"
	"github.com/avoronin/ar_shop/internal/mykafka"
	"github.com/avoronin/ar_shop/internal/repo"
	"github.com/avoronin/ar_shop/internal/util"
)

// FavoritesService owns the user-product relation: one favorite per pair,
// sorted and paginated listing joined against the catalog.
type FavoritesService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

// FavoritesPage is one page of a user's favorited products. Count is the
// full relation size, independent of the requested page.
type FavoritesPage struct {
	Count      int64
	Page       int
	PerPage    int
	TotalPages int64
	Products   []models.Product
}

var sortOrders = map[string]bool{
	"name":       true,
	"price_asc":  true,
	"price_desc": true,
	"newest":     true,
}

// Add creates the favorite for an existing user and product. A duplicate
// pair surfaces as a conflict from the storage constraint, so two
// concurrent adds cannot both succeed.
func (s *FavoritesService) Add(ctx context.Context, userID, productID uint) (*models.Favorite, error) {
	user, err := s.Repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	product, err := s.Repo.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	favorite := &models.Favorite{
		UserID:    user.ID,
		ProductID: product.ID,
		AddedAt:   time.Now(),
	}
	if err := s.Repo.CreateFavorite(ctx, favorite); err != nil {
		return nil, err
	}
	favorite.Product = product

	s.publish(ctx, userID, map[string]interface{}{
		"type":       "favorite_added",
		"user_id":    userID,
		"product_id": productID,
	})

	return favorite, nil
}

func (s *FavoritesService) Remove(ctx context.Context, userID, productID uint) error {
	if err := s.Repo.DeleteFavorite(ctx, userID, productID); err != nil {
		return err
	}

	s.publish(ctx, userID, map[string]interface{}{
		"type":       "favorite_removed",
		"user_id":    userID,
		"product_id": productID,
	})

	return nil
}

// IsFavorite never errors on absence, a missing pair is a valid false.
func (s *FavoritesService) IsFavorite(ctx context.Context, userID, productID uint) (bool, error) {
	return s.Repo.FavoriteExists(ctx, userID, productID)
}

// List clamps the paging parameters silently and falls back to the name
// order for unrecognized sort keys.
func (s *FavoritesService) List(ctx context.Context, userID uint, page, perPage int, sortBy string) (*FavoritesPage, error) {
	page, perPage = util.Clamp(page, perPage)
	if !sortOrders[sortBy] {
		sortBy = "name"
	}

	total, favorites, err := s.Repo.ListFavorites(ctx, userID, util.Offset(page, perPage), perPage, sortBy)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(favorites))
	for _, favorite := range favorites {
		if favorite.Product != nil {
			products = append(products, *favorite.Product)
		}
	}

	return &FavoritesPage{
		Count:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: util.TotalPages(total, perPage),
		Products:   products,
	}, nil
}

// ClearAll removes every favorite the user owns; zero deletions is a valid
// result, not an error.
func (s *FavoritesService) ClearAll(ctx context.Context, userID uint) (int64, error) {
	deleted, err := s.Repo.ClearFavorites(ctx, userID)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		s.publish(ctx, userID, map[string]interface{}{
			"type":    "favorites_cleared",
			"user_id": userID,
			"deleted": deleted,
		})
	}

	return deleted, nil
}

func (s *FavoritesService) publish(ctx context.Context, userID uint, event map[string]interface{}) {
	publishEvent(ctx, s.Producer, mykafka.TopicFavoriteEvents, userID, event)
}
