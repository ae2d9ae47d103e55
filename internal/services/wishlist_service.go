package services

import (
	"time"

	"medwear/internal/models"
	"medwear/internal/repositories"
)

// WishlistService manages named wishlists and their items.
type WishlistService struct {
	repo repositories.WishlistRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(repo repositories.WishlistRepository) *WishlistService {
	return &WishlistService{repo: repo}
}

// ListForUser returns all of a user's wishlists.
func (s *WishlistService) ListForUser(userID string) ([]models.Wishlist, error) {
	return s.repo.ListByUser(userID)
}

// Get returns a wishlist if the caller owns it or the list is public.
func (s *WishlistService) Get(id, callerID string) (*models.Wishlist, error) {
	wishlist, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wishlist.UserID != callerID && !wishlist.IsPublic {
		return nil, ErrNotOwner
	}
	return wishlist, nil
}

// Create adds a named wishlist for the user.
func (s *WishlistService) Create(userID, name string, isPublic bool) (*models.Wishlist, error) {
	if name == "" {
		name = "My Wishlist"
	}
	wishlist := &models.Wishlist{UserID: userID, Name: name, IsPublic: isPublic}
	if err := s.repo.Create(wishlist); err != nil {
		return nil, err
	}
	return wishlist, nil
}

// Rename changes the list's name and visibility.
func (s *WishlistService) Rename(id, userID, name string, isPublic bool) (*models.Wishlist, error) {
	wishlist, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wishlist.UserID != userID {
		return nil, ErrNotOwner
	}
	wishlist.Name = name
	wishlist.IsPublic = isPublic
	wishlist.UpdatedAt = time.Now()
	if err := s.repo.Update(wishlist); err != nil {
		return nil, err
	}
	return wishlist, nil
}

// Delete removes a wishlist the user owns.
func (s *WishlistService) Delete(id, userID string) error {
	wishlist, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if wishlist.UserID != userID {
		return ErrNotOwner
	}
	return s.repo.Delete(id)
}

// AddItem saves a product (optionally a variant) into a wishlist the user
// owns. Adding a product already on the list is a no-op.
func (s *WishlistService) AddItem(wishlistID, userID, productID string, variantID *string) (*models.WishlistItem, error) {
	wishlist, err := s.repo.GetByID(wishlistID)
	if err != nil {
		return nil, err
	}
	if wishlist.UserID != userID {
		return nil, ErrNotOwner
	}
	for i := range wishlist.Items {
		if wishlist.Items[i].ProductID == productID && equalVariant(wishlist.Items[i].VariantID, variantID) {
			return &wishlist.Items[i], nil
		}
	}
	item := &models.WishlistItem{
		WishlistID: wishlistID,
		ProductID:  productID,
		VariantID:  variantID,
	}
	if err := s.repo.AddItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem drops one saved product from a wishlist the user owns.
func (s *WishlistService) RemoveItem(wishlistID, itemID, userID string) error {
	wishlist, err := s.repo.GetByID(wishlistID)
	if err != nil {
		return err
	}
	if wishlist.UserID != userID {
		return ErrNotOwner
	}
	return s.repo.RemoveItem(itemID)
}
