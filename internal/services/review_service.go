package services

import (
	"time"

	"medwear/internal/models"
	"medwear/internal/repositories"
)

// ReviewService handles review submission, moderation and visibility.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	orderRepo  repositories.OrderRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, orderRepo repositories.OrderRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, orderRepo: orderRepo}
}

// Submit stores a new review. It always starts unapproved; moderation makes
// it customer-visible. IsVerifiedPurchase is set automatically when the
// reviewer has a delivered order containing the product, never by the caller.
func (s *ReviewService) Submit(review *models.Review) error {
	review.IsApproved = false
	verified, err := s.orderRepo.HasDeliveredProduct(review.UserID, review.ProductID)
	if err != nil {
		return err
	}
	review.IsVerifiedPurchase = verified
	return s.reviewRepo.Create(review)
}

// ListForProduct returns the customer-facing review list: approved rows only.
func (s *ReviewService) ListForProduct(productID string) ([]models.Review, error) {
	return s.reviewRepo.ListByProduct(productID, true)
}

// ListForModeration returns every review for a product, approved or not.
func (s *ReviewService) ListForModeration(productID string) ([]models.Review, error) {
	return s.reviewRepo.ListByProduct(productID, false)
}

// ListAll returns a page of all reviews for the admin console.
func (s *ReviewService) ListAll(offset, limit int) ([]models.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.reviewRepo.ListAll(offset, limit)
}

// SetApproval moderates a review.
func (s *ReviewService) SetApproval(id string, approved bool) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	review.IsApproved = approved
	review.UpdatedAt = time.Now()
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes a review.
func (s *ReviewService) Delete(id string) error {
	return s.reviewRepo.Delete(id)
}
