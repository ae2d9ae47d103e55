package services_test

import (
	"testing"

	"medwear/internal/models"
	"medwear/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReviewRepository is a mock implementation of repositories.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(id string) (*models.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByProduct(productID string, approvedOnly bool) ([]models.Review, error) {
	args := m.Called(productID, approvedOnly)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListAll(offset, limit int) ([]models.Review, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) Update(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestReviewService_Submit(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockOrders := new(MockOrderRepository)
	service := services.NewReviewService(mockReviews, mockOrders)

	// Test a reviewer with a delivered order: the verified-purchase badge is
	// set automatically, and the review still starts unapproved.
	mockOrders.On("HasDeliveredProduct", "user-123", "prod-1").Return(true, nil).Once()
	mockReviews.On("Create", mock.AnythingOfType("*models.Review")).Return(nil).Once()

	review := &models.Review{
		UserID:    "user-123",
		ProductID: "prod-1",
		Rating:    5,
		Title:     "Holds up through every shift",
		// A client trying to self-approve is overridden.
		IsApproved: true,
	}
	err := service.Submit(review)
	assert.NoError(t, err)
	assert.False(t, review.IsApproved)
	assert.True(t, review.IsVerifiedPurchase)
	mockOrders.AssertExpectations(t)
	mockReviews.AssertExpectations(t)

	// Test a reviewer without a delivered order
	mockOrders.On("HasDeliveredProduct", "user-456", "prod-1").Return(false, nil).Once()
	mockReviews.On("Create", mock.AnythingOfType("*models.Review")).Return(nil).Once()

	unverified := &models.Review{UserID: "user-456", ProductID: "prod-1", Rating: 3}
	err = service.Submit(unverified)
	assert.NoError(t, err)
	assert.False(t, unverified.IsVerifiedPurchase)
	mockOrders.AssertExpectations(t)
}

func TestReviewService_Visibility(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockOrders := new(MockOrderRepository)
	service := services.NewReviewService(mockReviews, mockOrders)

	// Customer-facing listing asks for approved rows only; the moderation
	// listing sees everything.
	mockReviews.On("ListByProduct", "prod-1", true).Return([]models.Review{}, nil).Once()
	_, err := service.ListForProduct("prod-1")
	assert.NoError(t, err)

	mockReviews.On("ListByProduct", "prod-1", false).Return([]models.Review{}, nil).Once()
	_, err = service.ListForModeration("prod-1")
	assert.NoError(t, err)
	mockReviews.AssertExpectations(t)
}

func TestReviewService_SetApproval(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockOrders := new(MockOrderRepository)
	service := services.NewReviewService(mockReviews, mockOrders)

	review := &models.Review{ID: "review-1", IsApproved: false}
	mockReviews.On("GetByID", "review-1").Return(review, nil).Once()
	mockReviews.On("Update", mock.AnythingOfType("*models.Review")).Return(nil).Once()

	updated, err := service.SetApproval("review-1", true)
	assert.NoError(t, err)
	assert.True(t, updated.IsApproved)
	mockReviews.AssertExpectations(t)
}
