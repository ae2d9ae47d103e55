package services

import (
	"errors"
	"time"

	"medwear/internal/models"
	"medwear/internal/repositories"
)

// ErrNotOwner is returned when a caller touches a record belonging to
// somebody else.
var ErrNotOwner = errors.New("record does not belong to this user")

// AddressService manages a user's address book.
type AddressService struct {
	userRepo repositories.UserRepository
}

// NewAddressService creates a new AddressService.
func NewAddressService(userRepo repositories.UserRepository) *AddressService {
	return &AddressService{userRepo: userRepo}
}

// List returns the user's addresses, default first.
func (s *AddressService) List(userID string) ([]models.Address, error) {
	return s.userRepo.ListAddresses(userID)
}

// Create adds an address. The first address a user saves becomes the default
// automatically.
func (s *AddressService) Create(address *models.Address) error {
	existing, err := s.userRepo.ListAddresses(address.UserID)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		address.IsDefault = true
	}
	if err := s.userRepo.CreateAddress(address); err != nil {
		return err
	}
	if address.IsDefault && len(existing) > 0 {
		return s.userRepo.SetDefaultAddress(address.UserID, address.ID)
	}
	return nil
}

// Update saves changes to an address owned by the user.
func (s *AddressService) Update(userID string, address *models.Address) error {
	current, err := s.userRepo.GetAddress(address.ID)
	if err != nil {
		return err
	}
	if current.UserID != userID {
		return ErrNotOwner
	}
	address.UserID = userID
	address.UpdatedAt = time.Now()
	return s.userRepo.UpdateAddress(address)
}

// Delete removes an address owned by the user.
func (s *AddressService) Delete(userID, addressID string) error {
	current, err := s.userRepo.GetAddress(addressID)
	if err != nil {
		return err
	}
	if current.UserID != userID {
		return ErrNotOwner
	}
	return s.userRepo.DeleteAddress(addressID)
}

// SetDefault marks one address as the user's default. The repository clears
// any prior default in the same transaction, so calling this repeatedly
// leaves exactly one default.
func (s *AddressService) SetDefault(userID, addressID string) error {
	return s.userRepo.SetDefaultAddress(userID, addressID)
}
