package service

import (
	"context"
	"fmt"

	"greencart-api/internal/dto"
	"greencart-api/internal/model"
	"greencart-api/internal/repository"

	"github.com/google/uuid"
)

type AddressService interface {
	AddAddress(ctx context.Context, userID string, req *dto.AddAddressRequest) (*model.Address, error)
	GetUserAddresses(ctx context.Context, userID string) ([]*model.Address, error)
}

type addressServiceImpl struct {
	addressRepo repository.AddressRepository
}

func NewAddressService(addressRepo repository.AddressRepository) AddressService {
	return &addressServiceImpl{
		addressRepo: addressRepo,
	}
}

func (s *addressServiceImpl) AddAddress(ctx context.Context, userID string, req *dto.AddAddressRequest) (*model.Address, error) {
	if req.Street == "" || req.City == "" {
		return nil, newValidationError("Invalid data")
	}

	address := &model.Address{
		ID:        uuid.NewString(),
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Zipcode:   req.Zipcode,
		Country:   req.Country,
		Phone:     req.Phone,
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, fmt.Errorf("store address in db: %w", err)
	}

	return address, nil
}

func (s *addressServiceImpl) GetUserAddresses(ctx context.Context, userID string) ([]*model.Address, error) {
	return s.addressRepo.ListByUser(ctx, userID)
}
