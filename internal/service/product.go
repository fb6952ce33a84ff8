package service

import (
	"context"
	"errors"
	"fmt"

	"greencart-api/internal/dto"
	"greencart-api/internal/model"
	"greencart-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductService interface {
	AddProduct(ctx context.Context, req *dto.AddProductRequest) (*model.Product, error)
	ListProducts(ctx context.Context) ([]*model.Product, error)
	GetProduct(ctx context.Context, productID string) (*model.Product, error)
	ChangeStock(ctx context.Context, productID string, stock int64) error
}

type productServiceImpl struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productServiceImpl{
		productRepo: productRepo,
	}
}

func (s *productServiceImpl) AddProduct(ctx context.Context, req *dto.AddProductRequest) (*model.Product, error) {
	if req.Name == "" {
		return nil, newValidationError("Invalid data")
	}
	if req.OfferPrice < 0 {
		return nil, newValidationError("Offer price must not be negative")
	}

	product := &model.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		OfferPrice:  req.OfferPrice,
		Stock:       req.Stock,
		Images:      req.Images,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("store product in db: %w", err)
	}

	return product, nil
}

func (s *productServiceImpl) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *productServiceImpl) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ProductNotFoundError{ProductID: productID}
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	return product, nil
}

func (s *productServiceImpl) ChangeStock(ctx context.Context, productID string, stock int64) error {
	err := s.productRepo.UpdateStock(ctx, productID, stock)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ProductNotFoundError{ProductID: productID}
		}
		return fmt.Errorf("update stock: %w", err)
	}

	return nil
}
