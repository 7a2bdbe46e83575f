package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Ram45016/water-purifier-api/internal/domain"
	"github.com/Ram45016/water-purifier-api/internal/dto"
	"github.com/Ram45016/water-purifier-api/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

// ProductService defines the interface for catalog operations
type ProductService interface {
	// Create adds a new product to the catalog
	Create(ctx context.Context, req *dto.CreateProductRequest) (*domain.Product, error)
	// GetByID retrieves a single product
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// List retrieves all products ordered by name
	List(ctx context.Context) ([]*domain.Product, error)
	// Update replaces a product's fields wholesale
	Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*domain.Product, error)
	// Delete removes a product and returns the removed record
	Delete(ctx context.Context, id string) (*domain.Product, error)
}

// productService implements ProductService
type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

// Create adds a new product to the catalog
func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*domain.Product, error) {
	now := time.Now()
	product := &domain.Product{
		ID:               uuid.New().String(),
		Name:             req.Name,
		BrandName:        req.BrandName,
		BuyingPrice:      req.BuyingPrice,
		SellingPrice:     req.SellingPrice,
		VendorPrice:      req.VendorPrice,
		Quantity:         req.Quantity,
		Date:             req.Date,
		Images:           req.Images,
		IsTopSelling:     req.IsTopSelling,
		IsFeatured:       req.IsFeatured,
		IsBudgetFriendly: req.IsBudgetFriendly,
		CustomFields:     req.CustomFields,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if product.Date.IsZero() {
		product.Date = now
	}
	if product.Images == nil {
		product.Images = []string{}
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID retrieves a single product
func (s *productService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// List retrieves all products ordered by name
func (s *productService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.List(ctx)
}

// Update replaces a product's fields wholesale
func (s *productService) Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	product.Name = req.Name
	product.BrandName = req.BrandName
	product.BuyingPrice = req.BuyingPrice
	product.SellingPrice = req.SellingPrice
	product.VendorPrice = req.VendorPrice
	product.Quantity = req.Quantity
	if !req.Date.IsZero() {
		product.Date = req.Date
	}
	product.Images = req.Images
	if product.Images == nil {
		product.Images = []string{}
	}
	product.IsTopSelling = req.IsTopSelling
	product.IsFeatured = req.IsFeatured
	product.IsBudgetFriendly = req.IsBudgetFriendly
	product.CustomFields = req.CustomFields
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product and returns the removed record
func (s *productService) Delete(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return product, nil
}
