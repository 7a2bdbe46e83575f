package service

import (
	"context"
	"testing"
	"time"

	"github.com/Ram45016/water-purifier-api/internal/domain"
	"github.com/Ram45016/water-purifier-api/internal/dto"
)

// mockProductRepository is a mock implementation of ProductRepository
type mockProductRepository struct {
	products map[string]*domain.Product
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[string]*domain.Product)}
}

func (r *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *mockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return r.products[id], nil
}

func (r *mockProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	products := []*domain.Product{}
	for _, p := range r.products {
		products = append(products, p)
	}
	return products, nil
}

func (r *mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *mockProductRepository) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func TestProductService_Create(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewProductService(repo)

	resp, err := svc.Create(context.Background(), &dto.CreateProductRequest{
		Name:         "RO Classic 7L",
		BrandName:    "AquaPure",
		BuyingPrice:  4500,
		SellingPrice: 6999,
		Quantity:     12,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if resp.ID == "" {
		t.Error("Create() ID is empty")
	}
	if resp.Images == nil {
		t.Error("Create() Images should default to empty slice, not nil")
	}
	if resp.Date.IsZero() {
		t.Error("Create() Date should default to now")
	}
	if repo.products[resp.ID] == nil {
		t.Error("Create() product not persisted")
	}
}

func TestProductService_GetByID(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewProductService(repo)

	now := time.Now()
	repo.products["p-1"] = &domain.Product{
		ID: "p-1", Name: "UV Guard 10L", BrandName: "HydroMax",
		CreatedAt: now, UpdatedAt: now,
	}

	t.Run("found", func(t *testing.T) {
		product, err := svc.GetByID(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if product.Name != "UV Guard 10L" {
			t.Errorf("GetByID() Name = %v", product.Name)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "missing")
		if err != ErrProductNotFound {
			t.Errorf("GetByID() error = %v, want ErrProductNotFound", err)
		}
	})
}

func TestProductService_Update(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewProductService(repo)

	created := time.Now().Add(-time.Hour)
	repo.products["p-1"] = &domain.Product{
		ID: "p-1", Name: "UV Guard 10L", BrandName: "HydroMax",
		SellingPrice: 8999, CreatedAt: created, UpdatedAt: created,
	}

	t.Run("replaces fields and bumps UpdatedAt", func(t *testing.T) {
		product, err := svc.Update(context.Background(), "p-1", &dto.UpdateProductRequest{
			Name:         "UV Guard 12L",
			BrandName:    "HydroMax",
			SellingPrice: 9499,
			Quantity:     3,
		})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if product.Name != "UV Guard 12L" || product.SellingPrice != 9499 {
			t.Errorf("Update() product = %+v", product)
		}
		if !product.CreatedAt.Equal(created) {
			t.Error("Update() must preserve CreatedAt")
		}
		if !product.UpdatedAt.After(created) {
			t.Error("Update() must bump UpdatedAt")
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "missing", &dto.UpdateProductRequest{
			Name: "X", BrandName: "Y",
		})
		if err != ErrProductNotFound {
			t.Errorf("Update() error = %v, want ErrProductNotFound", err)
		}
	})
}

func TestProductService_Delete(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewProductService(repo)

	now := time.Now()
	repo.products["p-1"] = &domain.Product{
		ID: "p-1", Name: "Carbon Filter Set", BrandName: "AquaPure",
		CreatedAt: now, UpdatedAt: now,
	}

	t.Run("returns the removed record", func(t *testing.T) {
		product, err := svc.Delete(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if product.Name != "Carbon Filter Set" {
			t.Errorf("Delete() Name = %v", product.Name)
		}
		if repo.products["p-1"] != nil {
			t.Error("Delete() product still present")
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Delete(context.Background(), "p-1")
		if err != ErrProductNotFound {
			t.Errorf("Delete() error = %v, want ErrProductNotFound", err)
		}
	})
}
