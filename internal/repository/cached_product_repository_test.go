package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Ram45016/water-purifier-api/internal/domain"
)

// MockProductRepository is a mock implementation of ProductRepository for testing
type MockProductRepository struct {
	products     map[string]*domain.Product
	listCount    int // Track how many times List is called
	getByIDCount int // Track how many times GetByID is called
}

func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]*domain.Product),
	}
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	m.products[product.ID] = product
	return nil
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	m.getByIDCount++
	product, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	return product, nil
}

func (m *MockProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	m.listCount++
	products := []*domain.Product{}
	for _, p := range m.products {
		products = append(products, p)
	}
	return products, nil
}

func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if _, ok := m.products[product.ID]; !ok {
		return nil
	}
	m.products[product.ID] = product
	return nil
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	delete(m.products, id)
	return nil
}

func (m *MockProductRepository) AddProduct(product *domain.Product) {
	m.products[product.ID] = product
}

func (m *MockProductRepository) ResetCounts() {
	m.listCount = 0
	m.getByIDCount = 0
}

func TestMockProductRepository_CRUD(t *testing.T) {
	mockRepo := NewMockProductRepository()
	ctx := context.Background()

	now := time.Now()
	product := &domain.Product{
		ID:           "product-1",
		Name:         "RO Classic 7L",
		BrandName:    "AquaPure",
		BuyingPrice:  4500,
		SellingPrice: 6999,
		Quantity:     12,
		Images:       []string{"ro-classic.jpg"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := mockRepo.Create(ctx, product); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := mockRepo.GetByID(ctx, "product-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected product, got nil")
	}
	if result.Name != "RO Classic 7L" {
		t.Errorf("expected name 'RO Classic 7L', got '%s'", result.Name)
	}

	missing, err := mockRepo.GetByID(ctx, "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing product")
	}

	if err := mockRepo.Delete(ctx, "product-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, _ = mockRepo.GetByID(ctx, "product-1")
	if result != nil {
		t.Error("expected product gone after delete")
	}
}
