package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ram45016/water-purifier-api/internal/domain"
	"github.com/Ram45016/water-purifier-api/internal/dto"
	"github.com/Ram45016/water-purifier-api/internal/service"
	"github.com/Ram45016/water-purifier-api/pkg/logger"
)

// MockProductService is a mock implementation of ProductService
type MockProductService struct {
	products map[string]*domain.Product
}

func NewMockProductService() *MockProductService {
	return &MockProductService{products: make(map[string]*domain.Product)}
}

func (m *MockProductService) Create(ctx context.Context, req *dto.CreateProductRequest) (*domain.Product, error) {
	now := time.Now()
	product := &domain.Product{
		ID:           "product-123",
		Name:         req.Name,
		BrandName:    req.BrandName,
		BuyingPrice:  req.BuyingPrice,
		SellingPrice: req.SellingPrice,
		Quantity:     req.Quantity,
		Images:       []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.products[product.ID] = product
	return product, nil
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	product, ok := m.products[id]
	if !ok {
		return nil, service.ErrProductNotFound
	}
	return product, nil
}

func (m *MockProductService) List(ctx context.Context) ([]*domain.Product, error) {
	products := []*domain.Product{}
	for _, p := range m.products {
		products = append(products, p)
	}
	return products, nil
}

func (m *MockProductService) Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*domain.Product, error) {
	product, ok := m.products[id]
	if !ok {
		return nil, service.ErrProductNotFound
	}
	product.Name = req.Name
	product.BrandName = req.BrandName
	product.UpdatedAt = time.Now()
	return product, nil
}

func (m *MockProductService) Delete(ctx context.Context, id string) (*domain.Product, error) {
	product, ok := m.products[id]
	if !ok {
		return nil, service.ErrProductNotFound
	}
	delete(m.products, id)
	return product, nil
}

// AddProduct adds a product to the mock service
func (m *MockProductService) AddProduct(product *domain.Product) {
	m.products[product.ID] = product
}

func putJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func setupProductRouter(svc service.ProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewProductHandler(svc, logger.Get())
	products := router.Group("/api/products")
	{
		products.GET("", h.List)
		products.GET("/:id", h.GetByID)
		products.POST("", h.Create)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
	return router
}

func TestProductHandler_List(t *testing.T) {
	svc := NewMockProductService()
	now := time.Now()
	svc.AddProduct(&domain.Product{
		ID: "p-1", Name: "RO Classic 7L", BrandName: "AquaPure",
		Images: []string{}, CreatedAt: now, UpdatedAt: now,
	})
	router := setupProductRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var products []*domain.Product
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(products) != 1 {
		t.Errorf("len(products) = %d, want 1", len(products))
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	svc := NewMockProductService()
	now := time.Now()
	svc.AddProduct(&domain.Product{
		ID: "p-1", Name: "UV Guard 10L", BrandName: "HydroMax",
		Images: []string{}, CreatedAt: now, UpdatedAt: now,
	})
	router := setupProductRouter(svc)

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/products/p-1", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var product domain.Product
		if err := json.Unmarshal(w.Body.Bytes(), &product); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if product.Name != "UV Guard 10L" {
			t.Errorf("name = %s", product.Name)
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/products/missing", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router := setupProductRouter(NewMockProductService())
		w := postJSON(router, "/api/products", dto.CreateProductRequest{
			Name:         "RO Classic 7L",
			BrandName:    "AquaPure",
			SellingPrice: 6999,
			Quantity:     10,
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201, body: %s", w.Code, w.Body.String())
		}

		var product domain.Product
		if err := json.Unmarshal(w.Body.Bytes(), &product); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if product.ID == "" {
			t.Error("expected product ID in response")
		}
	})

	t.Run("missing name", func(t *testing.T) {
		router := setupProductRouter(NewMockProductService())
		w := postJSON(router, "/api/products", map[string]interface{}{
			"brandName": "AquaPure",
		})

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		router := setupProductRouter(NewMockProductService())
		w := postJSON(router, "/api/products", dto.CreateProductRequest{
			Name:         "RO Classic 7L",
			BrandName:    "AquaPure",
			SellingPrice: -5,
		})

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestProductHandler_Update(t *testing.T) {
	svc := NewMockProductService()
	now := time.Now()
	svc.AddProduct(&domain.Product{
		ID: "p-1", Name: "UV Guard 10L", BrandName: "HydroMax",
		Images: []string{}, CreatedAt: now, UpdatedAt: now,
	})
	router := setupProductRouter(svc)

	t.Run("success", func(t *testing.T) {
		w := putJSON(router, "/api/products/p-1", dto.UpdateProductRequest{
			Name:      "UV Guard 12L",
			BrandName: "HydroMax",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
		}

		var product domain.Product
		if err := json.Unmarshal(w.Body.Bytes(), &product); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if product.Name != "UV Guard 12L" {
			t.Errorf("name = %s", product.Name)
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := putJSON(router, "/api/products/missing", dto.UpdateProductRequest{
			Name:      "X",
			BrandName: "Y",
		})

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}

func TestProductHandler_Delete(t *testing.T) {
	svc := NewMockProductService()
	now := time.Now()
	svc.AddProduct(&domain.Product{
		ID: "p-1", Name: "Carbon Filter Set", BrandName: "AquaPure",
		Images: []string{}, CreatedAt: now, UpdatedAt: now,
	})
	router := setupProductRouter(svc)

	t.Run("success returns removed record", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/products/p-1", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var resp struct {
			Deleted bool           `json:"deleted"`
			Product domain.Product `json:"product"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !resp.Deleted {
			t.Error("expected deleted=true")
		}
		if resp.Product.Name != "Carbon Filter Set" {
			t.Errorf("product name = %s", resp.Product.Name)
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/products/p-1", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}
