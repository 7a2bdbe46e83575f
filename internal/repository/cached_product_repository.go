package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Ram45016/water-purifier-api/internal/domain"
	"github.com/Ram45016/water-purifier-api/pkg/redis"
)

const (
	productDetailKeyPrefix = "product:detail:"
	productListKey         = "product:list:all"

	productCacheTTL = 5 * time.Minute
)

// CachedProductRepository wraps ProductRepository with Redis caching
type CachedProductRepository struct {
	repo  ProductRepository
	cache *redis.Client
}

// NewCachedProductRepository creates a new CachedProductRepository
func NewCachedProductRepository(repo ProductRepository, cache *redis.Client) *CachedProductRepository {
	return &CachedProductRepository{
		repo:  repo,
		cache: cache,
	}
}

// Create creates a new product and invalidates the list cache
func (r *CachedProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := r.repo.Create(ctx, product); err != nil {
		return err
	}
	r.cache.Del(ctx, productListKey)
	return nil
}

// GetByID retrieves a product by ID with caching
func (r *CachedProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	cacheKey := productDetailKeyPrefix + id
	cached, err := r.cache.Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		var product domain.Product
		if err := json.Unmarshal([]byte(cached), &product); err == nil {
			return &product, nil
		}
	}

	product, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	r.cacheProduct(ctx, cacheKey, product)

	return product, nil
}

// List retrieves all products with caching
func (r *CachedProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	cached, err := r.cache.Get(ctx, productListKey).Result()
	if err == nil && cached != "" {
		var products []*domain.Product
		if err := json.Unmarshal([]byte(cached), &products); err == nil {
			return products, nil
		}
	}

	products, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(products); err == nil {
		r.cache.Set(ctx, productListKey, string(data), productCacheTTL)
	}

	return products, nil
}

// Update updates a product and invalidates its caches
func (r *CachedProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := r.repo.Update(ctx, product); err != nil {
		return err
	}
	r.cache.Del(ctx, productDetailKeyPrefix+product.ID, productListKey)
	return nil
}

// Delete removes a product and invalidates its caches
func (r *CachedProductRepository) Delete(ctx context.Context, id string) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.Del(ctx, productDetailKeyPrefix+id, productListKey)
	return nil
}

// InvalidateAll drops every product cache entry
func (r *CachedProductRepository) InvalidateAll(ctx context.Context) error {
	iter := r.cache.Client().Scan(ctx, 0, productDetailKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		r.cache.Del(ctx, iter.Val())
	}
	r.cache.Del(ctx, productListKey)
	return iter.Err()
}

func (r *CachedProductRepository) cacheProduct(ctx context.Context, key string, product *domain.Product) {
	data, err := json.Marshal(product)
	if err != nil {
		return
	}
	r.cache.Set(ctx, key, string(data), productCacheTTL)
}
