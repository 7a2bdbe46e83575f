package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ram45016/water-purifier-api/internal/domain"
)

// PostgresProductRepository implements ProductRepository using PostgreSQL
type PostgresProductRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProductRepository creates a new PostgresProductRepository
func NewPostgresProductRepository(pool *pgxpool.Pool) *PostgresProductRepository {
	return &PostgresProductRepository{pool: pool}
}

// productColumns uses COALESCE for the nullable JSONB columns to avoid
// scan errors on rows seeded without them.
const productColumns = `id, name, brand_name, buying_price, selling_price, vendor_price,
	quantity, date,
	COALESCE(images, '[]'::jsonb) as images,
	is_top_selling, is_featured, is_budget_friendly,
	COALESCE(custom_fields, '[]'::jsonb) as custom_fields,
	created_at, updated_at`

// Create inserts a new product
func (r *PostgresProductRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products
			(id, name, brand_name, buying_price, selling_price, vendor_price,
			 quantity, date, images, is_top_selling, is_featured, is_budget_friendly,
			 custom_fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	imagesJSON, err := marshalImages(product.Images)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.BrandName,
		product.BuyingPrice,
		product.SellingPrice,
		product.VendorPrice,
		product.Quantity,
		product.Date,
		imagesJSON,
		product.IsTopSelling,
		product.IsFeatured,
		product.IsBudgetFriendly,
		customFieldsOrDefault(product.CustomFields),
		product.CreatedAt,
		product.UpdatedAt,
	)
	return err
}

// GetByID retrieves a product by ID
func (r *PostgresProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	product, err := r.scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return product, nil
}

// List retrieves all products ordered by name
func (r *PostgresProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := r.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// Update replaces all mutable columns of a product
func (r *PostgresProductRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products SET
			name = $2, brand_name = $3, buying_price = $4, selling_price = $5,
			vendor_price = $6, quantity = $7, date = $8, images = $9,
			is_top_selling = $10, is_featured = $11, is_budget_friendly = $12,
			custom_fields = $13, updated_at = $14
		WHERE id = $1
	`
	imagesJSON, err := marshalImages(product.Images)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.BrandName,
		product.BuyingPrice,
		product.SellingPrice,
		product.VendorPrice,
		product.Quantity,
		product.Date,
		imagesJSON,
		product.IsTopSelling,
		product.IsFeatured,
		product.IsBudgetFriendly,
		customFieldsOrDefault(product.CustomFields),
		product.UpdatedAt,
	)
	return err
}

// Delete removes a product
func (r *PostgresProductRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *PostgresProductRepository) scanProduct(row pgx.Row) (*domain.Product, error) {
	product := &domain.Product{}
	var imagesJSON []byte
	var customFieldsJSON []byte

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.BrandName,
		&product.BuyingPrice,
		&product.SellingPrice,
		&product.VendorPrice,
		&product.Quantity,
		&product.Date,
		&imagesJSON,
		&product.IsTopSelling,
		&product.IsFeatured,
		&product.IsBudgetFriendly,
		&customFieldsJSON,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if imagesJSON != nil {
		json.Unmarshal(imagesJSON, &product.Images)
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	product.CustomFields = customFieldsOrDefault(customFieldsJSON)

	return product, nil
}

func marshalImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}
	return json.Marshal(images)
}

func customFieldsOrDefault(fields json.RawMessage) json.RawMessage {
	if len(fields) == 0 {
		return json.RawMessage(`[]`)
	}
	return fields
}
