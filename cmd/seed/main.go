// Command seed creates the database schema and loads the starter
// catalog from data/products.json. Existing rows are left untouched.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Ram45016/water-purifier-api/internal/domain"
	"github.com/Ram45016/water-purifier-api/pkg/config"
	"github.com/Ram45016/water-purifier-api/pkg/database"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'vendor',
	refresh_token TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	brand_name TEXT NOT NULL,
	buying_price BIGINT NOT NULL DEFAULT 0,
	selling_price BIGINT NOT NULL DEFAULT 0,
	vendor_price BIGINT NOT NULL DEFAULT 0,
	quantity INTEGER NOT NULL DEFAULT 0,
	date TIMESTAMPTZ NOT NULL DEFAULT now(),
	images JSONB,
	is_top_selling BOOLEAN NOT NULL DEFAULT false,
	is_featured BOOLEAN NOT NULL DEFAULT false,
	is_budget_friendly BOOLEAN NOT NULL DEFAULT false,
	custom_fields JSONB,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func main() {
	dataPath := "data/products.json"
	if len(os.Args) > 1 {
		dataPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := database.NewPostgres(ctx, &database.PostgresConfig{
		Host:           cfg.Database.Host,
		Port:           cfg.Database.Port,
		User:           cfg.Database.User,
		Password:       cfg.Database.Password,
		Database:       cfg.Database.DBName,
		SSLMode:        cfg.Database.SSLMode,
		MaxConns:       2,
		MinConns:       1,
		ConnectTimeout: 5 * time.Second,
		MaxRetries:     3,
		RetryInterval:  time.Second,
	})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	if err := db.Exec(ctx, schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	log.Println("Schema ensured")

	raw, err := os.ReadFile(dataPath)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", dataPath, err)
	}

	var products []*domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		log.Fatalf("Failed to parse %s: %v", dataPath, err)
	}

	inserted := 0
	for _, p := range products {
		if err := insertProduct(ctx, db, p); err != nil {
			log.Fatalf("Failed to insert product %s: %v", p.ID, err)
		}
		inserted++
		log.Printf("Inserted/skipped product %s - %s", p.ID, p.Name)
	}

	log.Printf("Seed complete (%d products processed)", inserted)
}

func insertProduct(ctx context.Context, db *database.PostgresDB, p *domain.Product) error {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return fmt.Errorf("marshal images: %w", err)
	}

	customFields := p.CustomFields
	if len(customFields) == 0 {
		customFields = json.RawMessage(`[]`)
	}

	date := p.Date
	if date.IsZero() {
		date = time.Now()
	}

	query := `
		INSERT INTO products
			(id, name, brand_name, buying_price, selling_price, vendor_price,
			 quantity, date, images, is_top_selling, is_featured, is_budget_friendly,
			 custom_fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now(), now())
		ON CONFLICT (id) DO NOTHING
	`
	err = db.Exec(ctx, query,
		p.ID, p.Name, p.BrandName,
		p.BuyingPrice, p.SellingPrice, p.VendorPrice,
		p.Quantity, date, imagesJSON,
		p.IsTopSelling, p.IsFeatured, p.IsBudgetFriendly,
		customFields,
	)
	return err
}
