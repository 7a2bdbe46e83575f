package repository

import (
	"context"

	"github.com/Ram45016/water-purifier-api/internal/domain"
)

// UserRepository defines persistence operations for users.
// Implementations return (nil, nil) when a lookup finds no row.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// UpdateRefreshToken replaces the user's refresh-token slot wholesale.
	// Last-writer-wins is acceptable: writers never read-modify-write.
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string) error
}

// ProductRepository defines persistence operations for catalog items.
// Implementations return (nil, nil) when a lookup finds no row.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}
