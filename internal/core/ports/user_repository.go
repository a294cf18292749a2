package ports

import (
	"context"

	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/core/domain"
)

// UserRepository defines the interface for credential persistence.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create inserts a new user. Uniqueness of the username must be backed
	// by a storage-level constraint; a duplicate insert returns
	// domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
