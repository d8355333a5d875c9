// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"vouch/internal/domain/entity"
	"vouch/internal/errors"

	"github.com/google/uuid"
)

// ErrCompanyNotFound is a domain-specific error returned when a company is not found.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository defines the standard operations for company persistence.
// The application layer will depend on this interface, not the concrete implementation.
type CompanyRepository interface {
	// Create persists a new company entity to the storage.
	Create(ctx context.Context, company *entity.Company) error

	// FindByID retrieves a single company by its unique ID. The id may come
	// from a public URL, so callers must treat the result as public data.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// Update modifies an existing company entity in the storage.
	Update(ctx context.Context, company *entity.Company) error

	// Note: companies are never deleted in-app, so no Delete method exists.
}
