// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"chamabook/internal/domain/entity"
)

// ErrMemberNotFound is a domain-specific error returned when a member is not found.
var ErrMemberNotFound = errors.New("member not found")

// MemberRepository defines the standard operations for member persistence.
// The application layer depends on this interface, not the concrete implementation.
type MemberRepository interface {
	// List retrieves all members in insertion order.
	List(ctx context.Context) ([]entity.Member, error)

	// FindByID retrieves a single member by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.Member, error)

	// FindByEmail retrieves a single member by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Member, error)

	// Create persists a new member record.
	Create(ctx context.Context, member *entity.Member) error

	// Update replaces an existing member record.
	Update(ctx context.Context, member *entity.Member) error

	// Delete removes a member record.
	Delete(ctx context.Context, id string) error
}
