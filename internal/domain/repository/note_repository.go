package repository

import (
	"context"
	"errors"

	"chamabook/internal/domain/entity"
)

// ErrNoteNotFound is returned when a note is not found.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository defines the operations for note persistence.
type NoteRepository interface {
	// FindByAdmin retrieves the note owned by the given admin.
	FindByAdmin(ctx context.Context, adminID string) (*entity.Note, error)

	// FindByID retrieves a single note by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Note, error)

	// Create persists a new note record.
	Create(ctx context.Context, note *entity.Note) error

	// Update replaces an existing note record.
	Update(ctx context.Context, note *entity.Note) error
}
