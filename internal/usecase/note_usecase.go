package usecase

import (
	"context"

	"chamabook/internal/domain/entity"
)

// CreateNoteInput carries the fields of a new note.
type CreateNoteInput struct {
	AdminID string
	Content string
}

// UpdateNoteInput enumerates the note fields a patch may change. UpdatedAt
// is refreshed by the service on every write.
type UpdateNoteInput struct {
	Content *string
}

// NoteUsecase defines the admin note use cases.
type NoteUsecase interface {
	// GetNoteByAdmin retrieves the note owned by the given admin, or nil
	// when the admin has none yet.
	GetNoteByAdmin(ctx context.Context, adminID string) (*entity.Note, error)

	// CreateNote stores a new note.
	CreateNote(ctx context.Context, input CreateNoteInput) (*entity.Note, error)

	// UpdateNote applies a partial update to a note.
	UpdateNote(ctx context.Context, id string, input UpdateNoteInput) (*entity.Note, error)
}
