package impl

import (
	"context"
	"time"

	"chamabook/internal/domain/entity"
	domainerrors "chamabook/internal/domain/errors"
	"chamabook/internal/domain/repository"
	"chamabook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type noteService struct {
	noteRepo repository.NoteRepository
}

// NoteServiceParams holds dependencies for NoteService, injected by Fx.
type NoteServiceParams struct {
	fx.In

	NoteRepo repository.NoteRepository
}

// NewNoteService creates the admin note service.
func NewNoteService(params NoteServiceParams) usecase.NoteUsecase {
	return &noteService{noteRepo: params.NoteRepo}
}

// GetNoteByAdmin retrieves the admin's note, or nil when none exists yet.
func (s *noteService) GetNoteByAdmin(ctx context.Context, adminID string) (*entity.Note, error) {
	note, err := s.noteRepo.FindByAdmin(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find note by admin")
	}

	return note, nil
}

// CreateNote stores a new note with a fresh UpdatedAt.
func (s *noteService) CreateNote(ctx context.Context, input usecase.CreateNoteInput) (*entity.Note, error) {
	note := &entity.Note{
		ID:        uuid.New().String(),
		AdminID:   input.AdminID,
		Content:   input.Content,
		UpdatedAt: time.Now(),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, errors.Wrap(err, "failed to create note")
	}

	return note, nil
}

// UpdateNote patches a note and refreshes its UpdatedAt.
func (s *noteService) UpdateNote(ctx context.Context, id string, input usecase.UpdateNoteInput) (*entity.Note, error) {
	note, err := s.noteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, domainerrors.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find note")
	}

	if input.Content != nil {
		note.Content = *input.Content
	}
	note.UpdatedAt = time.Now()

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, errors.Wrap(err, "failed to update note")
	}

	return note, nil
}
