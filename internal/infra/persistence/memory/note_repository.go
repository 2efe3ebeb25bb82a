package memory

import (
	"context"

	"chamabook/internal/domain/entity"
	"chamabook/internal/domain/repository"
)

// noteRepository implements repository.NoteRepository over the Store.
type noteRepository struct {
	store *Store
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(store *Store) repository.NoteRepository {
	return &noteRepository{store: store}
}

func (repo *noteRepository) FindByAdmin(ctx context.Context, adminID string) (*entity.Note, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, note := range repo.store.notes.list() {
		if note.AdminID == adminID {
			return &note, nil
		}
	}

	return nil, repository.ErrNoteNotFound
}

func (repo *noteRepository) FindByID(ctx context.Context, id string) (*entity.Note, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	note, ok := repo.store.notes.get(id)
	if !ok {
		return nil, repository.ErrNoteNotFound
	}

	return &note, nil
}

func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.notes.put(note.ID, *note)

	return nil
}

func (repo *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.notes.get(note.ID); !ok {
		return repository.ErrNoteNotFound
	}
	repo.store.notes.put(note.ID, *note)

	return nil
}
