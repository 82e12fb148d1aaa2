package repository

import (
	"context"

	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/entity"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/pkg/apperr"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/repository/contract"
)

type INotesRepository interface {
	Create(ctx context.Context, note *entity.Note) (*entity.Note, error)
	FindByID(ctx context.Context, id, userId string) (*entity.Note, error)
	FindAllByUser(ctx context.Context, userId, search string) ([]*entity.Note, error)
	Update(ctx context.Context, id, userId string, changes contract.NoteUpdate) (*entity.Note, error)
	Remove(ctx context.Context, id, userId string) (bool, error)
	IsHealthy(ctx context.Context) bool
}

// notesRepository forwards every call to the provider selected at startup.
// It exists so the service never touches provider construction; the nil
// guard keeps a miswired container from panicking on first request.
type notesRepository struct {
	provider contract.StorageProvider
}

func NewNotesRepository(provider contract.StorageProvider) INotesRepository {
	return &notesRepository{
		provider: provider,
	}
}

func (r *notesRepository) active() (contract.StorageProvider, error) {
	if r.provider == nil {
		return nil, apperr.NewServiceUnavailable("Storage provider is not initialized")
	}
	return r.provider, nil
}

func (r *notesRepository) Create(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	provider, err := r.active()
	if err != nil {
		return nil, err
	}
	return provider.Create(ctx, note)
}

func (r *notesRepository) FindByID(ctx context.Context, id, userId string) (*entity.Note, error) {
	provider, err := r.active()
	if err != nil {
		return nil, err
	}
	return provider.FindByID(ctx, id, userId)
}

func (r *notesRepository) FindAllByUser(ctx context.Context, userId, search string) ([]*entity.Note, error) {
	provider, err := r.active()
	if err != nil {
		return nil, err
	}
	return provider.FindAllByUser(ctx, userId, search)
}

func (r *notesRepository) Update(ctx context.Context, id, userId string, changes contract.NoteUpdate) (*entity.Note, error) {
	provider, err := r.active()
	if err != nil {
		return nil, err
	}
	return provider.Update(ctx, id, userId, changes)
}

func (r *notesRepository) Remove(ctx context.Context, id, userId string) (bool, error) {
	provider, err := r.active()
	if err != nil {
		return false, err
	}
	return provider.Remove(ctx, id, userId)
}

func (r *notesRepository) IsHealthy(ctx context.Context) bool {
	if r.provider == nil {
		return false
	}
	return r.provider.IsHealthy(ctx)
}
