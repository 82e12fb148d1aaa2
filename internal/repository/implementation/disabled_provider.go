package implementation

import (
	"context"

	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/entity"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/pkg/apperr"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/repository/contract"
)

// DisabledProvider is the variant used when no backend is configured. It
// keeps the process startable and the liveness probe green while every
// CRUD call fails with SERVICE_UNAVAILABLE and readiness reports false.
type DisabledProvider struct{}

func NewDisabledProvider() contract.StorageProvider {
	return &DisabledProvider{}
}

func (p *DisabledProvider) unavailable() *apperr.Error {
	return apperr.NewServiceUnavailable("Database is not configured. Set DB_CLIENT and connection variables.")
}

func (p *DisabledProvider) Create(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	return nil, p.unavailable()
}

func (p *DisabledProvider) FindByID(ctx context.Context, id, userId string) (*entity.Note, error) {
	return nil, p.unavailable()
}

func (p *DisabledProvider) FindAllByUser(ctx context.Context, userId, search string) ([]*entity.Note, error) {
	return nil, p.unavailable()
}

func (p *DisabledProvider) Update(ctx context.Context, id, userId string, changes contract.NoteUpdate) (*entity.Note, error) {
	return nil, p.unavailable()
}

func (p *DisabledProvider) Remove(ctx context.Context, id, userId string) (bool, error) {
	return false, p.unavailable()
}

func (p *DisabledProvider) IsHealthy(ctx context.Context) bool {
	return false
}

func (p *DisabledProvider) Close(ctx context.Context) error {
	return nil
}
