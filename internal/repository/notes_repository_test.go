package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/entity"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/pkg/apperr"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/repository/contract"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/repository/implementation"
)

func TestNilProviderFailsFast(t *testing.T) {
	repo := NewNotesRepository(nil)
	ctx := context.Background()

	var appErr *apperr.Error

	_, err := repo.Create(ctx, &entity.Note{Title: "t", Content: "c", UserId: "u"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeServiceUnavailable, appErr.Code)

	_, err = repo.FindByID(ctx, "id", "u")
	require.ErrorAs(t, err, &appErr)

	_, err = repo.FindAllByUser(ctx, "u", "")
	require.ErrorAs(t, err, &appErr)

	_, err = repo.Update(ctx, "id", "u", contract.NoteUpdate{})
	require.ErrorAs(t, err, &appErr)

	_, err = repo.Remove(ctx, "id", "u")
	require.ErrorAs(t, err, &appErr)

	assert.False(t, repo.IsHealthy(ctx))
}

func TestRepositoryForwardsToProvider(t *testing.T) {
	repo := NewNotesRepository(implementation.NewDisabledProvider())

	_, err := repo.FindByID(context.Background(), "id", "u")

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeServiceUnavailable, appErr.Code)
	assert.False(t, repo.IsHealthy(context.Background()))
}
