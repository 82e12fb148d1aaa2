package implementation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/entity"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/pkg/apperr"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/repository/contract"
)

func assertUnavailable(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeServiceUnavailable, appErr.Code)
	assert.Equal(t, 503, appErr.StatusCode)
}

func TestDisabledProviderRejectsEveryOperation(t *testing.T) {
	p := NewDisabledProvider()
	ctx := context.Background()

	_, err := p.Create(ctx, &entity.Note{Title: "t", Content: "c", UserId: "u"})
	assertUnavailable(t, err)

	_, err = p.FindByID(ctx, "id", "u")
	assertUnavailable(t, err)

	_, err = p.FindAllByUser(ctx, "u", "")
	assertUnavailable(t, err)

	_, err = p.Update(ctx, "id", "u", contract.NoteUpdate{Title: strptr("x")})
	assertUnavailable(t, err)

	_, err = p.Remove(ctx, "id", "u")
	assertUnavailable(t, err)
}

func TestDisabledProviderHealth(t *testing.T) {
	p := NewDisabledProvider()

	assert.False(t, p.IsHealthy(context.Background()))
	assert.NoError(t, p.Close(context.Background()))
}
