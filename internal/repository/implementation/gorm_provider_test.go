package implementation

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/ncruces/go-sqlite3/embed"
	sqlite "github.com/ncruces/go-sqlite3/gormlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/entity"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/repository/contract"
)

func newTestProvider(t *testing.T) contract.StorageProvider {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "notes.db")), &gorm.Config{})
	require.NoError(t, err)

	provider, err := NewGormProvider(db)
	require.NoError(t, err)
	return provider
}

func mustCreate(t *testing.T, p contract.StorageProvider, title, content, userId string) *entity.Note {
	t.Helper()
	note, err := p.Create(context.Background(), &entity.Note{
		Title:   title,
		Content: content,
		UserId:  userId,
	})
	require.NoError(t, err)
	require.NotEmpty(t, note.Id)
	return note
}

func strptr(s string) *string {
	return &s
}

func TestCreateAssignsIdAndTimestamps(t *testing.T) {
	p := newTestProvider(t)

	note := mustCreate(t, p, "Shopping List", "milk, eggs", "alice")

	assert.Equal(t, "Shopping List", note.Title)
	assert.Equal(t, "alice", note.UserId)
	assert.False(t, note.CreatedAt.IsZero())
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)
}

func TestOwnershipIsolation(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	note := mustCreate(t, p, "private", "alice's note", "alice")

	// A different user must observe the note as absent, not forbidden.
	found, err := p.FindByID(ctx, note.Id, "bob")
	require.NoError(t, err)
	assert.Nil(t, found)

	updated, err := p.Update(ctx, note.Id, "bob", contract.NoteUpdate{Title: strptr("stolen")})
	require.NoError(t, err)
	assert.Nil(t, updated)

	removed, err := p.Remove(ctx, note.Id, "bob")
	require.NoError(t, err)
	assert.False(t, removed)

	// The owner still sees the untouched note.
	mine, err := p.FindByID(ctx, note.Id, "alice")
	require.NoError(t, err)
	require.NotNil(t, mine)
	assert.Equal(t, "private", mine.Title)
}

func TestPartialUpdatePreservesUntouchedFields(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	note := mustCreate(t, p, "title v1", "content v1", "alice")

	time.Sleep(10 * time.Millisecond)
	afterTitle, err := p.Update(ctx, note.Id, "alice", contract.NoteUpdate{Title: strptr("title v2")})
	require.NoError(t, err)
	require.NotNil(t, afterTitle)
	assert.Equal(t, "title v2", afterTitle.Title)
	assert.Equal(t, "content v1", afterTitle.Content)
	assert.True(t, afterTitle.UpdatedAt.After(note.UpdatedAt))

	time.Sleep(10 * time.Millisecond)
	afterContent, err := p.Update(ctx, note.Id, "alice", contract.NoteUpdate{Content: strptr("content v2")})
	require.NoError(t, err)
	require.NotNil(t, afterContent)
	assert.Equal(t, "title v2", afterContent.Title)
	assert.Equal(t, "content v2", afterContent.Content)
	assert.True(t, afterContent.UpdatedAt.After(afterTitle.UpdatedAt))

	// CreatedAt never moves.
	assert.Equal(t, note.CreatedAt.Unix(), afterContent.CreatedAt.Unix())
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	mustCreate(t, p, "Shopping List", "weekly groceries", "alice")
	mustCreate(t, p, "Workout", "leg day, SHOPPING for shoes after", "alice")
	mustCreate(t, p, "Recipes", "pasta carbonara", "alice")

	for _, term := range []string{"shop", "SHOP", "Shop"} {
		notes, err := p.FindAllByUser(ctx, "alice", term)
		require.NoError(t, err)
		// Matches in title OR content.
		assert.Len(t, notes, 2, "term %q", term)
	}

	notes, err := p.FindAllByUser(ctx, "alice", "list")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Shopping List", notes[0].Title)

	none, err := p.FindAllByUser(ctx, "alice", "nonexistent")
	require.NoError(t, err)
	assert.Len(t, none, 0)
}

func TestListOrderedByUpdatedAtDesc(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	first := mustCreate(t, p, "first", "a", "alice")
	time.Sleep(10 * time.Millisecond)
	second := mustCreate(t, p, "second", "b", "alice")
	time.Sleep(10 * time.Millisecond)
	third := mustCreate(t, p, "third", "c", "alice")

	notes, err := p.FindAllByUser(ctx, "alice", "")
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, third.Id, notes[0].Id)
	assert.Equal(t, second.Id, notes[1].Id)
	assert.Equal(t, first.Id, notes[2].Id)

	// Touching the oldest note moves it to the front.
	time.Sleep(10 * time.Millisecond)
	_, err = p.Update(ctx, first.Id, "alice", contract.NoteUpdate{Content: strptr("a2")})
	require.NoError(t, err)

	notes, err = p.FindAllByUser(ctx, "alice", "")
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, first.Id, notes[0].Id)
}

func TestListScopedToOwner(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	mustCreate(t, p, "alice 1", "a", "alice")
	mustCreate(t, p, "bob 1", "b", "bob")

	notes, err := p.FindAllByUser(ctx, "alice", "")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "alice 1", notes[0].Title)
}

func TestRemoveIsIdempotentInEffect(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	note := mustCreate(t, p, "to delete", "x", "alice")

	removed, err := p.Remove(ctx, note.Id, "alice")
	require.NoError(t, err)
	assert.True(t, removed)

	// Second delete reports no match instead of failing.
	removed, err = p.Remove(ctx, note.Id, "alice")
	require.NoError(t, err)
	assert.False(t, removed)

	found, err := p.FindByID(ctx, note.Id, "alice")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestIsHealthy(t *testing.T) {
	p := newTestProvider(t)

	assert.True(t, p.IsHealthy(context.Background()))
}
