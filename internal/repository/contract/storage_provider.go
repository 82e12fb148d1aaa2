package contract

import (
	"context"

	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/entity"
)

// NoteUpdate carries the fields of a partial update. A nil pointer means
// "leave the stored value untouched"; the set of updatable fields is fixed
// here so every provider handles the same two columns.
type NoteUpdate struct {
	Title   *string
	Content *string
}

// Empty reports whether the update would change nothing besides the
// timestamp refresh.
func (u NoteUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil
}

// StorageProvider is the CRUD capability set every backend variant
// implements. Exactly one provider is constructed at startup and shared by
// all requests; implementations must be safe for concurrent use.
//
// Absence is a value, not an error: FindByID and Update return (nil, nil)
// and Remove returns (false, nil) when no note matches the (id, userId)
// pair. A note owned by a different user behaves as if it does not exist.
type StorageProvider interface {
	// Create assigns the id and both timestamps (equal at creation),
	// persists the note, and returns the stored record.
	Create(ctx context.Context, note *entity.Note) (*entity.Note, error)

	// FindByID returns the note only if it exists and belongs to userId.
	FindByID(ctx context.Context, id, userId string) (*entity.Note, error)

	// FindAllByUser returns all notes owned by userId ordered by
	// updated_at descending. A non-empty search term filters to notes
	// whose title or content contains it, case-insensitively.
	FindAllByUser(ctx context.Context, userId, search string) ([]*entity.Note, error)

	// Update applies only the supplied fields and always refreshes
	// UpdatedAt in the same backend write.
	Update(ctx context.Context, id, userId string, changes NoteUpdate) (*entity.Note, error)

	// Remove hard-deletes the note, reporting whether a row matched.
	Remove(ctx context.Context, id, userId string) (bool, error)

	// IsHealthy probes backend connectivity. It never returns an error;
	// any failure is reported as false.
	IsHealthy(ctx context.Context) bool

	// Close releases the backend connection.
	Close(ctx context.Context) error
}
