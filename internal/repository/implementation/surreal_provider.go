package implementation

import (
	"context"
	"strings"
	"time"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/entity"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/repository/contract"
)

// noteDocument is the SurrealDB shape of a note. Ids stay store-generated
// record ids; timestamps use CustomDateTime so they round-trip through the
// CBOR protocol as native datetimes.
type noteDocument struct {
	ID        *models.RecordID       `json:"id,omitempty"`
	Title     string                 `json:"title"`
	Content   string                 `json:"content"`
	UserId    string                 `json:"user_id"`
	CreatedAt models.CustomDateTime  `json:"created_at"`
	UpdatedAt *models.CustomDateTime `json:"updated_at,omitempty"`
}

// SurrealProvider is the document storage variant. Tables are created
// implicitly on first insert, so there is no schema setup step.
type SurrealProvider struct {
	db    *surrealdb.DB
	table string
}

func NewSurrealProvider(db *surrealdb.DB, table string) contract.StorageProvider {
	return &SurrealProvider{
		db:    db,
		table: table,
	}
}

func (p *SurrealProvider) Create(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	now := time.Now()
	doc, err := surrealdb.Create[noteDocument](ctx, p.db, p.table, map[string]any{
		"title":      note.Title,
		"content":    note.Content,
		"user_id":    note.UserId,
		"created_at": models.CustomDateTime{Time: now},
		"updated_at": models.CustomDateTime{Time: now},
	})
	if err != nil {
		return nil, err
	}
	return p.toEntity(doc), nil
}

func (p *SurrealProvider) FindByID(ctx context.Context, id, userId string) (*entity.Note, error) {
	key, ok := p.recordKey(id)
	if !ok {
		// A malformed id cannot match any record.
		return nil, nil
	}

	docs, err := p.query(ctx,
		`SELECT * FROM type::thing($tb, $key) WHERE user_id = $user_id`,
		map[string]any{
			"tb":      p.table,
			"key":     key,
			"user_id": userId,
		})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return p.toEntity(&docs[0]), nil
}

func (p *SurrealProvider) FindAllByUser(ctx context.Context, userId, search string) ([]*entity.Note, error) {
	sql := `SELECT * FROM type::table($tb) WHERE user_id = $user_id ORDER BY updated_at DESC`
	vars := map[string]any{
		"tb":      p.table,
		"user_id": userId,
	}
	if search != "" {
		sql = `SELECT * FROM type::table($tb) WHERE user_id = $user_id
			AND (string::contains(string::lowercase(title), $term)
				OR string::contains(string::lowercase(content), $term))
			ORDER BY updated_at DESC`
		vars["term"] = strings.ToLower(search)
	}

	docs, err := p.query(ctx, sql, vars)
	if err != nil {
		return nil, err
	}

	notes := make([]*entity.Note, len(docs))
	for i := range docs {
		notes[i] = p.toEntity(&docs[i])
	}
	return notes, nil
}

func (p *SurrealProvider) Update(ctx context.Context, id, userId string, changes contract.NoteUpdate) (*entity.Note, error) {
	key, ok := p.recordKey(id)
	if !ok {
		return nil, nil
	}

	merge := map[string]any{
		"updated_at": models.CustomDateTime{Time: time.Now()},
	}
	if changes.Title != nil {
		merge["title"] = *changes.Title
	}
	if changes.Content != nil {
		merge["content"] = *changes.Content
	}

	docs, err := p.query(ctx,
		`UPDATE type::thing($tb, $key) MERGE $data WHERE user_id = $user_id`,
		map[string]any{
			"tb":      p.table,
			"key":     key,
			"user_id": userId,
			"data":    merge,
		})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return p.toEntity(&docs[0]), nil
}

func (p *SurrealProvider) Remove(ctx context.Context, id, userId string) (bool, error) {
	key, ok := p.recordKey(id)
	if !ok {
		return false, nil
	}

	docs, err := p.query(ctx,
		`DELETE type::thing($tb, $key) WHERE user_id = $user_id RETURN BEFORE`,
		map[string]any{
			"tb":      p.table,
			"key":     key,
			"user_id": userId,
		})
	if err != nil {
		return false, err
	}
	return len(docs) > 0, nil
}

func (p *SurrealProvider) IsHealthy(ctx context.Context) bool {
	_, err := surrealdb.Query[int](ctx, p.db, `RETURN 1`, nil)
	return err == nil
}

func (p *SurrealProvider) Close(ctx context.Context) error {
	return p.db.Close(ctx)
}

// query runs one SurrealQL statement and flattens its single result set.
func (p *SurrealProvider) query(ctx context.Context, sql string, vars map[string]any) ([]noteDocument, error) {
	results, err := surrealdb.Query[[]noteDocument](ctx, p.db, sql, vars)
	if err != nil {
		return nil, err
	}
	if results == nil || len(*results) == 0 {
		return nil, nil
	}
	return (*results)[0].Result, nil
}

// recordKey extracts the key part of a "table:key" record id. Bare keys are
// accepted too so clients may pass either form.
func (p *SurrealProvider) recordKey(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	parts := strings.Split(id, ":")
	switch len(parts) {
	case 1:
		return parts[0], true
	case 2:
		if parts[0] != p.table || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	default:
		return "", false
	}
}

func (p *SurrealProvider) toEntity(doc *noteDocument) *entity.Note {
	if doc == nil {
		return nil
	}

	note := &entity.Note{
		Title:     doc.Title,
		Content:   doc.Content,
		UserId:    doc.UserId,
		CreatedAt: doc.CreatedAt.Time,
	}
	if doc.ID != nil {
		note.Id = doc.ID.String()
	}
	if doc.UpdatedAt != nil {
		note.UpdatedAt = doc.UpdatedAt.Time
	} else {
		note.UpdatedAt = doc.CreatedAt.Time
	}
	return note
}
