package implementation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/entity"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/mapper"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/model"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/repository/contract"
)

// GormProvider is the relational storage variant. Ids are generated
// application-side before insert so the provider never depends on a
// database-native key generator.
type GormProvider struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewGormProvider(db *gorm.DB) (contract.StorageProvider, error) {
	// Schema is created on startup if absent (notes table + owner index).
	if err := db.AutoMigrate(&model.Note{}); err != nil {
		return nil, err
	}

	return &GormProvider{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}, nil
}

func (p *GormProvider) Create(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	now := time.Now()
	m := &model.Note{
		Id:        uuid.NewString(),
		Title:     note.Title,
		Content:   note.Content,
		UserId:    note.UserId,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := p.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return p.mapper.ToEntity(m), nil
}

func (p *GormProvider) FindByID(ctx context.Context, id, userId string) (*entity.Note, error) {
	var m model.Note
	err := p.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p.mapper.ToEntity(&m), nil
}

func (p *GormProvider) FindAllByUser(ctx context.Context, userId, search string) ([]*entity.Note, error) {
	query := p.db.WithContext(ctx).Where("user_id = ?", userId)
	if search != "" {
		// LOWER + LIKE instead of ILIKE keeps the search portable across
		// PostgreSQL and SQLite with the same case-insensitive semantics.
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	}

	var models []*model.Note
	if err := query.Order("updated_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return p.mapper.ToEntities(models), nil
}

func (p *GormProvider) Update(ctx context.Context, id, userId string, changes contract.NoteUpdate) (*entity.Note, error) {
	// SET clause built from only the supplied fields; updated_at is
	// refreshed in the same write so concurrent updates resolve
	// last-write-wins at the database.
	columns := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if changes.Title != nil {
		columns["title"] = *changes.Title
	}
	if changes.Content != nil {
		columns["content"] = *changes.Content
	}

	result := p.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ? AND user_id = ?", id, userId).
		Updates(columns)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return p.FindByID(ctx, id, userId)
}

func (p *GormProvider) Remove(ctx context.Context, id, userId string) (bool, error) {
	result := p.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		Delete(&model.Note{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (p *GormProvider) IsHealthy(ctx context.Context) bool {
	sqlDB, err := p.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.PingContext(ctx) == nil
}

func (p *GormProvider) Close(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
