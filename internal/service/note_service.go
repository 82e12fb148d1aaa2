package service

import (
	"context"
	"strings"

	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/dto"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/entity"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/pkg/apperr"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/repository"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/repository/contract"
)

type INoteService interface {
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, id, userId string) (*dto.NoteResponse, error)
	List(ctx context.Context, userId, search string) ([]*dto.NoteResponse, error)
	Update(ctx context.Context, id, userId string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id, userId string) error
}

// noteService owns the business rules the providers do not: input
// validation before any storage call, and the mapping of absent results to
// NOT_FOUND. Ownership is enforced indirectly because every repository
// call is scoped by (id, userId).
type noteService struct {
	notesRepo repository.INotesRepository
}

func NewNoteService(notesRepo repository.INotesRepository) INoteService {
	return &noteService{
		notesRepo: notesRepo,
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if blank(req.Title) || blank(req.Content) || blank(req.UserId) {
		return nil, apperr.NewValidation("title, content, and userId are required")
	}

	note, err := s.notesRepo.Create(ctx, &entity.Note{
		Title:   req.Title,
		Content: req.Content,
		UserId:  req.UserId,
	})
	if err != nil {
		return nil, err
	}

	return toNoteResponse(note), nil
}

func (s *noteService) Show(ctx context.Context, id, userId string) (*dto.NoteResponse, error) {
	if blank(id) || blank(userId) {
		return nil, apperr.NewValidation("id and userId are required")
	}

	note, err := s.notesRepo.FindByID(ctx, id, userId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperr.NewNotFound("Note not found")
	}

	return toNoteResponse(note), nil
}

func (s *noteService) List(ctx context.Context, userId, search string) ([]*dto.NoteResponse, error) {
	if blank(userId) {
		return nil, apperr.NewValidation("userId is required")
	}

	notes, err := s.notesRepo.FindAllByUser(ctx, userId, search)
	if err != nil {
		return nil, err
	}

	// An empty result is a success, not an error.
	res := make([]*dto.NoteResponse, len(notes))
	for i, note := range notes {
		res[i] = toNoteResponse(note)
	}
	return res, nil
}

func (s *noteService) Update(ctx context.Context, id, userId string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if blank(id) || blank(userId) {
		return nil, apperr.NewValidation("id and userId are required")
	}

	changes := contract.NoteUpdate{
		Title:   req.Title,
		Content: req.Content,
	}
	if changes.Empty() {
		return nil, apperr.NewValidation("Nothing to update")
	}

	note, err := s.notesRepo.Update(ctx, id, userId, changes)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperr.NewNotFound("Note not found")
	}

	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, id, userId string) error {
	if blank(id) || blank(userId) {
		return apperr.NewValidation("id and userId are required")
	}

	deleted, err := s.notesRepo.Remove(ctx, id, userId)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NewNotFound("Note not found")
	}
	return nil
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		UserId:    note.UserId,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
