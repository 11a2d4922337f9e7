package usecase

import (
	"context"
	"errors"

	"main/model"
	"main/repository"
	"main/utils"

	"go.uber.org/zap"
)

// NotesRepository is the scoped document store behind the gateway. Every
// method takes the owning account ID so no note is reachable across
// accounts.
type NotesRepository interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error)
	UpdateNote(ctx context.Context, noteID, userID string, update *model.NoteUpdate) (*model.Note, error)
	DeleteNote(ctx context.Context, noteID, userID string) error
}

type NotesService struct {
	NotesRepo NotesRepository
	Logger    *zap.Logger
}

// ListNotes returns every note owned by userID, trashed ones included.
// Filtering is a presentation concern.
func (s *NotesService) ListNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	notes, err := s.NotesRepo.GetUserNotes(ctx, userID)
	if err != nil {
		s.Logger.Error("Failed to fetch notes", zap.Error(err))
		return nil, ErrStorageFailure
	}
	if notes == nil {
		notes = []*model.Note{}
	}
	return notes, nil
}

// CreateNote persists the note for its owner. Content is the only required
// field; the server assigns the identifier and timestamps.
func (s *NotesService) CreateNote(ctx context.Context, note *model.Note) error {
	if note.Content == "" {
		return ErrMissingField
	}
	if note.Type == "" {
		note.Type = model.NoteTypePrivate
	}
	note.ID = utils.GenerateNoteID()

	if err := s.NotesRepo.CreateNote(ctx, note); err != nil {
		s.Logger.Error("Failed to create note", zap.Error(err))
		return ErrStorageFailure
	}

	utils.TrackNoteOperation("create")
	return nil
}

// UpdateNote applies a partial update to a note owned by userID and returns
// the post-update record. A nonexistent note and one owned by another
// account are indistinguishable.
func (s *NotesService) UpdateNote(ctx context.Context, noteID, userID string, update *model.NoteUpdate) (*model.Note, error) {
	note, err := s.NotesRepo.UpdateNote(ctx, noteID, userID, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.Logger.Error("Failed to update note", zap.Error(err))
		return nil, ErrStorageFailure
	}

	utils.TrackNoteOperation("update")
	return note, nil
}

// DeleteNote permanently removes a note owned by userID. Distinct from
// trashing, which is just a flag update.
func (s *NotesService) DeleteNote(ctx context.Context, noteID, userID string) error {
	if err := s.NotesRepo.DeleteNote(ctx, noteID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		s.Logger.Error("Failed to delete note", zap.Error(err))
		return ErrStorageFailure
	}

	utils.TrackNoteOperation("delete")
	return nil
}
