package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"main/config"
	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
	Timeout         time.Duration
}

func GetNotesRepo(client *mongo.Client, cfg config.DatabaseConfig) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(cfg.DatabaseName).Collection("notes"),
		Timeout:         cfg.OperationTimeout,
	}
}

func (r *NotesRepo) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.Timeout)
}

// CreateNote persists a new note and stamps its timestamps.
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	ctx, cancel := r.opContext(ctx)
	defer cancel()

	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	if _, err := r.MongoCollection.InsertOne(ctx, note); err != nil {
		utils.TrackError("database", "note_creation_failed")
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

// GetUserNotes retrieves every note owned by userID, trashed ones included.
func (r *NotesRepo) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	ctx, cancel := r.opContext(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "notes_fetch_failed")
		return nil, fmt.Errorf("failed to fetch notes: %w", err)
	}
	defer cursor.Close(ctx)

	var notes []*model.Note
	if err := cursor.All(ctx, &notes); err != nil {
		utils.TrackError("database", "notes_decode_failed")
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return notes, nil
}

// UpdateNote applies the non-nil fields of update to the note identified by
// noteID, but only when it is owned by userID. A missing note and a foreign
// owner both come back as ErrNotFound so callers cannot probe for existence.
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID, userID string, update *model.NoteUpdate) (*model.Note, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	ctx, cancel := r.opContext(ctx)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Trashed != nil {
		set["trashed"] = *update.Trashed
	}
	if update.Pinned != nil {
		set["pinned"] = *update.Pinned
	}

	filter := bson.M{"_id": noteID, "user_id": userID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var note model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "note_update_failed")
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return &note, nil
}

// DeleteNote permanently removes the note when owned by userID. Same
// ownership-or-nonexistence contract as UpdateNote.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	ctx, cancel := r.opContext(ctx)
	defer cancel()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": noteID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "note_deletion_failed")
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
