package dto

import "main/model"

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
	Trashed bool   `json:"trashed"`
	Pinned  bool   `json:"pinned"`
	Type    string `json:"type" binding:"omitempty,notetype"`
}

// ToModel builds the note to persist for userID, applying creation defaults.
func (r *CreateNoteRequest) ToModel(userID string) *model.Note {
	noteType := r.Type
	if noteType == "" {
		noteType = model.NoteTypePrivate
	}
	return &model.Note{
		UserID:  userID,
		Title:   r.Title,
		Content: r.Content,
		Trashed: r.Trashed,
		Pinned:  r.Pinned,
		Type:    noteType,
	}
}

// UpdateNoteRequest uses pointers so absent fields can be told apart from
// zero values. Anything outside this whitelist is dropped at the boundary.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Trashed *bool   `json:"trashed"`
	Pinned  *bool   `json:"pinned"`
}

func (r *UpdateNoteRequest) ToModel() *model.NoteUpdate {
	return &model.NoteUpdate{
		Title:   r.Title,
		Content: r.Content,
		Trashed: r.Trashed,
		Pinned:  r.Pinned,
	}
}
