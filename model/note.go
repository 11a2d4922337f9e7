package model

import "time"

// Visibility kinds a note can be created with. There is no public-read
// route yet, so "public" currently changes nothing beyond the stored value.
const (
	NoteTypePrivate = "private"
	NoteTypePublic  = "public"
)

type Note struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Trashed   bool      `bson:"trashed" json:"trashed"`
	Pinned    bool      `bson:"pinned" json:"pinned"`
	Type      string    `bson:"type" json:"type"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// NoteUpdate carries a partial update. Nil fields are left untouched;
// owner and visibility type are not updatable through this path.
type NoteUpdate struct {
	Title   *string
	Content *string
	Trashed *bool
	Pinned  *bool
}
