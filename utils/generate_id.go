package utils

import "github.com/google/uuid"

// GenerateUserID returns an opaque unique identifier for a new account.
func GenerateUserID() string {
	return uuid.New().String()
}

// GenerateNoteID returns an opaque unique identifier for a new note.
func GenerateNoteID() string {
	return uuid.New().String()
}
