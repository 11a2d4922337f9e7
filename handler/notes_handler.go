package handler

import (
	"errors"
	"net/http"

	"main/dto"
	"main/middleware"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// GetUserNotesHandler lists every note owned by the caller, trashed ones
// included. Filtering and ordering beyond store order is left to the client.
func GetUserNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString(middleware.UserIDKey)

	notes, err := notesService.ListNotes(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Server error")
		return
	}

	c.JSON(http.StatusOK, notes)
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString(middleware.UserIDKey)

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Tag() == "notetype" {
					utils.BadRequest(c, "Invalid note type")
					return
				}
			}
		}
		utils.BadRequest(c, "Content is required")
		return
	}

	note := req.ToModel(userID)
	err := notesService.CreateNote(c.Request.Context(), note)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"msg": "Note created", "note": note})
	case errors.Is(err, usecase.ErrMissingField):
		utils.BadRequest(c, "Content is required")
	default:
		utils.InternalError(c, "Error creating note")
	}
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString(middleware.UserIDKey)

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.UpdateNote(c.Request.Context(), noteID, userID, req.ToModel())
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"msg": "Note updated", "note": note})
	case errors.Is(err, usecase.ErrNotFound):
		utils.NotFound(c, "Note not found")
	default:
		utils.InternalError(c, "Error updating note")
	}
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString(middleware.UserIDKey)

	err := notesService.DeleteNote(c.Request.Context(), noteID, userID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"msg": "Note permanently deleted"})
	case errors.Is(err, usecase.ErrNotFound):
		utils.NotFound(c, "Note not found")
	default:
		utils.InternalError(c, "Error deleting note")
	}
}
