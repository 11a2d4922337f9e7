package utils

import (
	"main/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// InitValidator registers custom rules on both the standalone validator and
// gin's binding engine so `binding:"notetype"` tags work in request structs.
func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("notetype", ValidateNoteTypeRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("notetype", ValidateNoteTypeRule)
	}
}

func ValidateNoteTypeRule(fl validator.FieldLevel) bool {
	return ValidateNoteType(fl.Field().String())
}

// ValidateNoteType accepts only the known visibility kinds.
func ValidateNoteType(kind string) bool {
	return kind == model.NoteTypePrivate || kind == model.NoteTypePublic
}
