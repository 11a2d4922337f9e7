package handler

import (
	"errors"
	"net/http"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler creates a new account. Registration issues no token;
// the client logs in as a separate step.
func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "All fields are required")
		return
	}

	err := userService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"msg": "User registered successfully"})
	case errors.Is(err, usecase.ErrMissingField):
		utils.BadRequest(c, "All fields are required")
	case errors.Is(err, usecase.ErrDuplicateIdentity):
		utils.BadRequest(c, "Username or Email already in use")
	default:
		utils.InternalError(c, "Server error during registration")
	}
}
