package handler

import (
	"errors"
	"net/http"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// LoginHandler verifies a credential pair and returns a bearer token. The
// username field may hold either the username or the email.
func LoginHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "All fields are required")
		return
	}

	token, err := userService.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"token": token})
	case errors.Is(err, usecase.ErrMissingField):
		utils.BadRequest(c, "All fields are required")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.BadRequest(c, "Invalid username/email or password")
	default:
		utils.InternalError(c, "Server error during login")
	}
}
