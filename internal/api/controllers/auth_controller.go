package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desire4travels/Chatbot/internal/models/request_models"
	"github.com/Desire4travels/Chatbot/internal/models/response_models"
	"github.com/Desire4travels/Chatbot/internal/services"
	"github.com/Desire4travels/Chatbot/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func (a *AuthController) LoginHandler(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.LoginResponse{Token: token}, "Login successful")
}
