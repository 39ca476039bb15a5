package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Ollie-C/myvu-movies-sub000/models"
	"github.com/Ollie-C/myvu-movies-sub000/services"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var req models.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": authValidationMessage(err)})
		return
	}

	token, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"token": token})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": authValidationMessage(err)})
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}

func (c *AuthController) Logout(ctx *gin.Context) {
	// In a stateless JWT setup, client-side logout is sufficient
	ctx.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func authValidationMessage(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request format"
	}
	for _, e := range ve {
		switch e.Field() {
		case "Email":
			return "Please provide a valid email address"
		case "Password":
			if e.Tag() == "min" {
				return "Password must be at least 6 characters long"
			}
			return "Password is required"
		}
	}
	return "Invalid input data"
}
