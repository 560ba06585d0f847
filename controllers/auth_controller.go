package controllers

import (
	"github.com/gin-gonic/gin"

	"naoh-aquatics/models"
	"naoh-aquatics/services"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{authService: services.NewAuthService()}
}

// Register godoc
// @Summary Register new user
// @Description Register a new customer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	user, token, err := ctrl.authService.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Registration failed", Error: err.Error()})
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Registration successful",
		Data:    gin.H{"token": token, "user": user},
	})
}

// Login godoc
// @Summary Login
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	user, token, err := ctrl.authService.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(401, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Login successful",
		Data:    gin.H{"token": token, "user": user},
	})
}

// GetProfile godoc
// @Summary Get profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	user, err := ctrl.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "User not found"})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Profile retrieved", Data: user})
}
