package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/workforce-hub/dto"
	"github.com/workforce-hub/services"
)

// AuthController handles account endpoints
type AuthController struct {
	authService  *services.AuthService
	secureCookie bool
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService, secureCookie bool) *AuthController {
	return &AuthController{authService: authService, secureCookie: secureCookie}
}

// Register handles user registration
func (a *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := a.authService.Register(req)
	if err != nil {
		respondError(c, err, "register user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "User registered successfully",
		"data":    user,
	})
}

// Login handles user authentication
func (a *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	authResponse, err := a.authService.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication failed",
			})
			return
		}
		respondError(c, err, "log in")
		return
	}

	// Set token as HttpOnly cookie for browser clients
	maxAge := int(time.Until(authResponse.ExpiresAt).Seconds())
	c.SetCookie("access_token", authResponse.Token, maxAge, "/", "", a.secureCookie, true)

	// Also return token in response body for clients that prefer Bearer auth
	respondOK(c, authResponse)
}

// GetCurrentUser returns the currently authenticated user's profile
func (a *AuthController) GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := a.authService.GetUser(userID)
	if err != nil {
		respondError(c, err, "retrieve user profile")
		return
	}

	respondOK(c, user)
}

// GetUser looks up another user by id
func (a *AuthController) GetUser(c *gin.Context) {
	user, err := a.authService.GetUser(c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve user")
		return
	}

	respondOK(c, user)
}
