package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Logout clears the access token cookie
func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", a.secureCookie, true)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logged out successfully",
	})
}
