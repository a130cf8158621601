package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shreeramenterprise/sems_backend/models"
)

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func LoginHandler(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	info, err := models.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, info)
}

func LogoutHandler(c *gin.Context) {
	if _, err := models.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"message": "logged out"})
}

func SessionUserHandler(c *gin.Context) {
	user, err := models.GetSessionUser(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, user)
}

// SetupAdminHandler bootstraps the very first admin account. It is the
// only unauthenticated write and refuses once an admin exists.
func SetupAdminHandler(c *gin.Context) {
	var input models.NewUser
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := models.SetupAdmin(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, user)
}
