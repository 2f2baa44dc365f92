package controllers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-api/utils"
	"golang.org/x/crypto/bcrypt"
)

const RoleAdmin = "admin"

// AuthController logs the venue administrator in. There is a single admin
// account, configured through ADMIN_USERNAME and ADMIN_PASSWORD_HASH.
type AuthController struct {
	Username     string
	PasswordHash []byte
	JWT          *utils.JWTManager
}

func NewAuthController(username, passwordHash string, jwt *utils.JWTManager) *AuthController {
	return &AuthController{Username: username, PasswordHash: []byte(passwordHash), JWT: jwt}
}

func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if len(ac.PasswordHash) == 0 {
		utils.ErrorLogger.Println("admin login attempted but ADMIN_PASSWORD_HASH is not set")
		utils.RespondMessage(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	sameUser := subtle.ConstantTimeCompare([]byte(req.Username), []byte(ac.Username)) == 1
	if err := bcrypt.CompareHashAndPassword(ac.PasswordHash, []byte(req.Password)); err != nil || !sameUser {
		utils.InfoLogger.Printf("Failed admin login for %q from %s", req.Username, c.ClientIP())
		utils.RespondMessage(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := ac.JWT.GenerateToken(ac.Username, RoleAdmin)
	if err != nil {
		utils.ErrorLogger.Printf("sign admin token: %v", err)
		utils.RespondMessage(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	utils.InfoLogger.Printf("Admin %s logged in", ac.Username)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":      token,
		"expires_in": int(ac.JWT.TTL.Seconds()),
	})
}
