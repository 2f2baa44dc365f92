package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/bar-api/controllers"
	"github.com/yeremiapane/bar-api/utils"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthRouter(t *testing.T, hash string) (*gin.Engine, *utils.JWTManager) {
	t.Helper()
	jwt := utils.NewJWTManager("test-secret", time.Hour)
	router := gin.New()
	router.POST("/admin/login", controllers.NewAuthController("admin", hash, jwt).Login)
	return router, jwt
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha"), bcrypt.MinCost)
	require.NoError(t, err)
	router, jwt := setupAuthRouter(t, string(hash))

	w, env := doJSON(t, router, http.MethodPost, "/admin/login", map[string]string{"username": "admin", "password": "s3nha"})
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Token     string `json:"token"`
		ExpiresIn int    `json:"expires_in"`
	}
	decodeData(t, env, &got)
	assert.Equal(t, 3600, got.ExpiresIn)

	claims, err := jwt.ParseToken(got.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, controllers.RoleAdmin, claims.Role)
}

func TestLoginRejected(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha"), bcrypt.MinCost)
	require.NoError(t, err)
	router, _ := setupAuthRouter(t, string(hash))

	w, _ := doJSON(t, router, http.MethodPost, "/admin/login", map[string]string{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/admin/login", map[string]string{"username": "root", "password": "s3nha"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/admin/login", map[string]string{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No hash configured: login is disabled.
	disabled, _ := setupAuthRouter(t, "")
	w, _ = doJSON(t, disabled, http.MethodPost, "/admin/login", map[string]string{"username": "admin", "password": "s3nha"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
