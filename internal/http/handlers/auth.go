package handlers

import (
	"crypto/subtle"
	"net/http"
	"sync"
	"time"

	intconfig "ridebook/internal/config"
	"ridebook/internal/http/middleware"
	"ridebook/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	envMu sync.RWMutex
	env   intconfig.Env
)

// Configure stores the env snapshot for handlers that need credentials.
func Configure(e intconfig.Env) {
	envMu.Lock()
	defer envMu.Unlock()
	env = e
}

func getEnv() intconfig.Env {
	envMu.RLock()
	defer envMu.RUnlock()
	return env
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLogin checks the configured credential pair and issues a session JWT.
// POST /admin-login
func AdminLogin(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	e := getEnv()

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(e.AdminUsername)) == 1

	passOK := false
	if e.AdminPasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(e.AdminPasswordHash), []byte(req.Password)) == nil
	} else if e.AdminPassword != "" {
		passOK = subtle.ConstantTimeCompare([]byte(req.Password), []byte(e.AdminPassword)) == 1
	}

	if !userOK || !passOK {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"sub":  e.AdminUsername,
		"exp":  expiresAt.Unix(),
	})

	tokenString, err := token.SignedString([]byte(e.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "admin_login", "admin session issued")
	c.JSON(http.StatusOK, gin.H{
		"token":      tokenString,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
	})
}
