package jwtmw

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// DefaultTokenExpiration は発行するトークンの有効期間です。
const DefaultTokenExpiration = 24 * time.Hour

// tokenRequest はトークン発行リクエストのボディです。
type tokenRequest struct {
	Client string `json:"client" binding:"required"`
}

// TokenHandler はクライアント名を受け取り、JWT_SECRETで署名した開発用トークンを
// 発行するハンドラーを返します。シークレット未設定時は500を返します。
//
// エンドポイント例:
// POST /token {"client": "dashboard"}
func TokenHandler(expiration time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := os.Getenv(EnvKeyJWTSecret)
		if secret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		var req tokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.Warn("token request validation failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		token, err := NewGenerator(secret, expiration).GenerateToken(req.Client)
		if err != nil {
			slog.Error("token generation failed", "error", err, "client", req.Client)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		slog.Info("token issued", "client", req.Client, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
