package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"devlink_backend/internal/auth"
	"devlink_backend/internal/logger"
)

const (
	ctxUserIDKey    = "userID"
	ctxUserEmailKey = "userEmail"
	ctxUserTypeKey  = "userType"
)

// AuthMiddleware rejects API requests without a valid bearer token.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromRequest(c, tokens)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the identity when a valid token is
// present and continues either way. Dashboard routes use it so the
// guard, not the transport layer, decides where an anonymous visitor
// goes.
func OptionalAuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := claimsFromRequest(c, tokens); ok {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

func claimsFromRequest(c *gin.Context, tokens *auth.TokenManager) (*auth.Claims, bool) {
	tokenStr := ""

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
	} else if cookie, err := c.Cookie("session"); err == nil {
		// Browser navigation to dashboard routes carries the token as a
		// cookie rather than a header.
		tokenStr = cookie
	}

	if tokenStr == "" {
		return nil, false
	}

	claims, err := tokens.Parse(tokenStr)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setIdentity(c *gin.Context, claims *auth.Claims) {
	c.Set(ctxUserIDKey, claims.UserID)
	c.Set(ctxUserEmailKey, claims.Email)
	c.Set(ctxUserTypeKey, claims.UserType)

	ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
	c.Request = c.Request.WithContext(ctx)
}

// GetUserID extracts the authenticated user id from the gin context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetUserEmail extracts the authenticated email from the gin context.
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get(ctxUserEmailKey)
	if !exists {
		return ""
	}

	e, ok := email.(string)
	if !ok {
		return ""
	}
	return e
}
