package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ambjay/unveiled-prod/internal/platform/logger"
	"github.com/ambjay/unveiled-prod/internal/requestdata"
)

// SessionMiddleware verifies the identity provider's session token. A valid
// session carries the provider-issued user id in "sub"; no local auth state
// exists. Every gated request fails here, before any other work.
type SessionMiddleware struct {
	log    *logger.Logger
	secret []byte
}

func NewSessionMiddleware(log *logger.Logger, secret string) *SessionMiddleware {
	return &SessionMiddleware{
		log:    log.With("middleware", "SessionMiddleware"),
		secret: []byte(secret),
	}
}

func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractSessionToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "missing or invalid session", "code": "unauthorized"},
			})
			return
		}
		userID, sessionID, err := m.verify(tokenString)
		if err != nil {
			m.log.Debug("session verification failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "missing or invalid session", "code": "unauthorized"},
			})
			return
		}
		ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{
			UserID:    userID,
			SessionID: sessionID,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (m *SessionMiddleware) verify(tokenString string) (userID, sessionID string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("unexpected claims type")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", "", errors.New("session token has no subject")
	}
	sid, _ := claims["sid"].(string)
	return sub, sid, nil
}

func extractSessionToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	// The provider's browser SDK delivers the session as a cookie.
	if cookie, err := c.Cookie("__session"); err == nil && cookie != "" {
		return cookie
	}
	return ""
}
