package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/yungbote/agroregistry-backend/internal/http/response"
	"github.com/yungbote/agroregistry-backend/internal/platform/apierr"
	"github.com/yungbote/agroregistry-backend/internal/platform/ctxutil"
	"github.com/yungbote/agroregistry-backend/internal/platform/logger"
)

// AuthMiddleware verifies HS256 bearer tokens whose subject is the numeric
// id of the acting user. Tokens are issued elsewhere with the shared secret.
type AuthMiddleware struct {
	log    *logger.Logger
	secret []byte
}

func NewAuthMiddleware(log *logger.Logger, secret string) *AuthMiddleware {
	return &AuthMiddleware{log: log.With("Middleware", "AuthMiddleware"), secret: []byte(secret)}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			response.RespondError(c, apierr.New(http.StatusUnauthorized, "unauthorized", errors.New("missing or invalid token")))
			return
		}
		userID, err := am.ParseUserID(tokenString)
		if err != nil {
			am.log.Debug("rejected token", "error", err)
			response.RespondError(c, apierr.New(http.StatusUnauthorized, "unauthorized", errors.New("missing or invalid token")))
			return
		}
		ctx := ctxutil.WithRequestData(c.Request.Context(), &ctxutil.RequestData{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// ParseUserID verifies tokenString and returns its subject as a user id.
func (am *AuthMiddleware) ParseUserID(tokenString string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return am.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(claims.Subject), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("token subject is not a user id")
	}
	return uint(id), nil
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
