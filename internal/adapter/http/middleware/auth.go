package middleware

import (
	"crypto/subtle"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"happydeals/pkg"
)

const (
	// ContextUserID is the gin context key holding the authenticated user id.
	ContextUserID = "uid"

	InternalKeyHeader = "X-Internal-Api-Key"
)

var errMissingBearer = errors.New("missing bearer token")

// RequireAuth validates an HS256 bearer token and stores its subject as the caller id.
func RequireAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		uid, err := subjectFromHeader(c.GetHeader("Authorization"), key)
		if err != nil {
			log.Printf("[auth][middleware] rejected path=%s err=%v", c.FullPath(), err)
			abort(c, pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized))
			return
		}
		c.Set(ContextUserID, uid)
		c.Next()
	}
}

// RequireInternalKey guards service-to-service endpoints.
func RequireInternalKey(apiKey string) gin.HandlerFunc {
	expected := []byte(apiKey)
	return func(c *gin.Context) {
		got := []byte(c.GetHeader(InternalKeyHeader))
		if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
			log.Printf("[auth][middleware] internal key rejected path=%s", c.FullPath())
			abort(c, pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Invalid internal api key", http.StatusForbidden))
			return
		}
		c.Next()
	}
}

// UserID returns the caller id set by RequireAuth, or "" when absent.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func subjectFromHeader(header string, key []byte) (string, error) {
	raw, ok := strings.CutPrefix(strings.TrimSpace(header), "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return "", errMissingBearer
	}

	token, err := jwt.Parse(strings.TrimSpace(raw), func(*jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(sub) == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return sub, nil
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
