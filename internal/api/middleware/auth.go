// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"marketplace-bff/internal/graphql"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid" // For parsing UUID from claim
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userID" // Key to store user ID in context
)

var (
	errMissingHeader = errors.New("Authorization header required")
	errHeaderFormat  = errors.New("Invalid Authorization header format")
	errInvalidToken  = errors.New("Invalid token")
	errExpiredToken  = errors.New("Token has expired")
	errInvalidUser   = errors.New("Invalid user identifier in token")
)

// JWTAuthMiddleware creates a Gin middleware for JWT authentication.
// The token is issued by the marketplace API and signed with the shared secret; once verified it is
// forwarded unchanged on every GraphQL call made for this request.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, token, err := authenticate(c, jwtSecret)
		if err != nil {
			log.Printf("Auth middleware: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": publicMessage(err)})
			return
		}
		setUser(c, userID, token)
		c.Next()
	}
}

// OptionalJWTAuthMiddleware authenticates when a bearer token is present and lets anonymous requests through.
// A token that is present but invalid is still rejected.
func OptionalJWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(authorizationHeader) == "" {
			c.Next()
			return
		}
		userID, token, err := authenticate(c, jwtSecret)
		if err != nil {
			log.Printf("Auth middleware (optional): %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": publicMessage(err)})
			return
		}
		setUser(c, userID, token)
		c.Next()
	}
}

func authenticate(c *gin.Context, jwtSecret string) (uuid.UUID, string, error) {
	authHeader := c.GetHeader(authorizationHeader)
	if authHeader == "" {
		return uuid.Nil, "", errMissingHeader
	}

	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
		return uuid.Nil, "", errHeaderFormat
	}
	tokenString := headerParts[1]

	// Parse and validate the token
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, "", fmt.Errorf("%w: %v", errExpiredToken, err)
		}
		return uuid.Nil, "", fmt.Errorf("%w: %v", errInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return uuid.Nil, "", errInvalidToken
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: subject %q: %v", errInvalidUser, claims.Subject, err)
	}
	return userID, tokenString, nil
}

func setUser(c *gin.Context, userID uuid.UUID, token string) {
	// Store user ID in context for downstream handlers
	c.Set(userCtx, userID)
	c.Request = c.Request.WithContext(graphql.WithToken(c.Request.Context(), token))
}

func publicMessage(err error) string {
	for _, known := range []error{errMissingHeader, errHeaderFormat, errExpiredToken, errInvalidUser} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return errInvalidToken.Error()
}

// GetUserIDFromContext returns the authenticated user set by the auth middleware.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return uuid.Nil, errors.New("user ID not found in context")
	}

	userID, ok := userIDAny.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID in context is of invalid type")
	}

	return userID, nil
}
