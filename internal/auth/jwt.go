package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const userIDKey contextKey = "userID"
const roleKey contextKey = "role"
const dealerIDKey contextKey = "dealerID"

// JWTConfig holds JWT configuration
type JWTConfig struct {
	SecretKey string
	TokenTTL  time.Duration
}

// NewJWTConfig creates a new JWT config
func NewJWTConfig(secretKey string) *JWTConfig {
	if secretKey == "" {
		secretKey = "default-secret-key-change-in-production" // Default for development
	}
	return &JWTConfig{SecretKey: secretKey, TokenTTL: 24 * time.Hour}
}

// IssueToken signs a token carrying the user's id, role and dealer scope.
func (c *JWTConfig) IssueToken(userID, role, dealerID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(c.TokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	if dealerID != "" {
		claims["dealer_id"] = dealerID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.SecretKey))
}

// Middleware creates a JWT authentication middleware
func (c *JWTConfig) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Development mode: allow role and dealer headers without a token
		if role := r.Header.Get("X-Role"); role != "" {
			ctx := context.WithValue(r.Context(), roleKey, role)
			if dealerID := r.Header.Get("X-Dealer-ID"); dealerID != "" {
				ctx = context.WithValue(ctx, dealerIDKey, dealerID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Invalid authorization header", http.StatusUnauthorized)
			return
		}

		tokenString := parts[1]
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			// Validate signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(c.SecretKey), nil
		})

		if err != nil || !token.Valid {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		// Extract claims
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			userID, _ := claims["sub"].(string)
			role, _ := claims["role"].(string)
			dealerID, _ := claims["dealer_id"].(string)

			ctx := r.Context()
			if userID != "" {
				ctx = context.WithValue(ctx, userIDKey, userID)
			}
			if role != "" {
				ctx = context.WithValue(ctx, roleKey, role)
			}
			if dealerID != "" {
				ctx = context.WithValue(ctx, dealerIDKey, dealerID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		http.Error(w, "Invalid token claims", http.StatusUnauthorized)
	})
}

// RequireRole gates a subtree to the named roles
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current := GetRole(r.Context())
			for _, role := range roles {
				if current == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "Forbidden", http.StatusForbidden)
		})
	}
}

// GetUserID extracts user ID from context
func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(userIDKey).(string); ok {
		return userID
	}
	return ""
}

// GetRole extracts the caller's role from context
func GetRole(ctx context.Context) string {
	if role, ok := ctx.Value(roleKey).(string); ok {
		return role
	}
	return ""
}

// GetDealerID extracts dealer ID from context
func GetDealerID(ctx context.Context) string {
	if dealerID, ok := ctx.Value(dealerIDKey).(string); ok {
		return dealerID
	}
	return ""
}
