package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Roles carried in the token.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Context is the authenticated identity for one request. It is built once by
// the bearer middleware and passed explicitly into every handler and service
// call; nothing reads identity from ambient state.
type Context struct {
	PRN      string
	Name     string
	Year     string
	Category string
	Role     string
}

func (c Context) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// GenerateToken signs a bearer token for the given identity. Token issuance
// flows live outside this service; this helper exists for the middleware's
// counterpart in tests and tooling.
func GenerateToken(secret string, authCtx Context, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"prn":      authCtx.PRN,
		"name":     authCtx.Name,
		"year":     authCtx.Year,
		"category": authCtx.Category,
		"role":     authCtx.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token signature and expiry and rebuilds the
// request Context from its claims.
func ParseToken(secret, tokenString string) (Context, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Context{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Context{}, fmt.Errorf("invalid token payload")
	}

	authCtx := Context{
		PRN:      claimString(claims, "prn"),
		Name:     claimString(claims, "name"),
		Year:     claimString(claims, "year"),
		Category: claimString(claims, "category"),
		Role:     claimString(claims, "role"),
	}
	if authCtx.PRN == "" {
		return Context{}, fmt.Errorf("token is missing the prn claim")
	}
	if authCtx.Role == "" {
		authCtx.Role = RoleStudent
	}
	return authCtx, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
