package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const tokenTypeAccess = "access"

type Service interface {
	// GenerateAccessToken signs an access token. employeeID is empty for the admin.
	GenerateAccessToken(employeeID string, role auth.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

// Claims is the subset of token claims handlers rely on.
type Claims struct {
	EmployeeID string
	Role       auth.Role
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) (Service, error) {
	expDuration, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration: %w", err)
	}
	return &JWTService{
		accessTokenExpirationTime: expDuration,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}, nil
}

func (j *JWTService) GenerateAccessToken(employeeID string, role auth.Role) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpirationTime).Unix()

	claims := map[string]interface{}{
		"employee_id": employeeID,
		"role":        string(role),
		"type":        tokenTypeAccess,
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// FromContext reads the verified access-token claims placed on ctx by
// jwtauth.Verifier.
func FromContext(ctx context.Context) (Claims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	tokenType, _ := claims["type"].(string)
	if tokenType != tokenTypeAccess {
		return Claims{}, auth.ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Claims{}, auth.ErrInvalidToken
	}

	employeeID, _ := claims["employee_id"].(string)
	if auth.Role(role) == auth.RoleEmployee && employeeID == "" {
		return Claims{}, auth.ErrInvalidToken
	}

	return Claims{EmployeeID: employeeID, Role: auth.Role(role)}, nil
}
