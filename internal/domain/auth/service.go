package auth

import "context"

type AuthService interface {
	// Login checks an employee credential against the directory.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// AdminLogin checks the single organization admin credential.
	AdminLogin(ctx context.Context, req AdminLoginRequest) (TokenResponse, error)
}
