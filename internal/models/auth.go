package models

import "github.com/golang-jwt/jwt/v5"

// LoginRequest holds credentials for authenticating a student.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the authenticated student and an access token.
type LoginResponse struct {
	Success     bool    `json:"success"`
	User        Student `json:"user"`
	AccessToken string  `json:"access_token"`
	ExpiresIn   int64   `json:"expires_in"`
}

// LogoutResponse acknowledges a stateless logout.
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JWTClaims are carried by portal access tokens. The registered subject is the
// student's name_contactid.
type JWTClaims struct {
	StudentID string `json:"sid"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}
