package types

import "github.com/golang-jwt/jwt/v4"

type Claims struct {
	Username string `json:"username,omitempty"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
