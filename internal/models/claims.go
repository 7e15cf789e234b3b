package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the JWT payload carried on authenticated requests.
// UID is the verified caller identity the middleware resolves; handlers
// pass it into services explicitly rather than letting services reach
// into request state.
type UserClaims struct {
	jwt.RegisteredClaims
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
