package models

import (
	"github.com/golang-jwt/jwt"
)

// Claims is the JWT payload issued by the auth collaborator. The engine
// only reads the user id out of it.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.StandardClaims
}
