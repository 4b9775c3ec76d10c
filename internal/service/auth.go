package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/luvremak/db-coursework/internal/config"
)

const tokenTTL = 7 * 24 * time.Hour

// AuthService exchanges the deployment's shared API secret for a JWT
// carrying the caller's external user id. There are no per-user
// credentials; identity is the telegram id the trusted caller asserts.
type AuthService struct {
	secretHash []byte
	jwtSecret  []byte
}

func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		secretHash: []byte(cfg.APISecretHash),
		jwtSecret:  []byte(cfg.JWTSecret),
	}
}

func (s *AuthService) IssueToken(userID int64, secret string) (string, error) {
	if bcrypt.CompareHashAndPassword(s.secretHash, []byte(secret)) != nil {
		return "", fmt.Errorf("invalid api secret")
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": userID,
		"exp": time.Now().Add(tokenTTL).Unix(),
	}).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
