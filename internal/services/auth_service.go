package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService interface {
	Login(username, password string) (string, error)
}

type authService struct {
	jwtSecret     []byte
	adminUser     string
	adminPassword string
	tokenTTL      time.Duration
}

func NewAuthService(jwtSecret, adminUser, adminPassword string, tokenTTL time.Duration) AuthService {
	return &authService{
		jwtSecret:     []byte(jwtSecret),
		adminUser:     adminUser,
		adminPassword: adminPassword,
		tokenTTL:      tokenTTL,
	}
}

// Login checks the single operator account and issues a signed token.
func (s *authService) Login(username, password string) (string, error) {
	userHash := sha256.Sum256([]byte(username))
	wantUserHash := sha256.Sum256([]byte(s.adminUser))
	passHash := sha256.Sum256([]byte(password))
	wantPassHash := sha256.Sum256([]byte(s.adminPassword))

	userOK := subtle.ConstantTimeCompare(userHash[:], wantUserHash[:]) == 1
	passOK := subtle.ConstantTimeCompare(passHash[:], wantPassHash[:]) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    "rentmart",
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
