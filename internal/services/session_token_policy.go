package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/zenithfest/zenith/internal/models"
)

// DefaultSessionTokenTTL is the fixed validity window of a session token.
const DefaultSessionTokenTTL = 7 * 24 * time.Hour

var (
	ErrSessionTokenMissing = errors.New("missing session token")
	ErrSessionTokenInvalid = errors.New("invalid session token")
	ErrSessionTokenExpired = errors.New("expired session token")
)

type SessionClaims struct {
	UserID              uint `json:"uid"`
	OnboardingCompleted bool `json:"onboarding_completed"`
	SessionVersion      int  `json:"session_version"`
	jwt.RegisteredClaims
}

func BuildSessionToken(secretKey []byte, user *models.User, ttl time.Duration, now time.Time) (string, error) {
	if ttl <= 0 {
		ttl = DefaultSessionTokenTTL
	}
	if now.IsZero() {
		now = time.Now()
	}

	claims := SessionClaims{
		UserID:              user.ID,
		OnboardingCompleted: user.OnboardingCompleted,
		SessionVersion:      user.SessionVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func ParseSessionToken(secretKey []byte, rawToken string, now time.Time) (*SessionClaims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, ErrSessionTokenMissing
	}
	if now.IsZero() {
		now = time.Now()
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrSessionTokenInvalid
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) {
		return nil, ErrSessionTokenExpired
	}
	if claims.UserID == 0 {
		return nil, ErrSessionTokenInvalid
	}
	return claims, nil
}
