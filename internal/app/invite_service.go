package app

import (
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
	"github.com/google/uuid"
)

// InviteService signs and verifies the tokens private tables hand out. A
// creator gets a token bound to their match id; anyone presenting it before
// expiry may join that match and no other.
type InviteService struct {
	secret string
	issuer string
	ttl    time.Duration
}

func NewInviteService(secret, issuer string, ttl time.Duration) *InviteService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &InviteService{secret: secret, issuer: issuer, ttl: ttl}
}

func (s *InviteService) GenerateToken(matchID, creatorUserID string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("invite service is nil")
	}
	if s.secret == "" {
		return "", fmt.Errorf("invite secret is not configured")
	}
	if matchID == "" {
		return "", fmt.Errorf("match id is required")
	}

	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": creatorUserID,
		"mid": matchID,
		"exp": time.Now().Add(s.ttl).Unix(),
		"jti": uuid.Must(uuid.NewRandom()).String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// VerifyToken checks the signature and expiry and returns the match id the
// token was issued for.
func (s *InviteService) VerifyToken(tokenString string) (string, error) {
	if s == nil || s.secret == "" {
		return "", fmt.Errorf("invite secret is not configured")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid invite token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid invite token")
	}
	if s.issuer != "" {
		if iss, _ := claims["iss"].(string); iss != s.issuer {
			return "", fmt.Errorf("invite token issuer mismatch")
		}
	}
	matchID, _ := claims["mid"].(string)
	if matchID == "" {
		return "", fmt.Errorf("invite token has no match id")
	}
	return matchID, nil
}
