package jwt

import (
	"errors"
	"fmt"
	"moodbite/domain"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	issuer          = "MOODBITE"
	DefaultTokenTTL = 24 * time.Hour
)

type (
	// JWTService issues and checks the bearer tokens that guard the
	// mutating API routes.
	JWTService interface {
		GenerateToken(subject string, ttl time.Duration) (string, error)
		ValidateToken(token string) (*jwt.Token, error)
		GetSubjectByToken(token string) (string, error)
		Enabled() bool
	}

	jwtClaim struct {
		Scope string `json:"scope"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		now       func() time.Time
	}
)

// NewJWTService returns a service signing with secret. An empty secret
// disables token checks.
func NewJWTService(secret string) JWTService {
	return &jwtService{
		secretKey: secret,
		issuer:    issuer,
		now:       time.Now,
	}
}

func (j *jwtService) Enabled() bool {
	return j.secretKey != ""
}

func (j *jwtService) GenerateToken(subject string, ttl time.Duration) (string, error) {
	if !j.Enabled() {
		return "", domain.ErrTokenDisabled
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := j.now()
	claims := jwtClaim{
		Scope: "write",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtClaim{}, j.parseToken)
}

func (j *jwtService) GetSubjectByToken(token string) (string, error) {
	if token == "" {
		return "", domain.ErrTokenNotFound
	}
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtClaim)
	if claims.Issuer != j.issuer || claims.Scope != "write" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Subject, nil
}
