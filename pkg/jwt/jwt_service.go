package jwt

import (
	"errors"
	"fmt"
	"time"

	"galeana-pepper/domain"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateToken(subject string, role string, ttl time.Duration) (string, error)
		ValidateToken(token string) (*jwt.Token, error)
		GetSubjectByToken(token string) (string, string, error)
	}

	jwtOperatorClaim struct {
		Role string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		now       func() time.Time
	}
)

// NewJWTService verifies and mints HS256 operator tokens with a shared secret.
func NewJWTService(secretKey string, issuer string) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    issuer,
		now:       time.Now,
	}
}

func (j *jwtService) GenerateToken(subject string, role string, ttl time.Duration) (string, error) {
	if j.secretKey == "" {
		return "", errors.New("jwt secret is not configured")
	}
	now := j.now()
	claims := jwtOperatorClaim{
		role,
		jwt.RegisteredClaims{
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
	return jwt.ParseWithClaims(token, &jwtOperatorClaim{}, j.parseToken)
}

func (j *jwtService) GetSubjectByToken(token string) (string, string, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtOperatorClaim)
	if claims.Subject == "" {
		return "", "", domain.ErrTokenInvalid
	}
	if j.issuer != "" && !claims.VerifyIssuer(j.issuer, true) {
		return "", "", domain.ErrTokenInvalid
	}
	return claims.Subject, claims.Role, nil
}
