package service

import (
	"fmt"
	"net/http"
	"time"

	"solgate/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "solgate"

// PurposeWalletExport is the token purpose required by the export tool.
const PurposeWalletExport = "wallet-export"

// JWTOperatorTokenService implements ports.OperatorTokenService using HS256
// JWTs. Privileged operations (the wallet export) refuse to run without a
// valid, purpose-scoped, short-lived token.
type JWTOperatorTokenService struct {
	secret []byte
}

// NewJWTOperatorTokenService creates a new operator token service.
func NewJWTOperatorTokenService(secret string) *JWTOperatorTokenService {
	return &JWTOperatorTokenService{secret: []byte(secret)}
}

// Mint creates a signed token authorizing the given purpose for ttl.
func (s *JWTOperatorTokenService) Mint(purpose string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := jwt.MapClaims{
		"purpose": purpose,
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
		"iss":     tokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses the token and checks that it authorizes the purpose.
func (s *JWTOperatorTokenService) Validate(tokenString string, purpose string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return apperror.Wrap(apperror.CodeInvalidToken, "Invalid or expired operator token", http.StatusUnauthorized, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return apperror.ErrInvalidToken()
	}

	got, _ := claims["purpose"].(string)
	if got != purpose {
		return apperror.ErrInvalidToken()
	}
	return nil
}
