package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"time"

	"tableside/config"
	"tableside/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

const (
	passAudience         = "reservation-pass"
	defaultPassExpireMin = 60 * 24 * 30
)

// PassClaims is the payload a guest's reservation QR code carries.
type PassClaims struct {
	ReservationID string `json:"reservation_id"`
	jwt.RegisteredClaims
}

type Pass struct {
	Token     string    `json:"token"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type JWT interface {
	IssuePass(reservationID string) (*Pass, error)
	ValidatePass(token string) (*PassClaims, error)
}

type Service struct {
	config *config.Config
}

func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

func (s *Service) expireMin() int {
	if s.config.Pass.ExpireMin > 0 {
		return s.config.Pass.ExpireMin
	}

	return defaultPassExpireMin
}

// IssuePass signs a pass for reservationID with HS256.
func (s *Service) IssuePass(reservationID string) (*Pass, error) {
	if reservationID == "" {
		return nil, ErrInvalidClaim
	}

	issuedAt := timezone.Now()
	expiresAt := issuedAt.Add(time.Duration(s.expireMin()) * time.Minute)

	claims := PassClaims{
		ReservationID: reservationID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.config.App.Name,
			Subject:   reservationID,
			Audience:  jwt.ClaimStrings{passAudience},
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.config.Pass.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Pass{
		Token:     signedToken,
		URL:       passURL(s.config.Pass.BaseURL, signedToken),
		ExpiresAt: expiresAt,
	}, nil
}

// ValidatePass parses token and returns its claims.
func (s *Service) ValidatePass(tokenString string) (*PassClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &PassClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.config.Pass.Secret), nil
	}, jwt.WithAudience(passAudience))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*PassClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.ReservationID == "" || claims.Subject != claims.ReservationID {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

func passURL(baseURL, token string) string {
	if baseURL == "" {
		return ""
	}

	return fmt.Sprintf("%s/%s", baseURL, token)
}
