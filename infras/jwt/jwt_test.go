package jwt_test

import (
	"testing"
	"time"

	"tableside/config"
	"tableside/infras/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func newConfig(secret string, expireMin int) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "tableside"
	cfg.Pass.Secret = secret
	cfg.Pass.ExpireMin = expireMin
	cfg.Pass.BaseURL = "https://tableside.test/pass"

	return cfg
}

func TestIssueAndValidatePass(t *testing.T) {
	svc := jwt.New(newConfig("secret", 10))

	pass, err := svc.IssuePass("res-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, pass.Token)
	assert.Equal(t, "https://tableside.test/pass/"+pass.Token, pass.URL)

	claims, err := svc.ValidatePass(pass.Token)
	assert.NoError(t, err)
	assert.Equal(t, "res-1", claims.ReservationID)
}

func TestIssuePassRequiresReservationID(t *testing.T) {
	svc := jwt.New(newConfig("secret", 10))

	_, err := svc.IssuePass("")
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestValidatePass(t *testing.T) {
	issuer := jwt.New(newConfig("secret", 10))
	pass, err := issuer.IssuePass("res-1")
	assert.NoError(t, err)

	expired := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.PassClaims{
		ReservationID: "res-1",
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "res-1",
			Audience:  gojwt.ClaimStrings{"reservation-pass"},
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	expiredToken, err := expired.SignedString([]byte("secret"))
	assert.NoError(t, err)

	tests := []struct {
		name    string
		secret  string
		token   string
		wantErr error
	}{
		{name: "wrong secret", secret: "other", token: pass.Token, wantErr: jwt.ErrInvalidToken},
		{name: "garbage", secret: "secret", token: "not-a-token", wantErr: jwt.ErrInvalidToken},
		{name: "expired", secret: "secret", token: expiredToken, wantErr: jwt.ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jwt.New(newConfig(tt.secret, 10)).ValidatePass(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
