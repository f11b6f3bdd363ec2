package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("token 无效")

type Verifier interface {
	// Verify 返回 token 里面携带的 uid
	Verify(token string) (int64, error)
}

type JWTVerifier struct {
	key     string
	nowFunc func() time.Time
}

func NewJWTVerifier(key string) *JWTVerifier {
	return &JWTVerifier{
		key:     key,
		nowFunc: time.Now,
	}
}

func (v *JWTVerifier) Verify(token string) (int64, error) {
	t, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			return []byte(v.key), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.nowFunc),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	clm, ok := t.Claims.(*jwt.RegisteredClaims)
	if !ok || !t.Valid {
		return 0, ErrInvalidToken
	}
	uid, err := strconv.ParseInt(clm.Subject, 10, 64)
	if err != nil || uid <= 0 {
		return 0, fmt.Errorf("%w: subject=%q", ErrInvalidToken, clm.Subject)
	}
	return uid, nil
}
