package token

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator 给登录成功的用户签发 access token
type Generator interface {
	Generate(uid int64) (string, error)
}

// JWTGenerator 使用 HS256 签名，subject 是 uid
type JWTGenerator struct {
	key     string
	issuer  string
	expire  time.Duration
	nowFunc func() time.Time
}

func NewJWTGenerator(issuer, key string, expire time.Duration) *JWTGenerator {
	return &JWTGenerator{
		issuer:  issuer,
		key:     key,
		expire:  expire,
		nowFunc: time.Now,
	}
}

func (g *JWTGenerator) Generate(uid int64) (string, error) {
	now := g.nowFunc()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    g.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.expire)),
		Subject:   strconv.FormatInt(uid, 10),
	})
	return tk.SignedString([]byte(g.key))
}
