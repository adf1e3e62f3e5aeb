package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken - единая ошибка на любой сбой проверки.
// Причину (подпись, срок, формат) наружу не раскрываем.
var ErrInvalidToken = errors.New("invalid token")

// Claims повторяют форму полезной нагрузки {user:{id}}
type Claims struct {
	User struct {
		ID string `json:"id"`
	} `json:"user"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl: ttl,
	}
}

// Issue выпускает подписанный токен для пользователя
func (s *Service) Issue(userID string) (string, error) {
	claims := Claims{}
	claims.User.ID = userID
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(s.ttl))
	claims.IssuedAt = jwt.NewNumericDate(time.Now())

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify проверяет подпись и срок, возвращает id пользователя
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !tok.Valid || claims.User.ID == "" {
		return "", ErrInvalidToken
	}
	return claims.User.ID, nil
}
