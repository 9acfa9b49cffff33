package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService проверяет access токены внешнего сервиса авторизации.
// Пользователей и паролей здесь нет, только подпись и срок действия
type AuthService interface {
	ValidateToken(tokenString string) (*Claims, error)
	// GenerateToken выпускает токен тем же секретом, нужен для cli и тестов
	GenerateToken(userID uuid.UUID, ttl time.Duration) (string, error)
}

type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

type authService struct {
	secret []byte
	now    func() time.Time
}

func NewAuthService(secret string) AuthService {
	return &authService{secret: []byte(secret), now: time.Now}
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *authService) GenerateToken(userID uuid.UUID, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
