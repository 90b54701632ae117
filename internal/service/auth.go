package service

import (
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("неверный логин или пароль")

// AuthService проверяет пароль оператора против bcrypt хэша из конфигурации
// и выдает JWT. Отдельной таблицы пользователей у сервиса нет.
type AuthService struct {
	jwtService   *JWTService
	passwordHash string
}

func NewAuthService(jwtService *JWTService, passwordHash string) *AuthService {
	if passwordHash == "" {
		slog.Warn("ADMIN_PASSWORD_HASH не задан - вход оператора отключен")
	}
	return &AuthService{
		jwtService:   jwtService,
		passwordHash: passwordHash,
	}
}

// Login проверяет пароль и возвращает access токен
func (s *AuthService) Login(operator, password string) (string, error) {
	if s.passwordHash == "" {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwtService.GenerateAccessToken(operator)
}
