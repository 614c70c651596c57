// Package jwt реализует выпуск и проверку JWT токенов сессии.
//
// Maker определяет интерфейс для создания и разбора токенов с ролью
// и email пользователя. MakerImpl — конкретная реализация с секретным
// ключом и сроком жизни токена.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для выпуска и разбора токенов сессии.
type Maker interface {
	// GenerateToken выпускает подписанный токен с ролью и email пользователя.
	GenerateToken(role, email string) (string, error)
	// ParseToken проверяет подпись и срок действия токена,
	// возвращает *CustomClaims при успехе.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
