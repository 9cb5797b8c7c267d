// Package redis adaptador de sesiones y códigos OTP sobre Redis: registros
// volátiles con TTL, sin respaldo en PostgreSQL.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/config"
)

const (
	sessionPrefix = "session:"
	otpPrefix     = "otp:"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación del puerto SessionRepository sobre Redis.
type SessionRepo struct {
	client *redis.Client
}

// NewClient crea el cliente Redis y verifica la conectividad.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewSessionRepository construye el adaptador con un cliente ya conectado.
func NewSessionRepository(client *redis.Client) *SessionRepo {
	return &SessionRepo{client: client}
}

// SetSession registra la sesión vigente de un usuario con TTL.
func (r *SessionRepo) SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionPrefix+sessionID, userID, ttl).Err()
}

// GetSession devuelve el usuario dueño de la sesión. Una sesión ausente o
// expirada devuelve cadena vacía sin error.
func (r *SessionRepo) GetSession(ctx context.Context, sessionID string) (string, error) {
	val, err := r.client.Get(ctx, sessionPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}
	return val, nil
}

// DeleteSession invalida una sesión. Borrar una sesión inexistente es un no-op.
func (r *SessionRepo) DeleteSession(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionPrefix+sessionID).Err()
}

// SetOTP guarda el código de recuperación de un email con TTL.
func (r *SessionRepo) SetOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	return r.client.Set(ctx, otpPrefix+email, code, ttl).Err()
}

// GetOTP devuelve el código vigente de un email, o cadena vacía si no hay.
func (r *SessionRepo) GetOTP(ctx context.Context, email string) (string, error) {
	val, err := r.client.Get(ctx, otpPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get otp: %w", err)
	}
	return val, nil
}

// DeleteOTP consume el código de un email.
func (r *SessionRepo) DeleteOTP(ctx context.Context, email string) error {
	return r.client.Del(ctx, otpPrefix+email).Err()
}
