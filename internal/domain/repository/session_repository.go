package repository

import (
	"context"
	"time"
)

// SessionRepository define el puerto para el registro de sesión vigente y los
// códigos OTP de recuperación (almacén volátil con TTL).
type SessionRepository interface {
	SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error

	SetOTP(ctx context.Context, email, code string, ttl time.Duration) error
	GetOTP(ctx context.Context, email string) (string, error)
	DeleteOTP(ctx context.Context, email string) error
}
