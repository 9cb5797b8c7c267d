// Package auth casos de uso de autenticación: registro, login con sesión en
// Redis, logout y recuperación de contraseña vía OTP.
package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/jwt"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

const otpTTL = 10 * time.Minute

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtCfg      JWTConfig
	log         *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessionRepo: sessionRepo, jwtCfg: jwtCfg, log: log}
}

// Register crea un usuario: hashea la contraseña con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, registra la sesión vigente y retorna
// token + usuario. El token embebe el ID de sesión para que el logout pueda
// invalidarlo antes de su expiración natural.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	sessionID := uuid.New().String()
	ttl := time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute
	if err := uc.sessionRepo.SetSession(ctx, sessionID, user.ID, ttl); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, sessionID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Logout invalida la sesión vigente. El token queda inutilizable aunque su
// expiración JWT no haya llegado.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	return uc.sessionRepo.DeleteSession(ctx, sessionID)
}

// Me devuelve el usuario autenticado si su sesión sigue vigente.
func (uc *AuthUseCase) Me(ctx context.Context, userID, sessionID string) (*dto.UserResponse, error) {
	sessionUser, err := uc.sessionRepo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sessionUser != userID {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// RequestOTP genera un código de 6 dígitos y lo guarda con TTL. El envío de
// correo se simula con un log; siempre responde igual exista o no la cuenta,
// para no filtrar qué emails están registrados.
func (uc *AuthUseCase) RequestOTP(ctx context.Context, in dto.OTPRequest) error {
	if in.Email == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	code, err := newOTPCode()
	if err != nil {
		return err
	}
	if err := uc.sessionRepo.SetOTP(ctx, in.Email, code, otpTTL); err != nil {
		return err
	}
	uc.log.Info().Str("email", in.Email).Msg("código OTP generado (envío de correo simulado)")
	return nil
}

// ResetPassword verifica el OTP y actualiza la contraseña. El código se
// consume al primer uso exitoso.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	if in.Email == "" || in.OTP == "" || in.NewPassword == "" {
		return domain.ErrInvalidInput
	}
	stored, err := uc.sessionRepo.GetOTP(ctx, in.Email)
	if err != nil || stored == "" || stored != in.OTP {
		return domain.ErrInvalidOTP
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.userRepo.UpdatePassword(user.ID, string(hash)); err != nil {
		return err
	}
	return uc.sessionRepo.DeleteOTP(ctx, in.Email)
}

func newOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
