package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/application/ports"
	"github.com/jhoicas/dulceria-lilis/internal/application/usecase"
	"github.com/jhoicas/dulceria-lilis/internal/application/validation"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
	"github.com/jhoicas/dulceria-lilis/pkg/jwt"
	"github.com/jhoicas/dulceria-lilis/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// ResetConfig configuración del flujo de recuperación de contraseña.
type ResetConfig struct {
	BaseURL string // se concatena con /password/reset/<token>
	TTL     time.Duration
}

// AuthUseCase login (sesión y JWT) y recuperación de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   ports.TokenStore
	mailer   ports.Mailer
	jwtCfg   JWTConfig
	resetCfg ResetConfig
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	tokens ports.TokenStore,
	mailer ports.Mailer,
	jwtCfg JWTConfig,
	resetCfg ResetConfig,
	log *logger.Logger,
) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if resetCfg.TTL <= 0 {
		resetCfg.TTL = time.Hour
	}
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
		jwtCfg:   jwtCfg,
		resetCfg: resetCfg,
		log:      log,
		now:      time.Now,
	}
}

// Authenticate verifica credenciales; identifier puede ser username o email.
// Solo usuarios ACTIVO pueden entrar. Registra el último acceso.
func (uc *AuthUseCase) Authenticate(ctx context.Context, identifier, password string) (*entity.User, error) {
	identifier = strings.TrimSpace(identifier)
	var (
		user *entity.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = uc.userRepo.GetByEmail(ctx, identifier)
	} else {
		user, err = uc.userRepo.GetByUsername(ctx, identifier)
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive() {
		return nil, domain.ErrForbidden
	}
	now := uc.now()
	if err := uc.userRepo.TouchLastAccess(ctx, user.ID, now); err != nil {
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("no se pudo registrar último acceso")
	} else {
		user.LastAccess = &now
	}
	return user, nil
}

// Login verifica credenciales y genera un JWT para la API.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.Authenticate(ctx, in.Identifier, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *usecase.ToUserResponse(user),
	}, nil
}

// RequestPasswordReset genera un token y envía el enlace por correo.
// Un email desconocido no produce error: la respuesta al usuario es la misma.
func (uc *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return err
	}
	if user == nil || !user.IsActive() {
		uc.log.Info().Str("email", email).Msg("recuperación solicitada para email sin usuario activo")
		return nil
	}
	token := uuid.New().String()
	if err := uc.tokens.Save(ctx, token, user.ID, uc.resetCfg.TTL); err != nil {
		return err
	}
	link := strings.TrimRight(uc.resetCfg.BaseURL, "/") + "/password/reset/" + token
	if err := uc.mailer.SendPasswordReset(ctx, user.Email, user.FullName(), link); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("enlace de recuperación enviado")
	return nil
}

// ResetPassword consume el token y fija la nueva contraseña.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.PasswordResetConfirm) error {
	if errs := validation.Struct(in); !errs.Empty() {
		return errs
	}
	userID, err := uc.tokens.Consume(ctx, in.Token)
	if err != nil {
		return err
	}
	if userID == "" {
		return domain.ErrInvalidToken
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrInvalidToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.userRepo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("contraseña restablecida")
	return nil
}

