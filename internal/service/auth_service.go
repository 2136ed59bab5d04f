package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"admin-auth/internal/domain"
	"admin-auth/internal/email"
	"admin-auth/internal/repository"
)

var (
	ErrInvalidEmail     = errors.New("invalid email")
	ErrNotAllowed       = errors.New("email not authorized")
	ErrRateLimited      = errors.New("rate limited")
	ErrCodeInvalid      = errors.New("invalid code")
	ErrCodeExpired      = errors.New("code expired")
	ErrEmailSendFailure = errors.New("email send failed")
)

const defaultCodeTTL = 5 * time.Minute

// AuthService coordina el flujo de login por código de un solo uso: emisión
// con supersesión del código anterior, y verificación de un solo consumo.
type AuthService struct {
	logger       *zap.Logger
	codes        repository.OTPRepository
	sender       email.Sender
	allow        *AllowList
	requestLimit RateLimiter
	verifyLimit  RateLimiter
	codeTTL      time.Duration
	now          func() time.Time
}

func NewAuthService(
	logger *zap.Logger,
	codes repository.OTPRepository,
	sender email.Sender,
	allow *AllowList,
	requestLimit RateLimiter,
	verifyLimit RateLimiter,
	codeTTL time.Duration,
) *AuthService {
	if codeTTL <= 0 {
		codeTTL = defaultCodeTTL
	}
	return &AuthService{
		logger:       logger,
		codes:        codes,
		sender:       sender,
		allow:        allow,
		requestLimit: requestLimit,
		verifyLimit:  verifyLimit,
		codeTTL:      codeTTL,
		now:          time.Now,
	}
}

// RequestCode emite un código nuevo para el email, invalidando cualquier
// código anterior, y lo entrega por correo. El código en claro solo viaja en
// el correo; el store recibe únicamente su digest.
func (s *AuthService) RequestCode(ctx context.Context, emailAddr string) error {
	if s.codes == nil {
		return errors.New("auth service not configured")
	}

	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" {
		return ErrInvalidEmail
	}
	if !s.allow.Contains(emailAddr) {
		return ErrNotAllowed
	}
	if s.requestLimit != nil && !s.requestLimit.Allow(emailAddr) {
		return ErrRateLimited
	}

	code, err := generateCode()
	if err != nil {
		return err
	}
	now := s.now().UTC()
	record := domain.OneTimeCode{
		Email:     emailAddr,
		CodeHash:  hashCode(code),
		ExpiresAt: now.Add(s.codeTTL),
		CreatedAt: now,
	}

	// Supersesión: como máximo un código pendiente por email.
	if _, err := s.codes.DeleteAllForEmail(ctx, emailAddr); err != nil {
		return err
	}
	if err := s.codes.Insert(ctx, record); err != nil {
		return err
	}

	if s.sender == nil {
		return ErrEmailSendFailure
	}
	if err := s.sendCode(ctx, emailAddr, code, record.ExpiresAt); err != nil {
		if s.logger != nil {
			s.logger.Warn("send otp failed", zap.Error(err), zap.String("email", emailAddr))
		}
		return ErrEmailSendFailure
	}
	return nil
}

// VerifyCode valida un código contra el registro almacenado. Un código
// correcto se consume (no se puede reutilizar); uno expirado limpia los
// registros del email; uno incorrecto deja el registro pendiente intacto.
func (s *AuthService) VerifyCode(ctx context.Context, emailAddr, code string) (domain.User, error) {
	if s.codes == nil {
		return domain.User{}, errors.New("auth service not configured")
	}

	emailAddr = normalizeEmail(emailAddr)
	code = strings.TrimSpace(code)
	if emailAddr == "" {
		return domain.User{}, ErrInvalidEmail
	}
	if !isValidCodeFormat(code) {
		return domain.User{}, ErrCodeInvalid
	}
	if s.verifyLimit != nil && !s.verifyLimit.Allow(emailAddr) {
		return domain.User{}, ErrRateLimited
	}

	record, err := s.codes.FindByEmailAndHash(ctx, emailAddr, hashCode(code))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.User{}, ErrCodeInvalid
		}
		return domain.User{}, err
	}

	if record.Expired(s.now().UTC()) {
		if _, err := s.codes.DeleteAllForEmail(ctx, emailAddr); err != nil {
			return domain.User{}, err
		}
		return domain.User{}, ErrCodeExpired
	}

	if _, err := s.codes.DeleteAllForEmail(ctx, emailAddr); err != nil {
		return domain.User{}, err
	}
	return domain.User{Email: emailAddr, Role: domain.RoleAdmin}, nil
}

// sendCode entrega el código con reintentos acotados; un correo perdido le
// cuesta al usuario una vuelta completa.
func (s *AuthService) sendCode(ctx context.Context, toEmail, code string, expiresAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	b := retry.NewFibonacci(250 * time.Millisecond)
	b = retry.WithCappedDuration(2*time.Second, b)
	b = retry.WithMaxRetries(2, b)
	return retry.Do(ctx, b, func(ctx context.Context) error {
		if err := s.sender.SendOTP(ctx, toEmail, code, expiresAt); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}
