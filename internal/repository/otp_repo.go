package repository

import (
	"context"
	"errors"

	"admin-auth/internal/domain"
)

// ErrNotFound indica que no existe registro para la búsqueda dada.
var ErrNotFound = errors.New("otp record not found")

// OTPRepository define el contrato de persistencia para códigos de un solo uso.
//
// FindByEmailAndHash busca por coincidencia exacta de (email, digest); los
// backends devuelven ErrNotFound cuando no hay registro. DeleteAllForEmail
// elimina todos los registros del email y devuelve cuántos borró.
type OTPRepository interface {
	Insert(ctx context.Context, code domain.OneTimeCode) error
	FindByEmailAndHash(ctx context.Context, email, codeHash string) (domain.OneTimeCode, error)
	DeleteAllForEmail(ctx context.Context, email string) (int64, error)
}
