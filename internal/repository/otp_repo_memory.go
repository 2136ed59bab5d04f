package repository

import (
	"context"
	"sync"

	"admin-auth/internal/domain"
)

// MemoryOTPRepository es un backend en memoria para tests y entornos sin base
// de datos configurada. Seguro para uso concurrente.
type MemoryOTPRepository struct {
	mu    sync.Mutex
	codes []domain.OneTimeCode
}

func NewMemoryOTPRepository() *MemoryOTPRepository {
	return &MemoryOTPRepository{}
}

func (r *MemoryOTPRepository) Insert(_ context.Context, code domain.OneTimeCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes = append(r.codes, code)
	return nil
}

func (r *MemoryOTPRepository) FindByEmailAndHash(_ context.Context, email, codeHash string) (domain.OneTimeCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.codes) - 1; i >= 0; i-- {
		if r.codes[i].Email == email && r.codes[i].CodeHash == codeHash {
			return r.codes[i], nil
		}
	}
	return domain.OneTimeCode{}, ErrNotFound
}

func (r *MemoryOTPRepository) DeleteAllForEmail(_ context.Context, email string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.codes[:0]
	var removed int64
	for _, c := range r.codes {
		if c.Email == email {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	r.codes = kept
	return removed, nil
}

// CountForEmail devuelve cuántos registros pendientes tiene un email.
func (r *MemoryOTPRepository) CountForEmail(email string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.codes {
		if c.Email == email {
			n++
		}
	}
	return n
}
