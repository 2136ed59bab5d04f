package domain

import "time"

// OneTimeCode representa un desafío de autenticación pendiente para un email.
// Nunca guarda el código en claro, solo su digest.
type OneTimeCode struct {
	Email     string    `json:"email" bson:"email"`
	CodeHash  string    `json:"-" bson:"code_hash"`
	ExpiresAt time.Time `json:"expires_at" bson:"expires_at"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Expired indica si el código dejó de ser válido en el instante dado.
func (c OneTimeCode) Expired(at time.Time) bool {
	return at.After(c.ExpiresAt)
}
