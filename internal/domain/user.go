package domain

// RoleAdmin es el único rol que emite este servicio.
const RoleAdmin = "admin"

// User describe la identidad autenticada que acompaña a un session token.
type User struct {
	Email string `json:"identity"`
	Role  string `json:"role"`
}
