package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"admin-auth/internal/domain"
)

func TestMemoryOTPRepository(t *testing.T) {
	repo := NewMemoryOTPRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	rec := domain.OneTimeCode{
		Email:     "admin@example.com",
		CodeHash:  "hash-1",
		ExpiresAt: now.Add(5 * time.Minute),
		CreatedAt: now,
	}
	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	got, err := repo.FindByEmailAndHash(ctx, "admin@example.com", "hash-1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got.CodeHash != "hash-1" {
		t.Fatalf("unexpected record: %+v", got)
	}

	// La búsqueda es por coincidencia exacta de (email, digest).
	if _, err := repo.FindByEmailAndHash(ctx, "admin@example.com", "hash-2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong hash, got %v", err)
	}
	if _, err := repo.FindByEmailAndHash(ctx, "other@example.com", "hash-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong email, got %v", err)
	}

	rec2 := rec
	rec2.CodeHash = "hash-2"
	if err := repo.Insert(ctx, rec2); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	other := rec
	other.Email = "other@example.com"
	other.CodeHash = "hash-3"
	if err := repo.Insert(ctx, other); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	removed, err := repo.DeleteAllForEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if n := repo.CountForEmail("admin@example.com"); n != 0 {
		t.Fatalf("expected no records left, got %d", n)
	}
	if n := repo.CountForEmail("other@example.com"); n != 1 {
		t.Fatalf("expected other email untouched, got %d", n)
	}

	removed, err = repo.DeleteAllForEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if removed != 0 {
		t.Fatalf("expected delete on empty set to remove 0, got %d", removed)
	}
}
