package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches no rows", func(t *testing.T) {
		if !isNotFound(sql.ErrNoRows) {
			t.Fatalf("expected true for sql.ErrNoRows")
		}
	})

	t.Run("matches wrapped no rows", func(t *testing.T) {
		if !isNotFound(fmt.Errorf("get manager: %w", sql.ErrNoRows)) {
			t.Fatalf("expected true for wrapped sql.ErrNoRows")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(errors.New("pq: connection refused")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestIsUndefinedColumn(t *testing.T) {
	t.Run("matches by 42703 code", func(t *testing.T) {
		err := &pq.Error{Code: "42703", Message: "column \"strength_attack_home\" does not exist"}
		if !isUndefinedColumn(err) {
			t.Fatalf("expected true for undefined column error")
		}
	})

	t.Run("ignores other pq codes", func(t *testing.T) {
		err := &pq.Error{Code: "42P01", Message: "relation \"teams\" does not exist"}
		if isUndefinedColumn(err) {
			t.Fatalf("expected false for undefined table error")
		}
	})

	t.Run("ignores non-pq error", func(t *testing.T) {
		if isUndefinedColumn(errors.New("column does not exist")) {
			t.Fatalf("expected false for non-pq error")
		}
	})
}

func TestNullIntToPtr(t *testing.T) {
	t.Run("returns value pointer", func(t *testing.T) {
		got := nullIntToPtr(sql.NullInt64{Int64: 4, Valid: true})
		if got == nil || *got != 4 {
			t.Fatalf("expected pointer to 4, got %v", got)
		}
	})

	t.Run("returns nil for null", func(t *testing.T) {
		if got := nullIntToPtr(sql.NullInt64{}); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})
}
