package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected true for sql.ErrNoRows")
	}
	if isNotFound(fmt.Errorf("pq: relation daily_scores does not exist")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches unique violation code", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Constraint: "daily_scores_player_date_key"}
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for 23505 error")
		}
	})

	t.Run("matches wrapped error", func(t *testing.T) {
		err := fmt.Errorf("insert score: %w", &pq.Error{Code: "23505"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for wrapped 23505 error")
		}
	})

	t.Run("ignores other pq codes", func(t *testing.T) {
		err := &pq.Error{Code: "23503"}
		if isUniqueViolation(err) {
			t.Fatalf("expected false for foreign key violation")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isUniqueViolation(fmt.Errorf("connection refused")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}
