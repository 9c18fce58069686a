package mongo

import (
	"context"
	"errors"
	"testing"

	"github.com/nutrigenie/nutrigenie/internal/repository"
)

// DeleteByID must reject malformed identifier encodings before touching the
// collection, so the hex-validation path is testable without a database.
func TestDeleteByID_MalformedIdentifier(t *testing.T) {
	t.Parallel()

	repo := &mongoPlanRepository{}

	tests := []struct {
		name string
		id   string
	}{
		{name: "empty", id: ""},
		{name: "too short", id: "abc123"},
		{name: "not hex", id: "zzzzzzzzzzzzzzzzzzzzzzzz"},
		{name: "too long", id: "68a1f0c2d3e4f5a6b7c8d9e0f1"},
		{name: "markup", id: "<script>alert(1)</script>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.DeleteByID(context.Background(), tt.id)
			if !errors.Is(err, repository.ErrInvalidID) {
				t.Errorf("DeleteByID(%q) = %v, want ErrInvalidID", tt.id, err)
			}
		})
	}
}
