package repository

import (
	"context"

	"github.com/nutrigenie/nutrigenie/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound  = RepositoryError("not found")
	ErrInvalidID = RepositoryError("invalid identifier")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// PlanRepository defines the interface for interacting with saved plans.
type PlanRepository interface {
	// Insert appends a new plan, assigning its identifier and creation
	// timestamp, and returns the generated identifier.
	Insert(ctx context.Context, plan *domain.Plan) (primitive.ObjectID, error)
	// FindAll returns every saved plan in insertion order. An empty store
	// yields an empty slice, not an error.
	FindAll(ctx context.Context) ([]domain.Plan, error)
	// DeleteByID removes the plan whose identifier matches the given hex
	// string. A string that is not a valid identifier encoding yields
	// ErrInvalidID; a well-formed identifier with no matching plan is a no-op.
	DeleteByID(ctx context.Context, id string) error
}
