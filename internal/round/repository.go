package round

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrRoundNotFound is returned when a round record is not found.
var ErrRoundNotFound = errors.New("round not found")

// Repository provides operations on the rounds table.
type Repository interface {
	Create(ctx context.Context, r *Round) error
	GetByID(ctx context.Context, id uuid.UUID) (*Round, error)
	List(ctx context.Context) ([]Round, error)
	Latest(ctx context.Context) (*Round, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
