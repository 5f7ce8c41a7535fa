package catalog

import (
	"context"
	"errors"

	"github.com/justconnect/justconnect-api/internal/models"
)

// ErrNotFound is returned when the requested service does not exist.
var ErrNotFound = errors.New("service not found")

type Repository interface {
	List(ctx context.Context) ([]models.Service, error)
	Get(ctx context.Context, id uint) (*models.Service, error)
	Create(ctx context.Context, svc *models.Service) error
	Update(ctx context.Context, svc *models.Service) error
	Delete(ctx context.Context, id uint) error
}
