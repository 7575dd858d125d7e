package client

import (
	"context"

	"github.com/TallerHub/taller-quotes-api/internal/models"
)

type Repository interface {
	// -------- Client --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	CreateClient(
		ctx context.Context,
		c *models.Client,
	) error

	UpdateClient(
		ctx context.Context,
		c *models.Client,
	) error

	// DeleteClient removes the client and every vehicle it owns in one
	// transaction. Deleting an id that no longer exists is not an error.
	DeleteClient(
		ctx context.Context,
		id uint,
	) error

	ListClients(
		ctx context.Context,
		query string,
	) ([]models.Client, error)

	// -------- Vehicle --------
	ListVehicles(
		ctx context.Context,
		clientID uint,
	) ([]models.Vehicle, error)

	CreateVehicle(
		ctx context.Context,
		v *models.Vehicle,
	) error

	UpdateVehicle(
		ctx context.Context,
		v *models.Vehicle,
	) error

	// DeleteVehicle is idempotent.
	DeleteVehicle(
		ctx context.Context,
		id string,
	) error

	// InTransaction runs fn against a repository bound to one store
	// transaction. Used when the reconciler is configured to apply its
	// whole mutation set atomically.
	InTransaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
