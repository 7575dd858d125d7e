package client

import (
	"context"

	"github.com/TallerHub/taller-quotes-api/internal/audit"
	domain "github.com/TallerHub/taller-quotes-api/internal/domain/client"
)

type DeleteClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteClient {
	return &DeleteClient{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the client and, in the same transaction, every vehicle
// it owns. Idempotent.
func (uc *DeleteClient) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
) error {

	if err := uc.repo.DeleteClient(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: audit.ID(id),
	})

	return nil
}
