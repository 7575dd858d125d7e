package budget

import (
	"context"

	"github.com/TallerHub/taller-quotes-api/internal/audit"
	domain "github.com/TallerHub/taller-quotes-api/internal/domain/budget"
)

type DeleteBudget struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBudget(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBudget {
	return &DeleteBudget{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes a budget and its items. Deleting an id that is already
// gone is not an error.
func (uc *DeleteBudget) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
) error {

	if err := uc.repo.DeleteBudget(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "budget_deleted",
		Entity:   "budget",
		EntityID: audit.ID(id),
	})

	return nil
}
