package budget

import (
	"context"

	"github.com/TallerHub/taller-quotes-api/internal/assembler"
	"github.com/TallerHub/taller-quotes-api/internal/audit"
	domain "github.com/TallerHub/taller-quotes-api/internal/domain/budget"
	"github.com/TallerHub/taller-quotes-api/internal/httperr"
	"github.com/TallerHub/taller-quotes-api/internal/models"
)

// ======================================================
// UPDATE BUDGET
// ======================================================

type UpdateBudget struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBudget(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBudget {
	return &UpdateBudget{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBudget) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
	draft assembler.BudgetDraft,
) (*models.Budget, error) {

	current, err := uc.repo.GetBudget(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("budget_not_found")
	}

	if draft.ClientName == "" {
		return nil, httperr.ErrBusiness("client_name_required")
	}

	// Moving the budget to another branch is allowed, but the display
	// number belongs to the branch: a fresh sequence is taken from the
	// new branch's counter.
	reseq := draft.BranchID != current.BranchID
	if reseq {
		if _, err := uc.repo.GetBranch(ctx, draft.BranchID); err != nil {
			return nil, httperr.ErrBusiness("branch_not_found")
		}
	}

	b := budgetFromDraft(draft)
	b.ID = current.ID
	b.Sequence = current.Sequence
	b.CreatedAt = current.CreatedAt

	if err := uc.repo.UpdateBudget(ctx, b, reseq); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "budget_updated",
		Entity:   "budget",
		EntityID: audit.ID(b.ID),
	})

	return b, nil
}
