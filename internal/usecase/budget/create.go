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
// CREATE BUDGET
// ======================================================

type CreateBudget struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBudget(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBudget {
	return &CreateBudget{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBudget) Execute(
	ctx context.Context,
	actorID uint,
	draft assembler.BudgetDraft,
) (*models.Budget, error) {

	if draft.ClientName == "" {
		return nil, httperr.ErrBusiness("client_name_required")
	}

	if _, err := uc.repo.GetBranch(ctx, draft.BranchID); err != nil {
		return nil, httperr.ErrBusiness("branch_not_found")
	}

	b := budgetFromDraft(draft)

	// Sequence assignment happens inside the same transaction as the
	// insert; see the repository.
	if err := uc.repo.CreateBudget(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "budget_created",
		Entity:   "budget",
		EntityID: audit.ID(b.ID),
	})

	return b, nil
}

func budgetFromDraft(draft assembler.BudgetDraft) *models.Budget {
	status := domain.Status(draft.Status)
	if !domain.IsValid(status) {
		status = domain.InitialStatus()
	}

	taxPolicy := draft.TaxPolicy
	if taxPolicy == "" {
		taxPolicy = "none"
	}

	b := &models.Budget{
		BranchID:    draft.BranchID,
		ClientName:  draft.ClientName,
		ClientPhone: draft.ClientPhone,
		ClientEmail: draft.ClientEmail,
		Vehicle:     draft.Vehicle,
		Total:       draft.Total,
		Status:      string(status),
		Date:        draft.Date,
		Signature:   draft.Signature,
		TaxPolicy:   taxPolicy,
	}

	for i, line := range draft.Items {
		b.Items = append(b.Items, models.BudgetItem{
			Position:    i,
			Quantity:    line.Quantity,
			Description: line.Description,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal,
		})
	}

	return b
}
