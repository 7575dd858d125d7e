package budget

import (
	"context"

	domain "github.com/TallerHub/taller-quotes-api/internal/domain/budget"
	"github.com/TallerHub/taller-quotes-api/internal/dto"
	"github.com/TallerHub/taller-quotes-api/internal/httperr"
	"github.com/TallerHub/taller-quotes-api/internal/models"
)

// ======================================================
// SUMMARIZE (read side)
// ======================================================

type SummarizeBudgets struct {
	repo domain.Repository
}

func NewSummarizeBudgets(repo domain.Repository) *SummarizeBudgets {
	return &SummarizeBudgets{repo: repo}
}

func (uc *SummarizeBudgets) One(
	ctx context.Context,
	id uint,
) (*dto.BudgetSummaryDTO, error) {

	b, err := uc.repo.GetBudget(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("budget_not_found")
	}

	labels, names, err := uc.branchIndex(ctx)
	if err != nil {
		return nil, err
	}

	summary := summarize(b, labels, names)
	return &summary, nil
}

func (uc *SummarizeBudgets) List(
	ctx context.Context,
	branchID *uint,
) ([]dto.BudgetSummaryDTO, error) {

	budgets, err := uc.repo.ListBudgets(ctx, branchID)
	if err != nil {
		return nil, err
	}

	labels, names, err := uc.branchIndex(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.BudgetSummaryDTO, 0, len(budgets))
	for i := range budgets {
		summaries = append(summaries, summarize(&budgets[i], labels, names))
	}
	return summaries, nil
}

// branchIndex resolves every branch label and name up front so summarizing
// a list costs one branch query. Budgets pointing at a deleted branch get
// the zero values: blank label, blank name.
func (uc *SummarizeBudgets) branchIndex(
	ctx context.Context,
) (map[uint]string, map[uint]string, error) {

	branches, err := uc.repo.ListBranches(ctx)
	if err != nil {
		return nil, nil, err
	}

	labels := make(map[uint]string, len(branches))
	names := make(map[uint]string, len(branches))
	for i := range branches {
		labels[branches[i].ID] = domain.BranchLabel(&branches[i], i+1)
		names[branches[i].ID] = branches[i].Name
	}
	return labels, names, nil
}

func summarize(b *models.Budget, labels, names map[uint]string) dto.BudgetSummaryDTO {
	items := make([]dto.BudgetItemDTO, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, dto.BudgetItemDTO{
			Quantity:    it.Quantity,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		})
	}

	return dto.BudgetSummaryDTO{
		ID:             b.ID,
		Numero:         domain.DisplayNumber(labels[b.BranchID], b.Sequence),
		SucursalNombre: names[b.BranchID],
		Cliente: dto.ClienteDTO{
			Nombre:   b.ClientName,
			Telefono: b.ClientPhone,
			Email:    b.ClientEmail,
		},
		Vehiculo:  b.Vehicle,
		Items:     items,
		Total:     b.Total,
		Status:    b.Status,
		Date:      b.Date,
		TaxPolicy: b.TaxPolicy,
	}
}
