package budget

import (
	"context"

	"github.com/TallerHub/taller-quotes-api/internal/models"
)

type Repository interface {
	// -------- Branch --------
	GetBranch(
		ctx context.Context,
		id uint,
	) (*models.Branch, error)

	// ListBranches returns every branch in creation order; the position in
	// this slice is what BranchLabel uses when a branch has no code.
	ListBranches(
		ctx context.Context,
	) ([]models.Branch, error)

	// -------- Budget --------

	// CreateBudget assigns b.Sequence from the branch counter and inserts
	// the budget and its items in one transaction.
	CreateBudget(
		ctx context.Context,
		b *models.Budget,
	) error

	GetBudget(
		ctx context.Context,
		id uint,
	) (*models.Budget, error)

	// UpdateBudget replaces the budget and its item set. When reseq is
	// true a fresh sequence is taken from b.BranchID's counter inside the
	// same transaction (the budget moved branches).
	UpdateBudget(
		ctx context.Context,
		b *models.Budget,
		reseq bool,
	) error

	DeleteBudget(
		ctx context.Context,
		id uint,
	) error

	// ListBudgets returns budgets in creation order, optionally narrowed
	// to one branch.
	ListBudgets(
		ctx context.Context,
		branchID *uint,
	) ([]models.Budget, error)

	// ListSequences returns the stored sequence strings of a branch's
	// budgets, for the scan-based preview.
	ListSequences(
		ctx context.Context,
		branchID uint,
	) ([]string, error)
}
