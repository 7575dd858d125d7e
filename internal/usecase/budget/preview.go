package budget

import (
	"context"

	domain "github.com/TallerHub/taller-quotes-api/internal/domain/budget"
)

// ======================================================
// PREVIEW NEXT NUMBER
// ======================================================

type PreviewNumber struct {
	repo domain.Repository
}

func NewPreviewNumber(repo domain.Repository) *PreviewNumber {
	return &PreviewNumber{repo: repo}
}

// Execute derives the display number the next budget of a branch would
// get, by scanning the sequences already stored for that branch. It is a
// preview for the form header: the authoritative value is allocated from
// the branch counter when the budget is actually saved.
func (uc *PreviewNumber) Execute(
	ctx context.Context,
	branchID uint,
) (string, error) {

	sequences, err := uc.repo.ListSequences(ctx, branchID)
	if err != nil {
		return "", err
	}
	next := domain.NextFromScan(sequences)

	label, err := uc.branchLabel(ctx, branchID)
	if err != nil {
		return "", err
	}

	return domain.DisplayNumber(label, domain.FormatSequence(next)), nil
}

// branchLabel resolves the label segment. A branch that no longer exists
// resolves to the empty string, leaving a blank segment in the number.
func (uc *PreviewNumber) branchLabel(
	ctx context.Context,
	branchID uint,
) (string, error) {

	branches, err := uc.repo.ListBranches(ctx)
	if err != nil {
		return "", err
	}

	for i := range branches {
		if branches[i].ID == branchID {
			return domain.BranchLabel(&branches[i], i+1), nil
		}
	}
	return "", nil
}
