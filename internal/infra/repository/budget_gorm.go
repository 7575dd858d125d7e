package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/TallerHub/taller-quotes-api/internal/domain/budget"
	"github.com/TallerHub/taller-quotes-api/internal/models"
)

type BudgetGormRepository struct {
	db *gorm.DB
}

func NewBudgetGormRepository(db *gorm.DB) *BudgetGormRepository {
	return &BudgetGormRepository{db: db}
}

// --------------------------------------------------
// Branch
// --------------------------------------------------

func (r *BudgetGormRepository) GetBranch(
	ctx context.Context,
	id uint,
) (*models.Branch, error) {

	var branch models.Branch
	if err := r.db.WithContext(ctx).First(&branch, id).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *BudgetGormRepository) ListBranches(
	ctx context.Context,
) ([]models.Branch, error) {

	var branches []models.Branch
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}

// --------------------------------------------------
// Sequence counter
// --------------------------------------------------

// nextSequence bumps the branch counter atomically. The upsert syntax below
// is accepted by both postgres and sqlite, and the qualified column refers
// to the stored row, so concurrent callers always observe distinct values.
func nextSequence(tx *gorm.DB, branchID uint) (uint64, error) {
	if err := tx.Exec(
		`INSERT INTO branch_sequences (branch_id, last_sequence) VALUES (?, 1)
		 ON CONFLICT (branch_id)
		 DO UPDATE SET last_sequence = branch_sequences.last_sequence + 1`,
		branchID,
	).Error; err != nil {
		return 0, err
	}

	var bs models.BranchSequence
	if err := tx.First(&bs, "branch_id = ?", branchID).Error; err != nil {
		return 0, err
	}
	return bs.LastSequence, nil
}

// --------------------------------------------------
// Budget
// --------------------------------------------------

func (r *BudgetGormRepository) CreateBudget(
	ctx context.Context,
	b *models.Budget,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSequence(tx, b.BranchID)
		if err != nil {
			return err
		}
		b.Sequence = domain.FormatSequence(seq)

		return tx.Create(b).Error
	})
}

func (r *BudgetGormRepository) GetBudget(
	ctx context.Context,
	id uint,
) (*models.Budget, error) {

	var b models.Budget
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BudgetGormRepository) UpdateBudget(
	ctx context.Context,
	b *models.Budget,
	reseq bool,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if reseq {
			seq, err := nextSequence(tx, b.BranchID)
			if err != nil {
				return err
			}
			b.Sequence = domain.FormatSequence(seq)
		}

		// Items are replaced wholesale; the budget row keeps its id.
		if err := tx.
			Where("budget_id = ?", b.ID).
			Delete(&models.BudgetItem{}).Error; err != nil {
			return err
		}
		for i := range b.Items {
			b.Items[i].ID = 0
			b.Items[i].BudgetID = b.ID
		}

		return tx.Session(&gorm.Session{FullSaveAssociations: true}).
			Save(b).Error
	})
}

func (r *BudgetGormRepository) DeleteBudget(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("budget_id = ?", id).
			Delete(&models.BudgetItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Budget{}, id).Error
	})
}

func (r *BudgetGormRepository) ListBudgets(
	ctx context.Context,
	branchID *uint,
) ([]models.Budget, error) {

	q := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		Order("id ASC")

	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}

	var budgets []models.Budget
	if err := q.Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *BudgetGormRepository) ListSequences(
	ctx context.Context,
	branchID uint,
) ([]string, error) {

	var sequences []string
	if err := r.db.WithContext(ctx).
		Model(&models.Budget{}).
		Where("branch_id = ?", branchID).
		Order("id ASC").
		Pluck("sequence", &sequences).Error; err != nil {
		return nil, err
	}
	return sequences, nil
}
