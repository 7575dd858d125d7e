package budget

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/TallerHub/taller-quotes-api/internal/assembler"
	"github.com/TallerHub/taller-quotes-api/internal/audit"
	dbpkg "github.com/TallerHub/taller-quotes-api/internal/db"
	infraRepo "github.com/TallerHub/taller-quotes-api/internal/infra/repository"
	"github.com/TallerHub/taller-quotes-api/internal/models"
)

func setupBudgetTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type budgetUCs struct {
	create    *CreateBudget
	update    *UpdateBudget
	remove    *DeleteBudget
	preview   *PreviewNumber
	summarize *SummarizeBudgets
}

func newBudgetUCs(t *testing.T, db *gorm.DB) budgetUCs {
	t.Helper()
	repo := infraRepo.NewBudgetGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))
	return budgetUCs{
		create:    NewCreateBudget(repo, dispatcher),
		update:    NewUpdateBudget(repo, dispatcher),
		remove:    NewDeleteBudget(repo, dispatcher),
		preview:   NewPreviewNumber(repo),
		summarize: NewSummarizeBudgets(repo),
	}
}

func seedBranch(t *testing.T, db *gorm.DB, name, code string) models.Branch {
	t.Helper()
	b := models.Branch{Name: name, Code: code}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("seed branch: %v", err)
	}
	return b
}

func draftFor(branchID uint, clientName string) assembler.BudgetDraft {
	return assembler.BudgetDraft{
		BranchID:   branchID,
		ClientName: clientName,
		Total:      decimal.NewFromInt(100),
	}
}

func TestCreateBudgetAssignsBranchScopedSequences(t *testing.T) {
	db := setupBudgetTestDB(t)
	uc := newBudgetUCs(t, db)
	ctx := context.Background()

	central := seedBranch(t, db, "Central", "MB")
	norte := seedBranch(t, db, "Norte", "")

	b1, err := uc.create.Execute(ctx, 1, draftFor(central.ID, "Juan"))
	if err != nil {
		t.Fatalf("create 1: %v", err)
	}
	b2, err := uc.create.Execute(ctx, 1, draftFor(central.ID, "Ana"))
	if err != nil {
		t.Fatalf("create 2: %v", err)
	}
	other, err := uc.create.Execute(ctx, 1, draftFor(norte.ID, "Pedro"))
	if err != nil {
		t.Fatalf("create other branch: %v", err)
	}

	if b1.Sequence != "00000001" || b2.Sequence != "00000002" {
		t.Fatalf("central sequences = %q, %q", b1.Sequence, b2.Sequence)
	}
	// Numbering is branch-scoped: the other branch starts at 1.
	if other.Sequence != "00000001" {
		t.Fatalf("norte sequence = %q", other.Sequence)
	}
}

func TestPreviewNumberEmptyBranch(t *testing.T) {
	db := setupBudgetTestDB(t)
	uc := newBudgetUCs(t, db)

	central := seedBranch(t, db, "Central", "MB")

	numero, err := uc.preview.Execute(context.Background(), central.ID)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if numero != "N° MB - 00000001" {
		t.Fatalf("numero = %q", numero)
	}
}

func TestPreviewNumberScansExistingSequences(t *testing.T) {
	db := setupBudgetTestDB(t)
	uc := newBudgetUCs(t, db)

	central := seedBranch(t, db, "Central", "MB")
	norte := seedBranch(t, db, "Norte", "NT")

	if err := db.Create(&models.Budget{BranchID: central.ID, Sequence: "00000007", ClientName: "X"}).Error; err != nil {
		t.Fatalf("seed budget: %v", err)
	}
	// Noise in another branch must not leak into the preview.
	if err := db.Create(&models.Budget{BranchID: norte.ID, Sequence: "00000055", ClientName: "Y"}).Error; err != nil {
		t.Fatalf("seed other budget: %v", err)
	}

	numero, err := uc.preview.Execute(context.Background(), central.ID)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if numero != "N° MB - 00000008" {
		t.Fatalf("numero = %q", numero)
	}
}

func TestPreviewNumberOrdinalLabel(t *testing.T) {
	db := setupBudgetTestDB(t)
	uc := newBudgetUCs(t, db)

	seedBranch(t, db, "Primera", "A1")
	seedBranch(t, db, "Segunda", "B2")
	third := seedBranch(t, db, "Tercera", "")

	numero, err := uc.preview.Execute(context.Background(), third.ID)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	// No code: the 1-based ordinal position, zero-padded to 4 digits.
	if numero != "N° 0003 - 00000001" {
		t.Fatalf("numero = %q", numero)
	}
}

func TestPreviewNumberDeletedBranchBlankLabel(t *testing.T) {
	db := setupBudgetTestDB(t)
	uc := newBudgetUCs(t, db)
	ctx := context.Background()

	central := seedBranch(t, db, "Central", "MB")
	if _, err := uc.create.Execute(ctx, 1, draftFor(central.ID, "Juan")); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := db.Delete(&models.Branch{}, central.ID).Error; err != nil {
		t.Fatalf("delete branch: %v", err)
	}

	numero, err := uc.preview.Execute(ctx, central.ID)
	if err != nil {
		t.Fatalf("preview after branch delete: %v", err)
	}
	if numero != "N°  - 00000002" {
		t.Fatalf("numero = %q", numero)
	}
}

func TestBudgetRoundTripFromUIPayload(t *testing.T) {
	db := setupBudgetTestDB(t)
	uc := newBudgetUCs(t, db)
	ctx := context.Background()

	central := seedBranch(t, db, "Central", "MB")

	raw := fmt.Sprintf(`{
		"sucursal_id": %d,
		"cliente": {"nombre": "Juan Pérez", "telefono": "123", "email": "j@example.com"},
		"vehiculo": {"marca": "Ford", "modelo": "Fiesta", "patente": "AB123CD"},
		"items": [
			{"cantidad": 2, "descripcion": "Cambio de aceite", "precio": 4500, "importe": 9000},
			{"cantidad": 1, "descripcion": "Filtro", "precio": 1200, "importe": 1200}
		],
		"total": 10200,
		"fecha": "2024-03-01"
	}`, central.ID)

	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}

	created, err := uc.create.Execute(ctx, 1, assembler.NormalizeBudget(payload))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	summary, err := uc.summarize.One(ctx, created.ID)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	if summary.Cliente.Nombre != "Juan Pérez" {
		t.Fatalf("cliente = %q", summary.Cliente.Nombre)
	}
	if summary.SucursalNombre != "Central" {
		t.Fatalf("sucursalNombre = %q", summary.SucursalNombre)
	}
	if summary.Numero != "N° MB - 00000001" {
		t.Fatalf("numero = %q", summary.Numero)
	}
	if !summary.Total.Equal(decimal.NewFromInt(10200)) {
		t.Fatalf("total = %s", summary.Total)
	}
	if len(summary.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(summary.Items))
	}
	if summary.Items[0].Description != "Cambio de aceite" {
		t.Fatalf("item order lost: %q", summary.Items[0].Description)
	}
	if !summary.Items[1].LineTotal.Equal(decimal.NewFromInt(1200)) {
		t.Fatalf("line total = %s", summary.Items[1].LineTotal)
	}
}

func TestUpdateBudgetKeepsSequenceWithinBranch(t *testing.T) {
	db := setupBudgetTestDB(t)
	uc := newBudgetUCs(t, db)
	ctx := context.Background()

	central := seedBranch(t, db, "Central", "MB")

	created, err := uc.create.Execute(ctx, 1, draftFor(central.ID, "Juan"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	draft := draftFor(central.ID, "Juan Actualizado")
	updated, err := uc.update.Execute(ctx, 1, created.ID, draft)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Sequence != created.Sequence {
		t.Fatalf("sequence changed on same-branch edit: %q -> %q", created.Sequence, updated.Sequence)
	}
	if updated.ClientName != "Juan Actualizado" {
		t.Fatalf("client name = %q", updated.ClientName)
	}
}

func TestUpdateBudgetBranchChangeReassignsSequence(t *testing.T) {
	db := setupBudgetTestDB(t)
	uc := newBudgetUCs(t, db)
	ctx := context.Background()

	central := seedBranch(t, db, "Central", "MB")
	norte := seedBranch(t, db, "Norte", "NT")

	// Two budgets already in norte, so the moved one takes sequence 3.
	if _, err := uc.create.Execute(ctx, 1, draftFor(norte.ID, "A")); err != nil {
		t.Fatalf("seed norte 1: %v", err)
	}
	if _, err := uc.create.Execute(ctx, 1, draftFor(norte.ID, "B")); err != nil {
		t.Fatalf("seed norte 2: %v", err)
	}

	created, err := uc.create.Execute(ctx, 1, draftFor(central.ID, "Juan"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := uc.update.Execute(ctx, 1, created.ID, draftFor(norte.ID, "Juan"))
	if err != nil {
		t.Fatalf("move: %v", err)
	}

	if updated.BranchID != norte.ID {
		t.Fatalf("branch id = %d", updated.BranchID)
	}
	if updated.Sequence != "00000003" {
		t.Fatalf("sequence after move = %q", updated.Sequence)
	}
}

func TestDeleteBudgetIdempotent(t *testing.T) {
	db := setupBudgetTestDB(t)
	uc := newBudgetUCs(t, db)
	ctx := context.Background()

	central := seedBranch(t, db, "Central", "MB")
	created, err := uc.create.Execute(ctx, 1, draftFor(central.ID, "Juan"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := uc.remove.Execute(ctx, 1, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.remove.Execute(ctx, 1, created.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	var count int64
	if err := db.Model(&models.BudgetItem{}).Where("budget_id = ?", created.ID).Count(&count).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no orphan items, found %d", count)
	}
}

func TestCreateBudgetValidation(t *testing.T) {
	db := setupBudgetTestDB(t)
	uc := newBudgetUCs(t, db)
	ctx := context.Background()

	central := seedBranch(t, db, "Central", "MB")

	if _, err := uc.create.Execute(ctx, 1, draftFor(central.ID, "")); err == nil {
		t.Fatal("expected error for missing client name")
	}
	if _, err := uc.create.Execute(ctx, 1, draftFor(9999, "Juan")); err == nil {
		t.Fatal("expected error for unknown branch")
	}
}
