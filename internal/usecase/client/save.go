package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/TallerHub/taller-quotes-api/internal/audit"
	domain "github.com/TallerHub/taller-quotes-api/internal/domain/client"
	"github.com/TallerHub/taller-quotes-api/internal/httperr"
	"github.com/TallerHub/taller-quotes-api/internal/models"
)

// ======================================================
// SAVE CLIENT (create or edit + vehicle reconciliation)
// ======================================================

type SaveClientInput struct {
	ID uint // 0 means create

	Name    string
	Phone   string
	Email   string
	Address string

	Vehicles []domain.VehicleInput
}

type SaveClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	// withTx wraps the whole reconciliation mutation set in one store
	// transaction. Off it matches the historical behavior: steps apply
	// sequentially and a failure leaves earlier mutations in place.
	withTx bool
}

func NewSaveClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
	withTx bool,
) *SaveClient {
	return &SaveClient{
		repo:   repo,
		audit:  audit,
		withTx: withTx,
	}
}

func (uc *SaveClient) Execute(
	ctx context.Context,
	actorID uint,
	in SaveClientInput,
) (*models.Client, error) {

	if in.Name == "" {
		return nil, httperr.ErrBusiness("client_name_required")
	}

	record := &models.Client{
		ID:      in.ID,
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
	}

	action := "client_updated"
	if in.ID == 0 {
		action = "client_created"
		if err := uc.repo.CreateClient(ctx, record); err != nil {
			return nil, err
		}
	} else {
		current, err := uc.repo.GetClient(ctx, in.ID)
		if err != nil {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		record.CreatedAt = current.CreatedAt
		if err := uc.repo.UpdateClient(ctx, record); err != nil {
			return nil, err
		}
	}

	persisted, err := uc.repo.ListVehicles(ctx, record.ID)
	if err != nil {
		return nil, err
	}

	plan := domain.Reconcile(record.ID, persisted, in.Vehicles, uuid.NewString)

	if !plan.Empty() {
		if uc.withTx {
			err = uc.repo.InTransaction(ctx, func(r domain.Repository) error {
				return applyPlan(ctx, r, plan)
			})
		} else {
			err = applyPlan(ctx, uc.repo, plan)
		}
		if err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   action,
		Entity:   "client",
		EntityID: audit.ID(record.ID),
		Metadata: map[string]int{
			"vehicles_deleted": len(plan.Deletes),
			"vehicles_updated": len(plan.Updates),
			"vehicles_created": len(plan.Creates),
		},
	})

	return uc.repo.GetClient(ctx, record.ID)
}

// applyPlan issues the mutation set strictly in order: deletes, then
// updates, then creates. A failure aborts the remaining steps without
// rolling back the applied ones; atomicity is the transaction's job when
// the reconciler runs with one.
func applyPlan(ctx context.Context, repo domain.Repository, plan domain.Plan) error {
	for _, id := range plan.Deletes {
		if err := repo.DeleteVehicle(ctx, id); err != nil {
			return err
		}
	}
	for i := range plan.Updates {
		if err := repo.UpdateVehicle(ctx, &plan.Updates[i]); err != nil {
			return err
		}
	}
	for i := range plan.Creates {
		if err := repo.CreateVehicle(ctx, &plan.Creates[i]); err != nil {
			return err
		}
	}
	return nil
}
