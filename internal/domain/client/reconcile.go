package client

import (
	"github.com/TallerHub/taller-quotes-api/internal/models"
)

// ===============================
// Vehicle reconciliation
// ===============================
//
// When a client is saved the caller resends the full vehicle list. An item
// carrying a persisted id means "same vehicle, these are its fields now";
// an item without one (or with an unknown id) is new; a persisted vehicle
// the caller omitted was removed. The diff below preserves vehicle identity
// so budget references keyed by vehicle id survive edits.

// VehicleInput is one incoming vehicle, already normalized (field aliases
// resolved at the assembler boundary).
type VehicleInput struct {
	ID        string
	Brand     string
	Model     string
	Year      string
	Plate     string
	VIN       string
	Insurance string
}

// Plan is the ordered mutation set for one client. Deletes run first so a
// re-created id never races its own removal, then updates, then creates.
type Plan struct {
	Deletes []string
	Updates []models.Vehicle
	Creates []models.Vehicle
}

// Empty reports whether applying the plan would touch nothing.
func (p Plan) Empty() bool {
	return len(p.Deletes) == 0 && len(p.Updates) == 0 && len(p.Creates) == 0
}

// Reconcile diffs the incoming list against the persisted set. newID
// supplies ids for created vehicles that arrived without one.
//
// Duplicate ids inside the incoming list are not deduplicated: both rows
// land in Updates and the later one wins when applied sequentially.
func Reconcile(clientID uint, persisted []models.Vehicle, incoming []VehicleInput, newID func() string) Plan {
	persistedIDs := make(map[string]bool, len(persisted))
	for _, v := range persisted {
		persistedIDs[v.ID] = true
	}

	incomingIDs := make(map[string]bool, len(incoming))
	for _, in := range incoming {
		if in.ID != "" {
			incomingIDs[in.ID] = true
		}
	}

	var plan Plan

	// Removed by the caller.
	for _, v := range persisted {
		if !incomingIDs[v.ID] {
			plan.Deletes = append(plan.Deletes, v.ID)
		}
	}

	for _, in := range incoming {
		vehicle := models.Vehicle{
			ID:        in.ID,
			ClientID:  clientID,
			Brand:     in.Brand,
			Model:     in.Model,
			Year:      in.Year,
			Plate:     in.Plate,
			VIN:       in.VIN,
			Insurance: in.Insurance,
		}

		if in.ID != "" && persistedIDs[in.ID] {
			// Full-field overwrite, not a sparse patch.
			plan.Updates = append(plan.Updates, vehicle)
			continue
		}

		if vehicle.ID == "" {
			vehicle.ID = newID()
		}
		plan.Creates = append(plan.Creates, vehicle)
	}

	return plan
}
