package client

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TallerHub/taller-quotes-api/internal/models"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
}

func TestReconcileEmptyToEmpty(t *testing.T) {
	plan := Reconcile(1, nil, nil, sequentialIDs())
	assert.True(t, plan.Empty())
}

func TestReconcilePreservesIdentity(t *testing.T) {
	persisted := []models.Vehicle{
		{ID: "v1", ClientID: 1, Brand: "Ford", Model: "Fiesta"},
		{ID: "v2", ClientID: 1, Brand: "Fiat", Model: "Uno"},
	}
	incoming := []VehicleInput{
		{ID: "v1", Brand: "Ford", Model: "Focus", Plate: "AB123CD"},
		{Brand: "Toyota", Model: "Hilux"},
	}

	plan := Reconcile(1, persisted, incoming, sequentialIDs())

	// v2 was omitted: delete. v1 kept its id: update. Toyota is new.
	assert.Equal(t, []string{"v2"}, plan.Deletes)

	require.Len(t, plan.Updates, 1)
	assert.Equal(t, "v1", plan.Updates[0].ID)
	assert.Equal(t, "Focus", plan.Updates[0].Model)
	assert.Equal(t, "AB123CD", plan.Updates[0].Plate)
	assert.Equal(t, uint(1), plan.Updates[0].ClientID)

	require.Len(t, plan.Creates, 1)
	assert.Equal(t, "gen-1", plan.Creates[0].ID)
	assert.Equal(t, "Toyota", plan.Creates[0].Brand)
}

func TestReconcileFullFieldOverwrite(t *testing.T) {
	persisted := []models.Vehicle{
		{ID: "v1", ClientID: 1, Brand: "Ford", Model: "Fiesta", VIN: "XYZ", Insurance: "La Caja"},
	}
	incoming := []VehicleInput{
		{ID: "v1", Brand: "Ford", Model: "Fiesta"},
	}

	plan := Reconcile(1, persisted, incoming, sequentialIDs())

	// Not a sparse patch: fields absent from the incoming item are
	// cleared, not kept.
	require.Len(t, plan.Updates, 1)
	assert.Equal(t, "", plan.Updates[0].VIN)
	assert.Equal(t, "", plan.Updates[0].Insurance)
}

func TestReconcileUnknownIDBecomesCreate(t *testing.T) {
	incoming := []VehicleInput{
		{ID: "imported-7", Brand: "Renault"},
	}

	plan := Reconcile(1, nil, incoming, sequentialIDs())

	require.Len(t, plan.Creates, 1)
	// A caller-supplied id is kept, not regenerated.
	assert.Equal(t, "imported-7", plan.Creates[0].ID)
	assert.Empty(t, plan.Deletes)
	assert.Empty(t, plan.Updates)
}

func TestReconcileDuplicateIncomingIDLastWriteWins(t *testing.T) {
	persisted := []models.Vehicle{
		{ID: "v1", ClientID: 1, Brand: "Ford"},
	}
	incoming := []VehicleInput{
		{ID: "v1", Brand: "First"},
		{ID: "v1", Brand: "Second"},
	}

	plan := Reconcile(1, persisted, incoming, sequentialIDs())

	// Duplicates are not deduplicated; applied in order the later one
	// wins.
	require.Len(t, plan.Updates, 2)
	assert.Equal(t, "First", plan.Updates[0].Brand)
	assert.Equal(t, "Second", plan.Updates[1].Brand)
}

func TestReconcileDeletesEverythingWhenIncomingEmpty(t *testing.T) {
	persisted := []models.Vehicle{
		{ID: "v1", ClientID: 1},
		{ID: "v2", ClientID: 1},
	}

	plan := Reconcile(1, persisted, nil, sequentialIDs())

	assert.ElementsMatch(t, []string{"v1", "v2"}, plan.Deletes)
	assert.Empty(t, plan.Updates)
	assert.Empty(t, plan.Creates)
}
