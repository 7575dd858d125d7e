package assembler

import (
	domain "github.com/TallerHub/taller-quotes-api/internal/domain/client"
)

// NormalizeVehicle resolves aliases on one incoming vehicle object. An id
// present here means the caller is pointing at a persisted vehicle.
func NormalizeVehicle(m map[string]any) domain.VehicleInput {
	return domain.VehicleInput{
		ID:        coerceString(m["id"]),
		Brand:     pickString(m, "brand"),
		Model:     pickString(m, "model"),
		Year:      pickString(m, "year"),
		Plate:     pickString(m, "plate"),
		VIN:       pickString(m, "vin"),
		Insurance: pickString(m, "insurance"),
	}
}

// NormalizeVehicles maps a raw payload list; entries that are not objects
// are dropped.
func NormalizeVehicles(raw []any) []domain.VehicleInput {
	out := make([]domain.VehicleInput, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, NormalizeVehicle(m))
		}
	}
	return out
}
