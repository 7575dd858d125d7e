package assembler

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ======================================================
// Budget payload normalization
// ======================================================
//
// The form UI sends a loose shape: client data nested under "cliente",
// Spanish aliases, numbers that may arrive as strings. Everything is
// flattened here, once, into the canonical draft the usecases work with.

type LineDraft struct {
	Quantity    decimal.Decimal
	Description string
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

type BudgetDraft struct {
	BranchID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	Vehicle string

	Items []LineDraft

	// Total is the caller-supplied figure, coerced; zero when absent or
	// non-numeric. Keeping it equal to the item sum is the caller's job.
	Total decimal.Decimal

	Status    string
	Date      string
	Signature string
	TaxPolicy string
}

// NormalizeBudget flattens a raw UI payload into a canonical draft.
func NormalizeBudget(payload map[string]any) BudgetDraft {
	draft := BudgetDraft{
		Status:    pickString(payload, "status"),
		Date:      pickString(payload, "date"),
		Signature: pickString(payload, "signature"),
		TaxPolicy: pickString(payload, "tax_policy"),
	}

	if v, ok := pick(payload, "branch_id"); ok {
		draft.BranchID = coerceUint(v)
	}
	if v, ok := pick(payload, "total"); ok {
		draft.Total = coerceDecimal(v)
	}

	// Client info arrives nested under "cliente" on the new form, flat
	// as client_name/... on the old one. Nested wins.
	if v, ok := pick(payload, "client"); ok {
		if m, ok := v.(map[string]any); ok {
			draft.ClientName = pickString(m, "name")
			draft.ClientPhone = pickString(m, "phone")
			draft.ClientEmail = pickString(m, "email")
		}
	}
	if draft.ClientName == "" {
		draft.ClientName = coerceString(payload["client_name"])
	}
	if draft.ClientPhone == "" {
		draft.ClientPhone = coerceString(payload["client_phone"])
	}
	if draft.ClientEmail == "" {
		draft.ClientEmail = coerceString(payload["client_email"])
	}

	if v, ok := pick(payload, "vehicle"); ok {
		draft.Vehicle = vehicleDescription(v)
	}

	if v, ok := pick(payload, "items"); ok {
		if raw, ok := v.([]any); ok {
			for _, item := range raw {
				m, ok := item.(map[string]any)
				if !ok {
					continue
				}
				line := LineDraft{
					Description: pickString(m, "description"),
				}
				if qv, ok := pick(m, "quantity"); ok {
					line.Quantity = coerceDecimal(qv)
				}
				if pv, ok := pick(m, "unit_price"); ok {
					line.UnitPrice = coerceDecimal(pv)
				}
				if lv, ok := pick(m, "line_total"); ok {
					line.LineTotal = coerceDecimal(lv)
				}
				draft.Items = append(draft.Items, line)
			}
		}
	}

	return draft
}

// vehicleDescription accepts either a plain string or a vehicle object and
// renders the one-line description stored on the budget.
func vehicleDescription(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		parts := make([]string, 0, 3)
		for _, field := range []string{"brand", "model", "year"} {
			if s := pickString(t, field); s != "" {
				parts = append(parts, s)
			}
		}
		desc := strings.Join(parts, " ")
		if plate := pickString(t, "plate"); plate != "" {
			if desc != "" {
				desc += " (" + plate + ")"
			} else {
				desc = plate
			}
		}
		return desc
	default:
		return ""
	}
}
