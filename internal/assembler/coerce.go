package assembler

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// coerceString renders scalar payload values as strings. Numbers that are
// whole print without a decimal point so ids and years survive the
// JSON-number round trip.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// coerceDecimal accepts numbers and numeric strings; anything else (and
// anything absent) is zero. Totals are taken as sent, never recomputed.
func coerceDecimal(v any) decimal.Decimal {
	switch t := v.(type) {
	case float64:
		return decimal.NewFromFloat(t)
	case int:
		return decimal.NewFromInt(int64(t))
	case int64:
		return decimal.NewFromInt(t)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// coerceUint parses entity ids sent as JSON numbers or strings.
func coerceUint(v any) uint {
	switch t := v.(type) {
	case float64:
		if t < 0 {
			return 0
		}
		return uint(t)
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0
		}
		return uint(n)
	default:
		return 0
	}
}
