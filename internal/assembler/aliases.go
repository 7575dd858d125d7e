package assembler

// Legacy payloads reach us with Spanish field names from the old form UI.
// The alias table below is the only place those spellings are known; the
// canonical name always wins when both are present.
var fieldAliases = map[string][]string{
	// vehicle
	"brand":     {"marca"},
	"model":     {"modelo"},
	"year":      {"anio", "ano"},
	"plate":     {"patente", "placa"},
	"vin":       {"chasis", "nro_chasis"},
	"insurance": {"seguro", "aseguradora"},

	// client
	"name":    {"nombre"},
	"phone":   {"telefono", "tel"},
	"email":   {"correo"},
	"address": {"direccion"},

	// budget line
	"quantity":    {"cantidad", "cant"},
	"description": {"descripcion", "detalle"},
	"unit_price":  {"precio", "precio_unitario"},
	"line_total":  {"importe", "subtotal"},

	// budget header
	"branch_id":  {"sucursal_id", "sucursal"},
	"vehicle":    {"vehiculo"},
	"items":      {"detalles", "lineas"},
	"status":     {"estado"},
	"date":       {"fecha"},
	"signature":  {"firma"},
	"tax_policy": {"iva", "politica_iva"},
	"client":     {"cliente"},
	"vehicles":   {"vehiculos"},
}

// pick returns the value for a canonical field, falling back through its
// aliases in table order.
func pick(m map[string]any, canonical string) (any, bool) {
	if v, ok := m[canonical]; ok {
		return v, true
	}
	for _, alias := range fieldAliases[canonical] {
		if v, ok := m[alias]; ok {
			return v, true
		}
	}
	return nil, false
}

func pickString(m map[string]any, canonical string) string {
	v, ok := pick(m, canonical)
	if !ok {
		return ""
	}
	return coerceString(v)
}
