package budget

// ===============================
// Budget Status
// ===============================

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func InitialStatus() Status {
	return StatusDraft
}

// IsValid reports whether s is one of the known statuses. Unknown values
// coming from the UI fall back to draft instead of failing the save.
func IsValid(s Status) bool {
	switch s {
	case StatusDraft, StatusSent, StatusApproved, StatusRejected:
		return true
	}
	return false
}
