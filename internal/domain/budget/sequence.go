package budget

import (
	"fmt"

	"github.com/TallerHub/taller-quotes-api/internal/models"
)

// ===============================
// Display numbers
// ===============================
//
// A budget is shown as "N° <branchLabel> - <sequence>". The sequence is
// branch-scoped and 1-based; the label is the branch code, or the branch
// ordinal position among all branches when no code is set.

const sequenceDigits = 8
const labelDigits = 4

// FormatSequence renders a counter value as the stored sequence string.
func FormatSequence(n uint64) string {
	return fmt.Sprintf("%0*d", sequenceDigits, n)
}

// BranchLabel resolves the label segment for a branch. ordinal is the
// 1-based position of the branch among all branches in creation order.
// A nil branch (deleted after its budgets were created) yields "".
func BranchLabel(b *models.Branch, ordinal int) string {
	if b == nil {
		return ""
	}
	if b.Code != "" {
		return b.Code
	}
	return fmt.Sprintf("%0*d", labelDigits, ordinal)
}

// DisplayNumber builds the human-facing number. The label segment stays
// blank when the branch is gone; that is not an error.
func DisplayNumber(label, sequence string) string {
	return fmt.Sprintf("N° %s - %s", label, sequence)
}

// TrailingRun extracts the numeric run at the end of a sequence string.
// "PR-00000012" -> 12. Returns false when the string ends in no digit.
func TrailingRun(s string) (uint64, bool) {
	end := len(s)
	start := end
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}
	var n uint64
	for _, c := range s[start:end] {
		n = n*10 + uint64(c-'0')
	}
	return n, true
}

// NextFromScan derives the next sequence value from the sequences already
// stored for a branch: max trailing run + 1, or 1 when nothing parses.
// This is a preview only; the value actually assigned at save time comes
// from the branch counter row.
func NextFromScan(sequences []string) uint64 {
	var max uint64
	for _, s := range sequences {
		if n, ok := TrailingRun(s); ok && n > max {
			max = n
		}
	}
	return max + 1
}
