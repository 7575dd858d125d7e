package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TallerHub/taller-quotes-api/internal/models"
)

func TestTrailingRun(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{"00000007", 7, true},
		{"00000000", 0, true},
		{"PR-00000012", 12, true},
		{"42", 42, true},
		{"", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
	}

	for _, tt := range tests {
		got, ok := TrailingRun(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func TestNextFromScanEmptyBranch(t *testing.T) {
	assert.Equal(t, uint64(1), NextFromScan(nil))
	assert.Equal(t, "00000001", FormatSequence(NextFromScan(nil)))
}

func TestNextFromScanTakesMax(t *testing.T) {
	next := NextFromScan([]string{"00000003", "00000007", "00000001"})
	assert.Equal(t, uint64(8), next)
	assert.Equal(t, "00000008", FormatSequence(next))
}

func TestNextFromScanIgnoresUnparseable(t *testing.T) {
	assert.Equal(t, uint64(5), NextFromScan([]string{"garbage", "00000004", ""}))
}

func TestBranchLabelPrefersCode(t *testing.T) {
	b := &models.Branch{ID: 1, Name: "Central", Code: "MB"}
	assert.Equal(t, "MB", BranchLabel(b, 1))
}

func TestBranchLabelFallsBackToOrdinal(t *testing.T) {
	b := &models.Branch{ID: 9, Name: "Norte"}
	assert.Equal(t, "0003", BranchLabel(b, 3))
}

func TestBranchLabelDeletedBranch(t *testing.T) {
	assert.Equal(t, "", BranchLabel(nil, 0))
}

func TestDisplayNumber(t *testing.T) {
	assert.Equal(t, "N° MB - 00000008", DisplayNumber("MB", "00000008"))
	assert.Equal(t, "N° 0003 - 00000001", DisplayNumber("0003", "00000001"))

	// A deleted branch leaves a blank segment, never an error.
	assert.Equal(t, "N°  - 00000002", DisplayNumber("", "00000002"))
}
