package dataprocessing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRootCause(t *testing.T) {
	tests := []struct {
		name  string
		cause string
		want  string
	}{
		{
			name:  "exact keyword inside sentence",
			cause: "Bolt was Not Tightened during install",
			want:  "Not Tightened",
		},
		{
			name:  "case insensitive",
			cause: "bolt was NOT TIGHTENED during install",
			want:  "Not Tightened",
		},
		{
			name:  "no keyword matches",
			cause: "Oil Leak detected near mount",
			want:  RootCauseOther,
		},
		{
			name:  "empty cause",
			cause: "",
			want:  RootCauseOther,
		},
		{
			name: "shorter label only matches when longer does not",
			// "not tighten" is not a hit for "Not Tightened", so the
			// later "Not Tighten" rule picks it up.
			cause: "boom was not tighten at the hinge",
			want:  "Not Tighten",
		},
		{
			name: "earlier label wins on overlapping keywords",
			// "faulty" contains "fault", and "Fault" is defined before
			// "Faulty", so first-match selects "Fault".
			cause: "faulty sensor reading",
			want:  "Fault",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRootCause(tt.cause))
		})
	}
}

func TestClassifyRootCauseEveryLabelMatchesItself(t *testing.T) {
	for _, label := range TaxonomyLabels() {
		got := ClassifyRootCause("prefix " + strings.ToUpper(label) + " suffix")
		// overlapping labels may resolve to an earlier rule, but the
		// resolved label must always be a substring of the input
		require.NotEqual(t, RootCauseOther, got, "label %q", label)
		assert.Contains(t, strings.ToLower("prefix "+label+" suffix"), strings.ToLower(got))
	}
}

func TestLookupTaxonomy(t *testing.T) {
	entry, ok := LookupTaxonomy("Not Tightened")
	require.True(t, ok)
	assert.Equal(t, "Loose", entry.SymptomCondition)
	assert.Equal(t, "Cab P Clip", entry.SymptomComponent)
	assert.Equal(t, "Retightened", entry.FixCondition)
	assert.Equal(t, "Cab P Clip", entry.FixComponent)

	_, ok = LookupTaxonomy(RootCauseOther)
	assert.False(t, ok)

	_, ok = LookupTaxonomy("never defined")
	assert.False(t, ok)
}

func TestTaxonomyOrderIsStable(t *testing.T) {
	labels := TaxonomyLabels()
	require.Len(t, labels, 18)
	assert.Equal(t, "Not Tightened", labels[0])
	assert.Equal(t, "Faulty", labels[17])
	// priority-sensitive pairs keep their relative order
	assert.Less(t, indexOf(labels, "Fault"), indexOf(labels, "Faulty"))
	assert.Less(t, indexOf(labels, "Not Tightened"), indexOf(labels, "Not Tighten"))
}

func indexOf(ss []string, want string) int {
	for i, s := range ss {
		if s == want {
			return i
		}
	}
	return -1
}
