package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanmnovak/neo-capstone/model"
)

func TestSearchNEOs(t *testing.T) {
	db, neos, _ := setupTestDatabase(t)

	tests := []struct {
		name     string
		term     string
		limit    int
		expected []*model.NearEarthObject
	}{
		{name: "Exact name", term: "Eros", expected: []*model.NearEarthObject{neos[0]}},
		{name: "Case-insensitive subsequence", term: "ers", expected: []*model.NearEarthObject{neos[0]}},
		{name: "Designation", term: "2019", expected: []*model.NearEarthObject{neos[2]}},
		{name: "No match", term: "zzz", expected: []*model.NearEarthObject{}},
		{name: "Blank term", term: "  ", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := db.SearchNEOs(tt.term, tt.limit)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSearchNEOsRankingAndLimit(t *testing.T) {
	neos := []*model.NearEarthObject{
		newNEO(t, "3200", "Phaethon", model.UnknownDiameter(), true),
		newNEO(t, "25143", "Itokawa", model.UnknownDiameter(), false),
		newNEO(t, "101955", "Bennu", model.UnknownDiameter(), true),
	}
	db := NewDatabase(neos, nil)

	// "1" matches every fullname containing a 1; closer targets rank first
	got := db.SearchNEOs("1", 0)
	require.Len(t, got, 2)
	assert.Same(t, neos[2], got[0], "shorter fullname has the smaller edit distance")
	assert.Same(t, neos[1], got[1])

	limited := db.SearchNEOs("1", 1)
	require.Len(t, limited, 1)
	assert.Same(t, neos[2], limited[0])
}
