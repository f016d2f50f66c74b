package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepscript/goodsync/internal/hoyolab"
)

func TestTally_OwnedArithmetic(t *testing.T) {
	results := []*hoyolab.BatchComputeResult{
		{
			OverallConsume: []hoyolab.Material{
				{ID: 104101, Name: "Agnidus Agate Sliver", Num: 10, LackNum: 4},
			},
			AvailableMaterial: []hoyolab.Material{
				{ID: 104101, Name: "Agnidus Agate Sliver", Num: 2},
			},
		},
	}

	items := Tally(results)
	require.Len(t, items, 1)

	// owned = need - shortfall + surplus = 10 - 4 + 2
	assert.Equal(t, int64(8), items[0].Owned)
	assert.Equal(t, int64(2), items[0].Extra)
	assert.Equal(t, "Agnidus Agate Sliver", items[0].Name)
}

func TestTally_NoAvailableEntry(t *testing.T) {
	results := []*hoyolab.BatchComputeResult{
		{
			OverallConsume: []hoyolab.Material{
				{ID: 112005, Name: "Damaged Mask", Num: 100, LackNum: 70},
			},
		},
	}

	items := Tally(results)
	require.Len(t, items, 1)
	assert.Equal(t, int64(30), items[0].Owned)
	assert.Zero(t, items[0].Extra)
}

func TestTally_DuplicateAcrossChunksKeepsLargest(t *testing.T) {
	// The same inventory row seen from two chunks with different plan sizes.
	results := []*hoyolab.BatchComputeResult{
		{
			OverallConsume:    []hoyolab.Material{{ID: 112005, Name: "Damaged Mask", Num: 50, LackNum: 20}},
			AvailableMaterial: []hoyolab.Material{},
		},
		{
			OverallConsume:    []hoyolab.Material{{ID: 112005, Name: "Damaged Mask", Num: 200, LackNum: 155}},
			AvailableMaterial: []hoyolab.Material{},
		},
	}

	items := Tally(results)
	require.Len(t, items, 1)
	assert.Equal(t, int64(45), items[0].Owned)
}

func TestTally_SortsByIDDescending(t *testing.T) {
	results := []*hoyolab.BatchComputeResult{
		{
			OverallConsume: []hoyolab.Material{
				{ID: 104101, Name: "Agnidus Agate Sliver", Num: 1},
				{ID: 114001, Name: "Luminous Sands from Guyun", Num: 1},
				{ID: 104104, Name: "Agnidus Agate Gemstone", Num: 1},
			},
		},
	}

	items := Tally(results)
	require.Len(t, items, 3)
	assert.Equal(t, int64(114001), items[0].ID)
	assert.Equal(t, int64(104104), items[1].ID)
	assert.Equal(t, int64(104101), items[2].ID)
}
