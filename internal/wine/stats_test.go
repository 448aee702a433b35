package wine_test

import (
	"testing"

	"github.com/SlpAus/wine-journal-backend/internal/wine"
	"github.com/stretchr/testify/assert"
)

func TestAggregateEmptyInput(t *testing.T) {
	stats := wine.Aggregate(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.AvgRating)
	assert.Empty(t, stats.RatingDistribution)
	assert.Empty(t, stats.TypeDistribution)
	assert.Empty(t, stats.RegionDistribution)
	assert.Empty(t, stats.VarietyDistribution)
	assert.Equal(t, 0, stats.FavoriteCount)
}

func TestAggregateBasics(t *testing.T) {
	records := []wine.Wine{
		{Rating: 5, Favorite: true, Region: "Bordeaux", Variety: "Merlot",
			Tasting: &wine.Tasting{WineType: wine.TypeRed}},
		{Rating: 4, Region: "Bordeaux", Variety: "Cabernet Sauvignon",
			Tasting: &wine.Tasting{WineType: wine.TypeRed}},
		{Rating: 2, Region: "Mosel", Variety: "Riesling",
			Tasting: &wine.Tasting{WineType: wine.TypeWhite}},
		{Rating: 0}, // 没有品鉴子记录，不进入类型分布
	}

	stats := wine.Aggregate(records)

	assert.Equal(t, 4, stats.Total)
	// (5+4+2+0)/4 = 2.75 -> 保留一位小数
	assert.InDelta(t, 2.8, stats.AvgRating, 1e-9)
	assert.Equal(t, 1, stats.FavoriteCount)

	assert.Equal(t, map[int]int{0: 1, 1: 0, 2: 1, 3: 0, 4: 1, 5: 1}, stats.RatingDistribution)
	assert.Equal(t, map[wine.WineType]int{wine.TypeRed: 2, wine.TypeWhite: 1}, stats.TypeDistribution)
	assert.Equal(t, map[string]int{"Bordeaux": 2, "Mosel": 1}, stats.RegionDistribution)
	assert.Equal(t, map[string]int{"Merlot": 1, "Cabernet Sauvignon": 1, "Riesling": 1}, stats.VarietyDistribution)
}

func TestAggregateTopFiveFirstEncounteredWins(t *testing.T) {
	records := []wine.Wine{
		{Region: "A"}, {Region: "B"}, {Region: "C"},
		{Region: "D"}, {Region: "E"}, {Region: "F"},
		{Region: "F"}, // F出现两次，必定入选
	}

	stats := wine.Aggregate(records)

	assert.Len(t, stats.RegionDistribution, 5)
	assert.Equal(t, 2, stats.RegionDistribution["F"])
	// 计数并列的按首次出现顺序决胜：A~D入选，E落选
	assert.Contains(t, stats.RegionDistribution, "A")
	assert.Contains(t, stats.RegionDistribution, "D")
	assert.NotContains(t, stats.RegionDistribution, "E")
}

func TestAggregateIgnoresEmptyRegionAndVariety(t *testing.T) {
	records := []wine.Wine{
		{Region: "", Variety: ""},
		{Region: "Rioja", Variety: "Tempranillo"},
	}

	stats := wine.Aggregate(records)
	assert.Equal(t, map[string]int{"Rioja": 1}, stats.RegionDistribution)
	assert.Equal(t, map[string]int{"Tempranillo": 1}, stats.VarietyDistribution)
}
