package wine_test

import (
	"testing"
	"time"

	"github.com/SlpAus/wine-journal-backend/internal/wine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namesOf(records []wine.Wine) []string {
	names := make([]string, 0, len(records))
	for _, w := range records {
		names = append(names, w.Name)
	}
	return names
}

func TestFilterAllPassesThrough(t *testing.T) {
	records := []wine.Wine{{Name: "A"}, {Name: "B"}}
	assert.Equal(t, records, wine.Filter(records, wine.FilterAll))
}

func TestFilterFavorite(t *testing.T) {
	records := []wine.Wine{
		{Name: "A", Favorite: true},
		{Name: "B"},
		{Name: "C", Favorite: true},
	}
	assert.Equal(t, []string{"A", "C"}, namesOf(wine.Filter(records, wine.FilterFavorite)))
}

func TestFilterByWineType(t *testing.T) {
	records := []wine.Wine{
		{Name: "NoTasting"},
		{Name: "White", Tasting: &wine.Tasting{WineType: wine.TypeWhite}},
		{Name: "Red", Tasting: &wine.Tasting{WineType: wine.TypeRed}},
	}

	// 类型过滤下，没有品鉴子记录的条目与类型不匹配的条目都被排除
	assert.Equal(t, []string{"Red"}, namesOf(wine.Filter(records, "red")))
	assert.Equal(t, []string{"White"}, namesOf(wine.Filter(records, "white")))
	assert.Empty(t, wine.Filter(records, "sparkling"))
}

func TestSortRatingDescIsStable(t *testing.T) {
	records := []wine.Wine{
		{Name: "A", Rating: 2},
		{Name: "B", Rating: 5},
		{Name: "C", Rating: 0},
		{Name: "D", Rating: 5},
	}

	sorted := wine.Sort(records, wine.SortRatingDesc)
	// 两个5分之间保持原有相对顺序
	assert.Equal(t, []string{"B", "D", "A", "C"}, namesOf(sorted))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	records := []wine.Wine{
		{Name: "B", Rating: 1},
		{Name: "A", Rating: 5},
	}

	_ = wine.Sort(records, wine.SortRatingDesc)
	assert.Equal(t, []string{"B", "A"}, namesOf(records))
}

func TestSortByName(t *testing.T) {
	records := []wine.Wine{
		{Name: "Chianti"},
		{Name: "Alsace"},
		{Name: "Barolo"},
	}

	assert.Equal(t, []string{"Alsace", "Barolo", "Chianti"}, namesOf(wine.Sort(records, wine.SortNameAsc)))
	assert.Equal(t, []string{"Chianti", "Barolo", "Alsace"}, namesOf(wine.Sort(records, wine.SortNameDesc)))
}

func TestSortByDateWithSentinel(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []wine.Wine{
		{Name: "Garbled", Date: "not-a-date", CreatedAt: base},
		{Name: "March", Date: "2024-03-15", CreatedAt: base},
		{Name: "Fallback", CreatedAt: base.AddDate(0, 2, 0)},
	}

	// 无法解析的日期坍缩为零值哨兵，确定地排在最旧端
	desc := wine.Sort(records, wine.SortDateDesc)
	assert.Equal(t, []string{"Fallback", "March", "Garbled"}, namesOf(desc))

	asc := wine.Sort(records, wine.SortDateAsc)
	assert.Equal(t, []string{"Garbled", "March", "Fallback"}, namesOf(asc))
}

func TestResolvedNotesPrefersTasting(t *testing.T) {
	w := wine.Wine{
		Notes:   "old free text",
		Tasting: &wine.Tasting{AdditionalNotes: "structured"},
	}
	assert.Equal(t, "structured", w.ResolvedNotes())

	legacy := wine.Wine{Notes: "old free text"}
	assert.Equal(t, "old free text", legacy.ResolvedNotes())
}

func TestDisplayImageFallsBackToPhoto(t *testing.T) {
	require.Equal(t, "thumb", (&wine.Wine{Photo: "full", Thumbnail: "thumb"}).DisplayImage())
	require.Equal(t, "full", (&wine.Wine{Photo: "full"}).DisplayImage())
}
