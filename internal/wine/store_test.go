package wine_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SlpAus/wine-journal-backend/internal/platform/database"
	"github.com/SlpAus/wine-journal-backend/internal/wine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *wine.Store {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "wine.db"))
	require.NoError(t, err)

	store := wine.NewStore(db)
	require.NoError(t, store.Init())
	return store
}

func intPtr(v int) *int { return &v }

func TestCreateAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	input := wine.Wine{
		Name:     "Chateau Margaux",
		Producer: "Chateau Margaux",
		Region:   "Bordeaux",
		Variety:  "Cabernet Sauvignon",
		Vintage:  intPtr(2015),
		Date:     "2024-03-15",
		Rating:   5,
		Favorite: true,
		Tasting: &wine.Tasting{
			WineType:        wine.TypeRed,
			Aromas:          []string{"berry", "spice"},
			Tannin:          "firm",
			AdditionalNotes: "worth cellaring",
		},
	}

	id, err := store.Create(ctx, input)
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Producer, got.Producer)
	assert.Equal(t, input.Region, got.Region)
	assert.Equal(t, input.Variety, got.Variety)
	assert.Equal(t, input.Vintage, got.Vintage)
	assert.Equal(t, input.Date, got.Date)
	assert.Equal(t, input.Rating, got.Rating)
	assert.True(t, got.Favorite)
	require.NotNil(t, got.Tasting)
	assert.Equal(t, wine.TypeRed, got.Tasting.WineType)
	assert.Equal(t, []string{"berry", "spice"}, got.Tasting.Aromas)
	assert.Equal(t, "worth cellaring", got.Tasting.AdditionalNotes)

	// 时间戳由存储层盖章：创建时只有CreatedAt
	assert.False(t, got.CreatedAt.IsZero())
	assert.Nil(t, got.UpdatedAt)
}

func TestUpdateStampsUpdatedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, wine.Wine{Name: "Riesling Kabinett", Rating: 3})
	require.NoError(t, err)

	created, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, created)

	time.Sleep(10 * time.Millisecond)

	updated := *created
	updated.Rating = 4
	updated.Favorite = true
	require.NoError(t, store.Update(ctx, id, updated))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, 4, got.Rating)
	assert.True(t, got.Favorite)
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestUpdateUpsertsMissingID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// 对不存在的id执行更新会以该id创建新行（保留的put语义）
	err := store.Update(ctx, 42, wine.Wine{Name: "Ghost Bottle", Rating: 1})
	require.NoError(t, err)

	got, err := store.Get(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(42), got.ID)
	assert.Equal(t, "Ghost Bottle", got.Name)
}

func TestGetAbsentReturnsNil(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRemoveIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, wine.Wine{Name: "Barolo"})
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, id))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)

	// 已不存在的键再次删除不报错
	require.NoError(t, store.Remove(ctx, id))
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, wine.Wine{Name: "Opus One", Variety: "Cabernet Sauvignon"})
	require.NoError(t, err)
	_, err = store.Create(ctx, wine.Wine{Name: "Chablis", Variety: "Chardonnay"})
	require.NoError(t, err)

	for _, q := range []string{"cab", "CAB"} {
		results, err := store.Search(ctx, q)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Opus One", results[0].Name)
	}

	results, err := store.Search(ctx, "merlot")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchSkipsStructuredTastingNotes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, wine.Wine{
		Name:    "Old Vines",
		Tasting: &wine.Tasting{AdditionalNotes: "barnyard funk"},
	})
	require.NoError(t, err)
	_, err = store.Create(ctx, wine.Wine{Name: "Legacy Bottle", Notes: "barnyard funk"})
	require.NoError(t, err)

	// 只有旧版notes字段参与搜索
	results, err := store.Search(ctx, "barnyard")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Legacy Bottle", results[0].Name)
}

func TestListAllSortsByDateWithCreatedAtFallback(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, wine.Wine{Name: "January", Date: "2024-01-01"})
	require.NoError(t, err)
	_, err = store.Create(ctx, wine.Wine{Name: "June", Date: "2024-06-01"})
	require.NoError(t, err)
	// 没有品鉴日期的记录回退到CreatedAt（现在），排在最前
	_, err = store.Create(ctx, wine.Wine{Name: "Undated"})
	require.NoError(t, err)

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Undated", records[0].Name)
	assert.Equal(t, "June", records[1].Name)
	assert.Equal(t, "January", records[2].Name)
}

func TestClearRemovesEverything(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Create(ctx, wine.Wine{Name: "Bottle"})
		require.NoError(t, err)
	}

	require.NoError(t, store.Clear(ctx))

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestOperationsBeforeInit(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "wine.db"))
	require.NoError(t, err)
	store := wine.NewStore(db)

	ctx := context.Background()

	_, err = store.Create(ctx, wine.Wine{Name: "Too Early"})
	assert.ErrorIs(t, err, wine.ErrNotInitialized)

	_, err = store.ListAll(ctx)
	assert.ErrorIs(t, err, wine.ErrNotInitialized)

	assert.ErrorIs(t, store.Clear(ctx), wine.ErrNotInitialized)
}
