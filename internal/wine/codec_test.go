package wine_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/SlpAus/wine-journal-backend/internal/wine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportDocumentShape(t *testing.T) {
	store := newTestStore(t)
	codec := wine.NewCodec(store)
	ctx := context.Background()

	_, err := store.Create(ctx, wine.Wine{Name: "Sancerre", Rating: 4})
	require.NoError(t, err)

	data, err := codec.ExportAll(ctx)
	require.NoError(t, err)

	var doc wine.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, wine.DocumentVersion, doc.Version)
	require.Len(t, doc.Wines, 1)
	assert.Equal(t, "Sancerre", doc.Wines[0].Name)
	assert.NotZero(t, doc.Wines[0].ID)
}

func TestExportImportRoundTrip(t *testing.T) {
	store := newTestStore(t)
	codec := wine.NewCodec(store)
	ctx := context.Background()

	names := []string{"Fleurie", "Morgon", "Brouilly"}
	oldIDs := map[uint]bool{}
	for _, name := range names {
		id, err := store.Create(ctx, wine.Wine{
			Name:    name,
			Rating:  3,
			Tasting: &wine.Tasting{WineType: wine.TypeRed, Aromas: []string{"cherry"}},
		})
		require.NoError(t, err)
		oldIDs[id] = true
	}

	data, err := codec.ExportAll(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx))

	added, err := codec.ImportAll(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, len(names), added)

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, len(names))

	imported := map[string]bool{}
	for _, w := range records {
		imported[w.Name] = true
		// 文档内嵌的ID被丢弃，存储铸造了全新的ID
		assert.False(t, oldIDs[w.ID])
		assert.False(t, w.CreatedAt.IsZero())
		assert.Nil(t, w.UpdatedAt)
		require.NotNil(t, w.Tasting)
		assert.Equal(t, []string{"cherry"}, w.Tasting.Aromas)
	}
	for _, name := range names {
		assert.True(t, imported[name])
	}
}

func TestImportMalformedDocument(t *testing.T) {
	store := newTestStore(t)
	codec := wine.NewCodec(store)

	_, err := codec.ImportAll(context.Background(), []byte("{not json"))
	assert.ErrorIs(t, err, wine.ErrImportParse)

	// 解析失败时零条提交
	records, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestImportEmptyDocument(t *testing.T) {
	store := newTestStore(t)
	codec := wine.NewCodec(store)

	added, err := codec.ImportAll(context.Background(), []byte(`{"version":"1.0","wines":[]}`))
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestImportIsAdditive(t *testing.T) {
	store := newTestStore(t)
	codec := wine.NewCodec(store)
	ctx := context.Background()

	_, err := store.Create(ctx, wine.Wine{Name: "Existing"})
	require.NoError(t, err)

	doc := `{"version":"1.0","wines":[{"id":1,"name":"Imported","rating":2}]}`
	added, err := codec.ImportAll(ctx, []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
