package providers

import (
	"context"
	"errors"
	"testing"

	"acnh_sheet_data/internal/cache"
	"acnh_sheet_data/internal/catalog"
	"acnh_sheet_data/internal/record"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	tabs  map[string][][]interface{}
	err   error
	calls []string
}

func (f *fakeReader) ReadSheet(_ context.Context, spreadsheetID, range_ string) ([][]interface{}, error) {
	f.calls = append(f.calls, spreadsheetID+"/"+range_)
	if f.err != nil {
		return nil, f.err
	}
	return f.tabs[range_], nil
}

func TestLoadFetchesAndCachesOnMiss(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := cache.NewStore(fs, "cache")
	reader := &fakeReader{tabs: map[string][][]interface{}{
		"Recipes": {{"#", "Name"}, {"1", "acorn pochette"}, {"2", "bamboo hat"}},
	}}

	records, err := NewProvider(reader, store, "sheet").Load(context.Background(), catalog.Recipes)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"sheet/Recipes"}, reader.calls)

	cached, ok, err := store.Load(catalog.Recipes)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, cached, 2)
	assert.Equal(t, records[1].Keys(), cached[1].Keys())
}

func TestLoadUsesCacheOnHit(t *testing.T) {
	store := cache.NewStore(afero.NewMemMapFs(), "cache")
	require.NoError(t, store.Save(catalog.NookMiles, []record.Record{
		record.New(
			record.Field{Key: record.SourceSheetKey, Value: record.String("Nook Miles")},
			record.Field{Key: "Name", Value: record.String("Island Designer")},
		),
	}))
	reader := &fakeReader{}

	records, err := NewProvider(reader, store, "sheet").Load(context.Background(), catalog.NookMiles)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Nook Miles", records[0].SourceSheet())
	assert.Empty(t, reader.calls)
}

func TestLoadFetchErrorWritesNoCache(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := cache.NewStore(fs, "cache")
	reader := &fakeReader{err: errors.New("forbidden")}

	_, err := NewProvider(reader, store, "sheet").Load(context.Background(), catalog.Creatures)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creatures")

	exists, err := afero.Exists(fs, store.Path(catalog.Creatures))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLoadAggregatesTabsInOrder(t *testing.T) {
	store := cache.NewStore(afero.NewMemMapFs(), "cache")
	reader := &fakeReader{tabs: map[string][][]interface{}{
		"Bugs - North": {{"Name"}, {"common butterfly"}},
		"Fish - South": {{"Name"}, {"sea bass"}},
	}}

	records, err := NewProvider(reader, store, "sheet").Load(context.Background(), catalog.Creatures)
	require.NoError(t, err)

	assert.Len(t, reader.calls, 4)
	require.Len(t, records, 2)
	assert.Equal(t, "Bugs - North", records[0].SourceSheet())
	assert.Equal(t, "Fish - South", records[1].SourceSheet())
}
