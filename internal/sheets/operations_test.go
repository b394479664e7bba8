package sheets

import (
	"context"
	"errors"
	"testing"

	"acnh_sheet_data/internal/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	tabs  map[string][][]interface{}
	err   error
	calls []string
}

func (f *fakeReader) ReadSheet(_ context.Context, _ string, range_ string) ([][]interface{}, error) {
	f.calls = append(f.calls, range_)
	if f.err != nil {
		return nil, f.err
	}
	return f.tabs[range_], nil
}

func TestRowsToRecords(t *testing.T) {
	values := [][]interface{}{
		{"#", "Name", "Sell Price", "Image"},
		{"1", "Wallet", float64(300), `=IMAGE("u")`},
		{"2", "Purse"},
		{"3", "Bag", "NFS", "x", "extra cell"},
	}

	records, err := RowsToRecords("Bags", values)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"SourceSheet", "#", "Name", "Sell Price", "Image"}, records[0].Keys())
	price, _ := records[0].Get("Sell Price")
	assert.True(t, record.Number(300).Equal(price))

	assert.Equal(t, []string{"SourceSheet", "#", "Name"}, records[1].Keys())
	assert.Equal(t, 5, records[2].Len())
	for _, r := range records {
		assert.Equal(t, "Bags", r.SourceSheet())
	}
}

func TestRowsToRecordsEmptyTab(t *testing.T) {
	records, err := RowsToRecords("Empty", nil)
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = RowsToRecords("HeaderOnly", [][]interface{}{{"Name"}})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRowsToRecordsDuplicateHeader(t *testing.T) {
	records, err := RowsToRecords("Tools", [][]interface{}{
		{"Name", "Notes", "Name"},
		{"first", "n", "second"},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, []string{"SourceSheet", "Name", "Notes"}, records[0].Keys())
	name, _ := records[0].Get("Name")
	assert.True(t, record.String("second").Equal(name))
}

func TestRowsToRecordsRejectsUnknownCell(t *testing.T) {
	_, err := RowsToRecords("Tools", [][]interface{}{
		{"Name"},
		{map[string]interface{}{"nested": true}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `row 2 column "Name"`)
}

func TestFetchTabsKeepsTabOrder(t *testing.T) {
	reader := &fakeReader{tabs: map[string][][]interface{}{
		"Tops":    {{"Name"}, {"tee"}, {"tank"}},
		"Bottoms": {{"Name"}, {"shorts"}},
	}}

	records, err := FetchTabs(context.Background(), reader, "id", []string{"Tops", "Achievements", "Bottoms", "Construction"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Tops", "Bottoms"}, reader.calls)
	require.Len(t, records, 3)
	var names []string
	for _, r := range records {
		v, _ := r.Get("Name")
		s, _ := v.Str()
		names = append(names, s)
	}
	assert.Equal(t, []string{"tee", "tank", "shorts"}, names)
}

func TestFetchTabsPropagatesReadError(t *testing.T) {
	reader := &fakeReader{err: errors.New("quota exceeded")}

	_, err := FetchTabs(context.Background(), reader, "id", []string{"Recipes"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Recipes"`)
	assert.Contains(t, err.Error(), "quota exceeded")
}
