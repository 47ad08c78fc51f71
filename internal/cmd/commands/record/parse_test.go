package record

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/quickbase/pkg/quickbase"
)

func TestParseFieldIDs(t *testing.T) {
	ids, err := parseFieldIDs("3, 6,,7")
	require.NoError(t, err)
	assert.Equal(t, []quickbase.FieldID{3, 6, 7}, ids)

	ids, err = parseFieldIDs("")
	require.NoError(t, err)
	assert.Nil(t, ids)

	_, err = parseFieldIDs("3,x")
	assert.ErrorContains(t, err, `"x"`)

	_, err = parseFieldIDs("0")
	assert.Error(t, err)
}

func TestParseSort(t *testing.T) {
	fields, err := parseSort("6:asc, 7:DESC")
	require.NoError(t, err)
	assert.Equal(t, []quickbase.SortField{
		{FieldID: 6, Order: quickbase.SortAscending},
		{FieldID: 7, Order: quickbase.SortDescending},
	}, fields)

	fields, err = parseSort("")
	require.NoError(t, err)
	assert.Nil(t, fields)

	_, err = parseSort("6")
	assert.ErrorContains(t, err, "invalid sort")
}

func TestParseGroup(t *testing.T) {
	fields, err := parseGroup("6:Equal-Values,7:asc")
	require.NoError(t, err)
	assert.Equal(t, []quickbase.GroupField{
		{FieldID: 6, Grouping: quickbase.GroupEqualValues},
		{FieldID: 7, Grouping: quickbase.GroupAscending},
	}, fields)

	_, err = parseGroup("x:ASC")
	assert.ErrorContains(t, err, "invalid group")
}

func TestLoadRecords(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "records.json", []byte(`[
  {"3": {"value": 42}, "6": {"value": "renamed"}},
  {"6": "new record", "7": 12.50, "8": "March 3, 2024", "9": ["a", "b"]}
]`), 0o600))

	records, err := loadRecords(fs, "records.json", []quickbase.FieldID{8})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, quickbase.Value(json.Number("42")), records[0][3])
	assert.Equal(t, quickbase.Value("renamed"), records[0][6])
	assert.Equal(t, quickbase.Value("new record"), records[1][6])
	assert.Equal(t, quickbase.Value(json.Number("12.50")), records[1][7])
	assert.Equal(t, quickbase.Value("2024-03-03"), records[1][8])
	assert.Equal(t, quickbase.Value([]interface{}{"a", "b"}), records[1][9])
}

func TestLoadRecords_ReportsEveryProblem(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.json", []byte(`[
  {"name": {"value": "x"}},
  {"6": {"value": 1, "extra": true}},
  {"8": "not a date"}
]`), 0o600))

	_, err := loadRecords(fs, "bad.json", []quickbase.FieldID{8})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 errors occurred")
	assert.Contains(t, err.Error(), `record 0: invalid field id "name"`)
	assert.Contains(t, err.Error(), "record 1 field 6")
	assert.Contains(t, err.Error(), "record 2 field 8")
}

func TestLoadRecords_BadFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := loadRecords(fs, "missing.json", nil)
	assert.ErrorContains(t, err, "failed to read data file")

	require.NoError(t, afero.WriteFile(fs, "object.json", []byte(`{"6": "x"}`), 0o600))
	_, err = loadRecords(fs, "object.json", nil)
	assert.ErrorContains(t, err, "JSON array of objects")
}
