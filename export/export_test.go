package export

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() dataframe.DataFrame {
	return dataframe.New(
		series.New([]string{"000001.SZ", "600000.SH"}, series.String, "ts_code"),
		series.New([]float64{10.5, 7.25}, series.Float, "close"),
		series.New([]bool{true, false}, series.Bool, "is_open"),
	)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"CSV", FormatCSV, false},
		{" json ", FormatJSON, false},
		{"parquet", FormatParquet, false},
		{"xlsx", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatCSV, FormatFromPath("out/daily.csv", FormatTable))
	assert.Equal(t, FormatJSON, FormatFromPath("daily.JSON", FormatTable))
	assert.Equal(t, FormatParquet, FormatFromPath("daily.parquet", FormatTable))
	assert.Equal(t, FormatTable, FormatFromPath("daily", FormatTable))
	assert.Equal(t, FormatCSV, FormatFromPath("daily.dat", FormatCSV))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleTable(), FormatCSV))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ts_code,close,is_open", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "000001.SZ,"))
	assert.True(t, strings.HasSuffix(lines[2], ",false"))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleTable(), FormatJSON))

	var records []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "000001.SZ", records[0]["ts_code"])
	assert.Equal(t, 7.25, records[1]["close"])
	assert.Equal(t, true, records[0]["is_open"])
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleTable(), FormatTable))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"ts_code", "close", "is_open"}, strings.Fields(lines[0]))
	assert.Equal(t, "600000.SH", strings.Fields(lines[2])[0])
}

func TestWriteEmptyTable(t *testing.T) {
	empty := dataframe.DataFrame{}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, empty, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, empty, FormatCSV))
	assert.Empty(t, buf.String())

	assert.Error(t, Write(&buf, empty, FormatParquet))
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, sampleTable(), Format("xlsx")))
}

func TestParquetSchemaTypes(t *testing.T) {
	schema, err := ParquetSchema(sampleTable())
	require.NoError(t, err)

	var cols []string
	for _, path := range schema.Columns() {
		cols = append(cols, path[0])
	}
	// Group fields are ordered by name.
	assert.Equal(t, []string{"close", "is_open", "ts_code"}, cols)
}

func TestWriteParquetRoundTrip(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"000001.SZ", "600000.SH", "000002.SZ"}, series.String, "ts_code"),
		series.New([]any{10.5, nil, 3.0}, series.Float, "close"),
	)
	require.NoError(t, df.Err)

	var buf bytes.Buffer
	require.NoError(t, WriteParquet(&buf, df))

	f, err := parquet.OpenFile(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, int64(3), f.NumRows())

	r := parquet.NewReader(bytes.NewReader(buf.Bytes()))
	defer r.Close()

	rows := make([]parquet.Row, 3)
	n, _ := r.ReadRows(rows)
	require.Equal(t, 3, n)

	// Column 0 is close, column 1 is ts_code.
	assert.Equal(t, 10.5, rows[0][0].Double())
	assert.True(t, rows[1][0].IsNull())
	assert.Equal(t, "600000.SH", rows[1][1].String())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daily.csv")
	require.NoError(t, WriteFile(path, sampleTable(), FormatFromPath(path, FormatTable)))
	assert.FileExists(t, path)
}
