package export

import (
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/parquet-go/parquet-go"
)

// parquetSchemaName is the root name written into Parquet files.
const parquetSchemaName = "tushare"

// ParquetSchema builds a Parquet schema for df. Every column is optional
// so missing values survive the round trip.
func ParquetSchema(df dataframe.DataFrame) (*parquet.Schema, error) {
	group := parquet.Group{}
	for i, name := range df.Names() {
		node, err := parquetNode(df.Types()[i])
		if err != nil {
			return nil, fmt.Errorf("export: column %q: %w", name, err)
		}
		group[name] = parquet.Optional(node)
	}
	return parquet.NewSchema(parquetSchemaName, group), nil
}

func parquetNode(t series.Type) (parquet.Node, error) {
	switch t {
	case series.String:
		return parquet.String(), nil
	case series.Float:
		return parquet.Leaf(parquet.DoubleType), nil
	case series.Int:
		return parquet.Int(64), nil
	case series.Bool:
		return parquet.Leaf(parquet.BooleanType), nil
	default:
		return nil, fmt.Errorf("unsupported column type %q", t)
	}
}

// WriteParquet writes df as a single Parquet row group.
func WriteParquet(w io.Writer, df dataframe.DataFrame) error {
	if df.Ncol() == 0 {
		return fmt.Errorf("export: cannot write a table with no columns as parquet")
	}

	schema, err := ParquetSchema(df)
	if err != nil {
		return err
	}

	// parquet.Group orders its fields by name, so a column's leaf index is
	// its position in the schema, not in the table.
	leaf := make(map[string]int, df.Ncol())
	for i, path := range schema.Columns() {
		leaf[path[0]] = i
	}

	names := df.Names()
	types := df.Types()
	rows := make([]parquet.Row, df.Nrow())
	for r := range rows {
		row := make(parquet.Row, len(names))
		for c, name := range names {
			idx := leaf[name]
			v, err := parquetValue(df.Col(name).Elem(r), types[c])
			if err != nil {
				return fmt.Errorf("export: column %q row %d: %w", name, r, err)
			}
			row[idx] = v.Level(0, definitionLevel(v), idx)
		}
		rows[r] = row
	}

	pw := parquet.NewWriter(w, schema)
	if _, err := pw.WriteRows(rows); err != nil {
		return fmt.Errorf("export: writing parquet rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("export: closing parquet writer: %w", err)
	}
	return nil
}

func parquetValue(e series.Element, t series.Type) (parquet.Value, error) {
	if e.IsNA() {
		return parquet.Value{}, nil
	}
	switch t {
	case series.Float:
		return parquet.ValueOf(e.Float()), nil
	case series.Int:
		n, err := e.Int()
		if err != nil {
			return parquet.Value{}, err
		}
		return parquet.ValueOf(int64(n)), nil
	case series.Bool:
		b, err := e.Bool()
		if err != nil {
			return parquet.Value{}, err
		}
		return parquet.ValueOf(b), nil
	default:
		return parquet.ValueOf(e.String()), nil
	}
}

// definitionLevel is 1 for a present optional value and 0 for a null.
func definitionLevel(v parquet.Value) int {
	if v.IsNull() {
		return 0
	}
	return 1
}
