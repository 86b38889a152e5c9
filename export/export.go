// Package export writes query results to files.
//
// Tables can be written as an aligned text table, CSV, JSON (an array of
// records) or Parquet. CSV and JSON go through gota's writers; Parquet
// builds a schema from the table's column types.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/go-gota/gota/dataframe"
)

// Format is an output format.
type Format string

const (
	FormatTable   Format = "table"
	FormatCSV     Format = "csv"
	FormatJSON    Format = "json"
	FormatParquet Format = "parquet"
)

// Formats lists every supported format.
var Formats = []Format{FormatTable, FormatCSV, FormatJSON, FormatParquet}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want table, csv, json or parquet)", s)
}

// FormatFromPath infers the format from a file extension. Unknown
// extensions give fallback.
func FormatFromPath(path string, fallback Format) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".json":
		return FormatJSON
	case ".parquet", ".pq":
		return FormatParquet
	case ".txt":
		return FormatTable
	}
	return fallback
}

// Write encodes df to w in the given format.
func Write(w io.Writer, df dataframe.DataFrame, format Format) error {
	if df.Err != nil {
		return fmt.Errorf("export: table carries an error: %w", df.Err)
	}

	switch format {
	case FormatTable:
		return writeTable(w, df)
	case FormatCSV:
		if df.Ncol() == 0 {
			return nil
		}
		return df.WriteCSV(w)
	case FormatJSON:
		if df.Ncol() == 0 {
			_, err := io.WriteString(w, "[]\n")
			return err
		}
		return df.WriteJSON(w)
	case FormatParquet:
		return WriteParquet(w, df)
	default:
		return fmt.Errorf("export: unsupported format %q", format)
	}
}

// WriteFile writes df to path, creating or truncating it.
func WriteFile(path string, df dataframe.DataFrame, format Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()

	return Write(f, df, format)
}

// writeTable prints every row, unlike DataFrame.String which truncates.
// Missing values print as empty cells.
func writeTable(w io.Writer, df dataframe.DataFrame) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	names := df.Names()
	if _, err := fmt.Fprintln(tw, strings.Join(names, "\t")); err != nil {
		return err
	}

	cells := make([]string, len(names))
	for i := range df.Nrow() {
		for j, name := range names {
			e := df.Col(name).Elem(i)
			if e.IsNA() {
				cells[j] = ""
				continue
			}
			cells[j] = e.String()
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}
