package client

import (
	"fmt"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/DrewBradfordXYZ/tushare-go/core"
)

// buildTable turns the fields/items payload into a DataFrame.
//
// Column types are inferred from the JSON values: all numbers give a Float
// column, all booleans a Bool column, anything else a String column with
// numbers written in their shortest form. JSON nulls become NaN elements. A
// payload with no columns and no rows gives an empty DataFrame.
func buildTable(apiName, requestID string, data *apiData) (dataframe.DataFrame, error) {
	if len(data.Fields) == 0 {
		if len(data.Items) == 0 {
			return dataframe.DataFrame{}, nil
		}
		return dataframe.DataFrame{}, core.NewParseError(apiName, requestID,
			fmt.Sprintf("%d rows without column names", len(data.Items)), nil)
	}

	seen := make(map[string]bool, len(data.Fields))
	for _, name := range data.Fields {
		if seen[name] {
			return dataframe.DataFrame{}, core.NewParseError(apiName, requestID,
				fmt.Sprintf("duplicate column %q", name), nil)
		}
		seen[name] = true
	}

	for i, row := range data.Items {
		if len(row) != len(data.Fields) {
			return dataframe.DataFrame{}, core.NewParseError(apiName, requestID,
				fmt.Sprintf("row %d has %d values, want %d", i, len(row), len(data.Fields)), nil)
		}
	}

	columns := make([]series.Series, len(data.Fields))
	for j, name := range data.Fields {
		values := make([]any, len(data.Items))
		for i, row := range data.Items {
			values[i] = row[j]
		}

		t, err := columnType(values)
		if err != nil {
			return dataframe.DataFrame{}, core.NewParseError(apiName, requestID,
				fmt.Sprintf("column %q", name), err)
		}
		if t == series.String {
			stringify(values)
		}
		columns[j] = series.New(values, t, name)
	}

	df := dataframe.New(columns...)
	if df.Err != nil {
		return dataframe.DataFrame{}, core.NewParseError(apiName, requestID, "building table", df.Err)
	}
	return df, nil
}

// stringify renders the numbers and booleans of a mixed column in their
// shortest form, so 12.34 stays "12.34" instead of gota's "12.340000".
func stringify(values []any) {
	for i, v := range values {
		switch v := v.(type) {
		case float64:
			values[i] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			values[i] = strconv.FormatBool(v)
		}
	}
}

// columnType picks the series type for a column of decoded JSON values.
func columnType(values []any) (series.Type, error) {
	var floats, bools, strs int
	for i, v := range values {
		switch v.(type) {
		case nil:
		case float64:
			floats++
		case bool:
			bools++
		case string:
			strs++
		default:
			return series.String, fmt.Errorf("row %d holds a %T, want a scalar", i, v)
		}
	}

	switch {
	case floats > 0 && bools == 0 && strs == 0:
		return series.Float, nil
	case bools > 0 && floats == 0 && strs == 0:
		return series.Bool, nil
	default:
		return series.String, nil
	}
}
