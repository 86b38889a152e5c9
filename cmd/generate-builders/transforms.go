package main

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// toPascalCase converts a snake_case wire name to an exported Go name:
// ts_code -> TsCode, f_ann_date -> FAnnDate.
func toPascalCase(s string) string {
	var sb strings.Builder
	for part := range strings.SplitSeq(s, "_") {
		if part == "" {
			continue
		}
		sb.WriteString(titleCaser.String(part))
	}
	return sb.String()
}

// fieldName is the unexported struct field holding a parameter.
func fieldName(param string) string {
	return "qp" + toPascalCase(param)
}
